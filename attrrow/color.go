package attrrow

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a single foreground or background color value: either a
// true color (R, G, B), an indexed terminal palette entry, or the
// terminal's default (transparent/inherited) color. Grounded on the
// teacher's internal/renderer.Color.
type Color struct {
	R, G, B uint8
	// Indexed marks this as a palette index, stored in R (0-255). G and B
	// are unused in that mode.
	Indexed bool
	// Default marks this as the terminal's default color.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB builds a true color from components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex builds an indexed palette color (0-255).
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#RGB", "#RRGGBB", "RGB", or "RRGGBB" into a true
// color. The 3-digit shorthand is expanded to 6 digits and the whole value
// is parsed as a single packed integer, rather than parsed channel by
// channel.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
		// already full width
	default:
		return Color{}, fmt.Errorf("attrrow: invalid hex color length %q", hex)
	}

	packed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("attrrow: invalid hex color %q: %w", hex, err)
	}

	return Color{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}, nil
}

// IsDefault reports whether c is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals reports whether two colors are the same value. Default colors are
// equal to each other regardless of their R/G/B/Indexed fields; indexed
// colors compare only their palette index; everything else is compared as
// a plain struct value.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c == other
}

// ToHex renders a true color as "#RRGGBB". Indexed and default colors
// render as the empty string.
func (c Color) ToHex() string {
	if c.Indexed || c.Default {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend perceptually blends two true colors in CIE L*a*b* space via
// go-colorful's BlendLab — amount 0.0 yields c, 1.0 yields other.
//
// The teacher's own Color.Blend interpolates raw sRGB channels linearly,
// which visibly desaturates and muddies blends across large hue deltas
// (e.g. red into cyan). go-colorful is already a transitive dependency of
// tcell in the teacher's go.mod but is never called directly there; this
// is the first direct call site.
//
// Indexed and default colors have no continuous color space to blend in,
// so Blend falls back to a hard cutover at amount 0.5, matching the
// teacher's own fallback for that case.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Indexed || other.Indexed || c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}

	lab1, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	lab2, _ := colorful.MakeColor(color.RGBA{R: other.R, G: other.G, B: other.B, A: 255})
	blended := lab1.BlendLab(lab2, amount)
	r, g, b := blended.RGB255()
	return Color{R: r, G: g, B: b}
}

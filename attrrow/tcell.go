package attrrow

import (
	"github.com/gdamore/tcell/v2"
)

// ToTcellStyle converts a resolved TextAttribute into a tcell.Style — the
// same Style/Color mapping internal/renderer/backend.Terminal performs
// before handing a cell to tcell.Screen.SetContent in the teacher repo.
// No screen I/O happens here: spec.md section 1 places rendering out of
// this module's scope, so ToTcellStyle only produces the value a caller
// elsewhere would paint with.
func ToTcellStyle(attr TextAttribute) tcell.Style {
	style := tcell.StyleDefault

	if !attr.Foreground.IsDefault() {
		if attr.Foreground.Indexed {
			style = style.Foreground(tcell.PaletteColor(int(attr.Foreground.R)))
		} else {
			style = style.Foreground(tcell.NewRGBColor(int32(attr.Foreground.R), int32(attr.Foreground.G), int32(attr.Foreground.B)))
		}
	}

	if !attr.Background.IsDefault() {
		if attr.Background.Indexed {
			style = style.Background(tcell.PaletteColor(int(attr.Background.R)))
		} else {
			style = style.Background(tcell.NewRGBColor(int32(attr.Background.R), int32(attr.Background.G), int32(attr.Background.B)))
		}
	}

	if attr.Attributes.Has(AttrBold) {
		style = style.Bold(true)
	}
	if attr.Attributes.Has(AttrDim) {
		style = style.Dim(true)
	}
	if attr.Attributes.Has(AttrItalic) {
		style = style.Italic(true)
	}
	if attr.Attributes.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if attr.Attributes.Has(AttrBlink) {
		style = style.Blink(true)
	}
	if attr.Attributes.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	if attr.Attributes.Has(AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

// FromTcellStyle converts a tcell.Style back into a TextAttribute,
// dropping the hyperlink id (tcell has no concept of one) — the inverse
// of ToTcellStyle, grounded on backend.convertTcellStyle.
func FromTcellStyle(ts tcell.Style) TextAttribute {
	fg, bg, attrs := ts.Decompose()

	out := TextAttribute{
		Foreground: fromTcellColor(fg),
		Background: fromTcellColor(bg),
	}

	if attrs&tcell.AttrBold != 0 {
		out.Attributes |= AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		out.Attributes |= AttrDim
	}
	if attrs&tcell.AttrItalic != 0 {
		out.Attributes |= AttrItalic
	}
	if attrs&tcell.AttrUnderline != 0 {
		out.Attributes |= AttrUnderline
	}
	if attrs&tcell.AttrBlink != 0 {
		out.Attributes |= AttrBlink
	}
	if attrs&tcell.AttrReverse != 0 {
		out.Attributes |= AttrReverse
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		out.Attributes |= AttrStrikethrough
	}

	return out
}

func fromTcellColor(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return ColorDefault
	}
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	r, g, b := tc.RGB()
	return ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

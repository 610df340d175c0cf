package attrrow

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Palette is a named set of TextAttribute presets, loaded from and
// serialized to JSON. It plays the role the teacher's
// internal/config/registry.Accessor plays over its own layered maps, but
// reads directly from the JSON document by path (gjson.Get) instead of
// unmarshalling into a Go struct tree — there is no fixed schema for a
// palette, only caller-chosen preset names.
//
// Keys are flat, dotted names ("diagnostic.error", "diagnostic.*",
// "default") rather than nested JSON objects, so a literal "." in a key
// never collides with gjson/sjson's own path-separator syntax.
type Palette struct {
	raw []byte
}

// LoadPalette parses a JSON palette document. ErrInvalidPalette is
// returned if data is not valid JSON.
func LoadPalette(data []byte) (*Palette, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidPalette
	}
	return &Palette{raw: append([]byte(nil), data...)}, nil
}

// Attribute looks up an exact preset name. The second return value is
// false if no preset with that exact name exists.
func (p *Palette) Attribute(name string) (TextAttribute, bool) {
	var result gjson.Result
	found := false
	gjson.ParseBytes(p.raw).ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			result = value
			found = true
			return false
		}
		return true
	})
	if !found {
		return TextAttribute{}, false
	}
	return attributeFromJSON(result), true
}

// ResolveAttribute looks up name, falling back to the first glob-style
// palette key ("diagnostic.*") that matches it when no exact preset
// exists — the same glob primitive gjson uses internally for its own
// wildcard path queries, exercised here directly for palette fallback.
func (p *Palette) ResolveAttribute(name string) (TextAttribute, bool) {
	if attr, ok := p.Attribute(name); ok {
		return attr, true
	}

	var result gjson.Result
	found := false
	gjson.ParseBytes(p.raw).ForEach(func(key, value gjson.Result) bool {
		pattern := key.String()
		if strings.Contains(pattern, "*") && match.Match(name, pattern) {
			result = value
			found = true
			return false
		}
		return true
	})
	if !found {
		return TextAttribute{}, false
	}
	return attributeFromJSON(result), true
}

// SetAttribute adds or replaces a preset by name.
func (p *Palette) SetAttribute(name string, attr TextAttribute) error {
	raw, err := sjson.SetBytes(p.raw, escapeKey(name), attributeToJSON(attr))
	if err != nil {
		return err
	}
	p.raw = raw
	return nil
}

// Dump serializes the palette back to human-editable, indented JSON.
func (p *Palette) Dump() []byte {
	return pretty.Pretty(p.raw)
}

// escapeKey escapes literal dots in a preset name so sjson treats the
// whole name as one object key instead of a nested path.
func escapeKey(name string) string {
	return strings.ReplaceAll(name, ".", `\.`)
}

func attributeFromJSON(r gjson.Result) TextAttribute {
	attr := DefaultTextAttribute()

	if fg := r.Get("fg"); fg.Exists() && fg.String() != "" {
		if c, err := ColorFromHex(fg.String()); err == nil {
			attr.Foreground = c
		}
	}
	if bg := r.Get("bg"); bg.Exists() && bg.String() != "" {
		if c, err := ColorFromHex(bg.String()); err == nil {
			attr.Background = c
		}
	}
	if r.Get("bold").Bool() {
		attr.Attributes |= AttrBold
	}
	if r.Get("italic").Bool() {
		attr.Attributes |= AttrItalic
	}
	if r.Get("underline").Bool() {
		attr.Attributes |= AttrUnderline
	}
	if r.Get("reverse").Bool() {
		attr.Attributes |= AttrReverse
	}
	if link := r.Get("hyperlink"); link.Exists() {
		attr.HyperlinkID = uint32(link.Uint())
	}

	return attr
}

func attributeToJSON(attr TextAttribute) map[string]any {
	m := map[string]any{}

	if !attr.Foreground.IsDefault() && !attr.Foreground.Indexed {
		m["fg"] = attr.Foreground.ToHex()
	}
	if !attr.Background.IsDefault() && !attr.Background.Indexed {
		m["bg"] = attr.Background.ToHex()
	}
	if attr.Attributes.Has(AttrBold) {
		m["bold"] = true
	}
	if attr.Attributes.Has(AttrItalic) {
		m["italic"] = true
	}
	if attr.Attributes.Has(AttrUnderline) {
		m["underline"] = true
	}
	if attr.Attributes.Has(AttrReverse) {
		m["reverse"] = true
	}
	if attr.HyperlinkID != 0 {
		m["hyperlink"] = attr.HyperlinkID
	}

	return m
}

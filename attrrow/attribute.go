package attrrow

// Attribute is a bitmask of text rendering attributes layered on top of a
// TextAttribute's colors. Grounded on the teacher's internal/renderer/core
// Attribute bitmask — kept as a distinct type here rather than importing
// that internal package, since attrrow has no dependency on the rest of
// the editor.
type Attribute uint16

// Text attribute flags, one bit per flag.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << 0
	AttrDim           Attribute = 1 << 1
	AttrItalic        Attribute = 1 << 2
	AttrUnderline     Attribute = 1 << 3
	AttrBlink         Attribute = 1 << 4
	AttrReverse       Attribute = 1 << 5
	AttrStrikethrough Attribute = 1 << 6
	AttrHidden        Attribute = 1 << 7
)

// Has reports whether the attribute set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a copy of the set with attr added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a copy of the set with attr removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// TextAttribute is the value type held by each run of an AttrRow: a
// foreground/background color pair, a set of rendering attributes, and an
// optional hyperlink id (0 meaning "no hyperlink"). It is the T in
// rle.Rle[TextAttribute, uint32] — comparable and cheap to copy, as
// spec.md section 9 requires of the value type.
type TextAttribute struct {
	Foreground  Color
	Background  Color
	Attributes  Attribute
	HyperlinkID uint32
}

// DefaultTextAttribute is the terminal's default foreground/background
// with no attributes and no hyperlink.
func DefaultTextAttribute() TextAttribute {
	return TextAttribute{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a copy with the foreground color replaced.
func (t TextAttribute) WithForeground(fg Color) TextAttribute {
	t.Foreground = fg
	return t
}

// WithBackground returns a copy with the background color replaced.
func (t TextAttribute) WithBackground(bg Color) TextAttribute {
	t.Background = bg
	return t
}

// WithHyperlink returns a copy carrying the given hyperlink id.
func (t TextAttribute) WithHyperlink(id uint32) TextAttribute {
	t.HyperlinkID = id
	return t
}

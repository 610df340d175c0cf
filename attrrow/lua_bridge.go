package attrrow

import (
	lua "github.com/yuin/gopher-lua"
)

// attributeToLua converts a TextAttribute to the Lua table shape plugins
// read and write: {fg, bg, bold, italic, underline, hyperlink}. Grounded
// on internal/plugin/lua.Bridge's Go<->Lua value conversion, trimmed to
// just the fields a TextAttribute carries rather than Bridge's fully
// generic reflection-based conversion.
func attributeToLua(L *lua.LState, attr TextAttribute) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "fg", lua.LString(attr.Foreground.ToHex()))
	L.SetField(t, "bg", lua.LString(attr.Background.ToHex()))
	L.SetField(t, "bold", lua.LBool(attr.Attributes.Has(AttrBold)))
	L.SetField(t, "italic", lua.LBool(attr.Attributes.Has(AttrItalic)))
	L.SetField(t, "underline", lua.LBool(attr.Attributes.Has(AttrUnderline)))
	L.SetField(t, "hyperlink", lua.LNumber(attr.HyperlinkID))
	return t
}

// attributeFromLua is the inverse of attributeToLua. Missing fields default
// to DefaultTextAttribute's values.
func attributeFromLua(t *lua.LTable) TextAttribute {
	attr := DefaultTextAttribute()

	if fg, ok := t.RawGetString("fg").(lua.LString); ok && fg != "" {
		if c, err := ColorFromHex(string(fg)); err == nil {
			attr.Foreground = c
		}
	}
	if bg, ok := t.RawGetString("bg").(lua.LString); ok && bg != "" {
		if c, err := ColorFromHex(string(bg)); err == nil {
			attr.Background = c
		}
	}
	if b, ok := t.RawGetString("bold").(lua.LBool); ok && bool(b) {
		attr.Attributes |= AttrBold
	}
	if b, ok := t.RawGetString("italic").(lua.LBool); ok && bool(b) {
		attr.Attributes |= AttrItalic
	}
	if b, ok := t.RawGetString("underline").(lua.LBool); ok && bool(b) {
		attr.Attributes |= AttrUnderline
	}
	if n, ok := t.RawGetString("hyperlink").(lua.LNumber); ok {
		attr.HyperlinkID = uint32(n)
	}

	return attr
}

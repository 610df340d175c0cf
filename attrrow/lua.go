package attrrow

import (
	lua "github.com/yuin/gopher-lua"
)

// LuaModule registers an AttrRow into a plugin's Lua state as the
// ks.attrrow module, following the Module.Register(L *lua.LState) error
// convention internal/plugin/api's modules (e.g. CursorModule) implement,
// and the _ks_<name> global-table handoff internal/plugin/lua.Executor
// uses to assemble the aggregate "ks" table.
type LuaModule struct {
	row *AttrRow
}

// NewLuaModule wraps row for Lua exposure.
func NewLuaModule(row *AttrRow) *LuaModule {
	return &LuaModule{row: row}
}

// Name returns the module name, "attrrow".
func (m *LuaModule) Name() string {
	return "attrrow"
}

// Register installs ks.attrrow's functions into L.
func (m *LuaModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "width", L.NewFunction(m.width))
	L.SetField(mod, "replace", L.NewFunction(m.replace))
	L.SetField(mod, "replace_values", L.NewFunction(m.replaceValues))
	L.SetField(mod, "hyperlinks", L.NewFunction(m.hyperlinks))
	L.SetGlobal("_ks_attrrow", mod)
	return nil
}

// get(col) -> {fg, bg, bold, italic, underline, hyperlink}
func (m *LuaModule) get(L *lua.LState) int {
	col := uint32(L.CheckInt(1))
	attr, err := m.row.At(col)
	if err != nil {
		L.RaiseError("get: %v", err)
		return 0
	}
	L.Push(attributeToLua(L, attr))
	return 1
}

// width() -> number
func (m *LuaModule) width(L *lua.LState) int {
	L.Push(lua.LNumber(m.row.Width()))
	return 1
}

// replace(start, end, attr) -> nil
func (m *LuaModule) replace(L *lua.LState) int {
	start := uint32(L.CheckInt(1))
	end := uint32(L.CheckInt(2))
	tbl := L.CheckTable(3)

	if err := m.row.Write(start, end, attributeFromLua(tbl)); err != nil {
		L.RaiseError("replace: %v", err)
		return 0
	}
	return 0
}

// replace_values(old, new) -> nil
func (m *LuaModule) replaceValues(L *lua.LState) int {
	oldTbl := L.CheckTable(1)
	newTbl := L.CheckTable(2)
	m.row.ReplaceValues(attributeFromLua(oldTbl), attributeFromLua(newTbl))
	return 0
}

// hyperlinks() -> {id, id, ...}
func (m *LuaModule) hyperlinks(L *lua.LState) int {
	ids := m.row.Hyperlinks()
	t := L.NewTable()
	for i, id := range ids {
		t.RawSetInt(i+1, lua.LNumber(id))
	}
	L.Push(t)
	return 1
}

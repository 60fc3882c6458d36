package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// rawDef holds one Lua definition before compilation.
type rawDef struct {
	id    int
	table *lua.LTable
}

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = 1, ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Room (id) { ... } — curried: Room(id) returns a function that
	// takes the definition table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item (id) { ... } — curried.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Guard (id) { ... } — curried.
	L.SetGlobal("Guard", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.guards = append(coll.guards, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

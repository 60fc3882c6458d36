// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime. Loaded
// content is kept as immutable prototypes; each session materializes
// its own mutable world from them.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/dork/engine/world"
	"github.com/nathoo/dork/types"
	lua "github.com/yuin/gopher-lua"
)

// GameData is the compiled content of one game directory. Prototypes
// are never handed out directly; NewWorld deep-copies them so runtime
// mutation (items moving, guards walking) stays session-local.
type GameData struct {
	Meta types.Meta

	rooms  map[int]*types.Room
	items  map[int]*types.Item
	guards []*types.Guard
}

// NewWorld builds a fresh, validated world from the prototypes.
func (d *GameData) NewWorld() (*world.World, error) {
	rooms := make(map[int]*types.Room, len(d.rooms))
	for id, r := range d.rooms {
		rooms[id] = copyRoom(r)
	}
	items := make(map[int]*types.Item, len(d.items))
	for id, it := range d.items {
		items[id] = copyItem(it)
	}
	guards := make([]*types.Guard, len(d.guards))
	for i, g := range d.guards {
		cp := *g
		cp.Route = append([]int(nil), g.Route...)
		guards[i] = &cp
	}
	return world.New(rooms, items, guards)
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	game   *lua.LTable
	rooms  []rawDef
	items  []rawDef
	guards []rawDef
}

// Load reads all .lua files from dir, compiles them into prototypes,
// and verifies they build a valid world. Warnings go to stderr;
// errors are collected and returned together.
func Load(dir string) (*GameData, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading game directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		path := filepath.Join(dir, f)
		if err := L.DoFile(path); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	data, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling game data: %w", err)
	}

	// Build one world immediately so structural problems surface at
	// load time, not on the first turn.
	if _, err := data.NewWorld(); err != nil {
		return nil, err
	}
	return data, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// sortedLuaFiles returns .lua files with game.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}

func copyRoom(r *types.Room) *types.Room {
	cp := *r
	cp.Exits = make(map[string]types.Exit, len(r.Exits))
	for dir, e := range r.Exits {
		e.AllowedClasses = append([]types.PlayerClass(nil), e.AllowedClasses...)
		cp.Exits[dir] = e
	}
	cp.ItemIDs = make(map[int]bool, len(r.ItemIDs))
	for id := range r.ItemIDs {
		cp.ItemIDs[id] = true
	}
	if r.Voice != nil {
		v := *r.Voice
		cp.Voice = &v
	}
	return &cp
}

func copyItem(it *types.Item) *types.Item {
	cp := *it
	cp.Aliases = append([]string(nil), it.Aliases...)
	if it.Readable != nil {
		r := *it.Readable
		cp.Readable = &r
	}
	if it.Container != nil {
		c := *it.Container
		c.AllowedTags = append([]string(nil), it.Container.AllowedTags...)
		cp.Container = &c
	}
	if it.Phone != nil {
		p := &types.PhoneSpec{Messages: make([]*types.Message, len(it.Phone.Messages))}
		for i, m := range it.Phone.Messages {
			mc := *m
			p.Messages[i] = &mc
		}
		cp.Phone = p
	}
	return &cp
}

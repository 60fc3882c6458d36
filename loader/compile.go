package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/types"
	lua "github.com/yuin/gopher-lua"
)

// ValidationError collects all content errors found during compilation.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings returns an array field as a string slice.
func getStrings(tbl *lua.LTable, key string) []string {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	var out []string
	for i := 1; i <= arr.MaxN(); i++ {
		if s, ok := arr.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// getInts returns an array field as an int slice.
func getInts(tbl *lua.LTable, key string) []int {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	var out []int
	for i := 1; i <= arr.MaxN(); i++ {
		if n, ok := arr.RawGetInt(i).(lua.LNumber); ok {
			out = append(out, int(n))
		}
	}
	return out
}

var capsByName = map[string]types.Capability{
	"takeable":     types.CapTakeable,
	"usable":       types.CapUsable,
	"consumable":   types.CapConsumable,
	"openable":     types.CapOpenable,
	"readable":     types.CapReadable,
	"breakable":    types.CapBreakable,
	"container":    types.CapContainer,
	"hideable":     types.CapHideable,
	"save_point":   types.CapSavePoint,
	"device":       types.CapDevice,
	"power_source": types.CapPowerSource,
}

var classesByName = map[string]types.PlayerClass{
	"janitor":        types.ClassJanitor,
	"intern":         types.ClassIntern,
	"middle manager": types.ClassMiddleManager,
	"necromancer":    types.ClassNecromancer,
}

var exitTypesByName = map[string]types.ExitType{
	"":            types.ExitNormal,
	"normal":      types.ExitNormal,
	"scripted":    types.ExitScripted,
	"terminating": types.ExitTerminating,
}

// compile converts all collected Lua data into GameData. All content
// errors are collected into one ValidationError; warnings go to stderr.
func compile(coll *collector) (*GameData, error) {
	ve := &ValidationError{}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	data := &GameData{
		Meta:  compileGame(coll.game, ve),
		rooms: map[int]*types.Room{},
		items: map[int]*types.Item{},
	}

	for _, raw := range coll.items {
		if _, dup := data.items[raw.id]; dup {
			ve.errorf("duplicate item id %d", raw.id)
			continue
		}
		data.items[raw.id] = compileItem(raw, ve)
	}
	for _, raw := range coll.rooms {
		if _, dup := data.rooms[raw.id]; dup {
			ve.errorf("duplicate room id %d", raw.id)
			continue
		}
		data.rooms[raw.id] = compileRoom(raw, ve)
	}
	for _, raw := range coll.guards {
		data.guards = append(data.guards, compileGuard(raw))
	}

	// Items defined but placed nowhere are reachable only through
	// scripted content, which this engine doesn't have.
	placed := map[int]bool{}
	for _, r := range data.rooms {
		for id := range r.ItemIDs {
			placed[id] = true
		}
	}
	for id := range data.items {
		if !placed[id] {
			ve.warnf("item %d is not placed in any room", id)
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return data, nil
}

func compileGame(tbl *lua.LTable, ve *ValidationError) types.Meta {
	meta := types.Meta{
		Title:      getString(tbl, "title"),
		Author:     getString(tbl, "author"),
		Version:    getString(tbl, "version"),
		Start:      getInt(tbl, "start"),
		Intro:      getString(tbl, "intro"),
		StartFlags: getStrings(tbl, "start_flags"),
	}
	if meta.Title == "" {
		ve.errorf("Game.title is required")
	}
	if meta.Start == 0 {
		ve.errorf("Game.start is required")
	}
	return meta
}

func compileRoom(raw rawDef, ve *ValidationError) *types.Room {
	tbl := raw.table
	room := &types.Room{
		ID:          raw.id,
		Title:       getString(tbl, "title"),
		Description: getString(tbl, "description"),
		IsDark:      getBool(tbl, "dark", false),
		HasPower:    getBool(tbl, "power", false),
		Floor:       getInt(tbl, "floor"),
		ListenText:  getString(tbl, "listen"),
		Exits:       map[string]types.Exit{},
		ItemIDs:     map[int]bool{},
	}

	if exits := getTable(tbl, "exits"); exits != nil {
		exits.ForEach(func(k, v lua.LValue) {
			dir, ok := k.(lua.LString)
			if !ok {
				ve.errorf("room %d: exit keys must be strings", raw.id)
				return
			}
			exitTbl, ok := v.(*lua.LTable)
			if !ok {
				ve.errorf("room %d: exit %q must be a table", raw.id, string(dir))
				return
			}
			room.Exits[parser.Normalize(string(dir))] = compileExit(raw.id, string(dir), exitTbl, ve)
		})
	}

	for _, id := range getInts(tbl, "items") {
		room.ItemIDs[id] = true
	}

	if voiceTbl := getTable(tbl, "voice"); voiceTbl != nil {
		voice := &types.VoiceGate{
			Phrase:   getString(voiceTbl, "phrase"),
			SetsFlag: getString(voiceTbl, "sets_flag"),
			Success:  getString(voiceTbl, "success"),
		}
		if voice.Phrase == "" || voice.SetsFlag == "" || voice.Success == "" {
			ve.errorf("room %d: voice needs phrase, sets_flag and success", raw.id)
		}
		room.Voice = voice
	}

	return room
}

func compileExit(roomID int, dir string, tbl *lua.LTable, ve *ValidationError) types.Exit {
	exit := types.Exit{
		To:            getInt(tbl, "to"),
		RequiredFlag:  getString(tbl, "requires_flag"),
		LockedMessage: getString(tbl, "locked"),
		Hidden:        getBool(tbl, "hidden", false),
		Script:        getString(tbl, "script"),
		Ending:        getString(tbl, "ending"),
	}

	kind := getString(tbl, "type")
	t, ok := exitTypesByName[kind]
	if !ok {
		ve.errorf("room %d exit %q: unknown exit type %q", roomID, dir, kind)
	}
	exit.Type = t

	for _, name := range getStrings(tbl, "classes") {
		class, ok := classesByName[parser.Normalize(name)]
		if !ok {
			ve.errorf("room %d exit %q: unknown class %q", roomID, dir, name)
			continue
		}
		exit.AllowedClasses = append(exit.AllowedClasses, class)
	}

	return exit
}

func compileItem(raw rawDef, ve *ValidationError) *types.Item {
	tbl := raw.table
	item := &types.Item{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Aliases:     getStrings(tbl, "aliases"),
	}
	if item.Name == "" {
		ve.errorf("item %d: name is required", raw.id)
	}

	for _, name := range getStrings(tbl, "caps") {
		cap, ok := capsByName[name]
		if !ok {
			ve.errorf("item %d: unknown capability %q", raw.id, name)
			continue
		}
		item.Capabilities |= cap
	}

	if readTbl := getTable(tbl, "readable"); readTbl != nil {
		item.Readable = &types.ReadableSpec{
			Title: getString(readTbl, "title"),
			Text:  getString(readTbl, "text"),
		}
	}
	if contTbl := getTable(tbl, "container"); contTbl != nil {
		item.Container = &types.ContainerSpec{
			Capacity:    getInt(contTbl, "capacity"),
			AllowedTags: getStrings(contTbl, "tags"),
		}
	}
	if msgs := getTable(tbl, "messages"); msgs != nil {
		phone := &types.PhoneSpec{}
		for i := 1; i <= msgs.MaxN(); i++ {
			msgTbl, ok := msgs.RawGetInt(i).(*lua.LTable)
			if !ok {
				ve.errorf("item %d: message %d must be a table", raw.id, i)
				continue
			}
			msg := &types.Message{
				From:    getString(msgTbl, "from"),
				Subject: getString(msgTbl, "subject"),
				Body:    getString(msgTbl, "body"),
			}
			if msg.Body == "" {
				ve.warnf("item %d: message %d has no body", raw.id, i)
			}
			phone.Messages = append(phone.Messages, msg)
		}
		item.Phone = phone
	}

	return item
}

func compileGuard(raw rawDef) *types.Guard {
	tbl := raw.table
	g := &types.Guard{
		ID:            raw.id,
		Name:          getString(tbl, "name"),
		CurrentRoomID: getInt(tbl, "room"),
		Route:         getInts(tbl, "route"),
	}
	if g.Name == "" {
		g.Name = "the guard"
	}
	return g
}

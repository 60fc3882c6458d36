// Package world holds the immutable-after-construction world graph:
// rooms connected by gated exits, items, and patrol guards. Referential
// integrity is validated once at construction and construction fails
// fast on any violation.
package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/dork/types"
)

// ValidationError collects every integrity violation found during
// construction, so content authors see all problems at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("world validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// World is the room/item/guard graph for one game session. Room and
// item definitions never change after New; only the item sets recorded
// on rooms and the guards' positions mutate as the game plays.
type World struct {
	rooms  map[int]*types.Room
	items  map[int]*types.Item
	guards []*types.Guard
}

// New validates the graph and returns a usable world, or a
// *ValidationError listing every violation.
func New(rooms map[int]*types.Room, items map[int]*types.Item, guards []*types.Guard) (*World, error) {
	ve := &ValidationError{}

	if len(rooms) == 0 {
		ve.Errors = append(ve.Errors, "world must contain at least one room")
	}

	for id, room := range rooms {
		validateRoom(id, room, rooms, items, ve)
	}
	for id, item := range items {
		validateItem(id, item, ve)
	}
	for _, g := range guards {
		validateGuard(g, rooms, ve)
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return &World{rooms: rooms, items: items, guards: guards}, nil
}

func validateRoom(id int, room *types.Room, rooms map[int]*types.Room, items map[int]*types.Item, ve *ValidationError) {
	if room.ID <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: ID must be positive", id))
	}
	if room.ID != id {
		ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: keyed under %d", room.ID, id))
	}
	if strings.TrimSpace(room.Title) == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: title is required", id))
	}
	if strings.TrimSpace(room.Description) == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: description is required", id))
	}

	for dir, exit := range room.Exits {
		if strings.TrimSpace(dir) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: exit direction cannot be empty", id))
		}
		if _, ok := rooms[exit.To]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %d: exit %q points to missing room %d", id, dir, exit.To))
		}
		if exit.Type == types.ExitScripted && strings.TrimSpace(exit.Script) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %d: scripted exit %q has no script text", id, dir))
		}
		if exit.Type == types.ExitTerminating && strings.TrimSpace(exit.Ending) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %d: terminating exit %q has no ending text", id, dir))
		}
	}

	for itemID := range room.ItemIDs {
		if _, ok := items[itemID]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %d: references missing item %d", id, itemID))
		}
	}
}

func validateItem(id int, item *types.Item, ve *ValidationError) {
	if item.ID <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: ID must be positive", id))
	}
	if item.ID != id {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: keyed under %d", item.ID, id))
	}
	if strings.TrimSpace(item.Name) == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: name is required", id))
	}
	if strings.TrimSpace(item.Description) == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: description is required", id))
	}

	// Capability flags and payload objects are mutually required.
	if item.Capabilities.Has(types.CapReadable) && item.Readable == nil {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: marked readable but has no readable spec", id))
	}
	if !item.Capabilities.Has(types.CapReadable) && item.Readable != nil {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: readable spec present but item is not marked readable", id))
	}
	if item.Capabilities.Has(types.CapContainer) && item.Container == nil {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: marked container but has no container spec", id))
	}
	if !item.Capabilities.Has(types.CapContainer) && item.Container != nil {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: container spec present but item is not marked container", id))
	}
	if item.Capabilities.Has(types.CapDevice) && item.Phone == nil {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: marked device but has no phone spec", id))
	}
	if !item.Capabilities.Has(types.CapDevice) && item.Phone != nil {
		ve.Errors = append(ve.Errors, fmt.Sprintf("item %d: phone spec present but item is not marked device", id))
	}
}

func validateGuard(g *types.Guard, rooms map[int]*types.Room, ve *ValidationError) {
	if _, ok := rooms[g.CurrentRoomID]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"guard %d: starts in missing room %d", g.ID, g.CurrentRoomID))
	}
	for _, roomID := range g.Route {
		if _, ok := rooms[roomID]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"guard %d: route visits missing room %d", g.ID, roomID))
		}
	}
}

// Room returns the room with the given ID, or nil.
func (w *World) Room(id int) *types.Room {
	return w.rooms[id]
}

// Item returns the item with the given ID, or nil.
func (w *World) Item(id int) *types.Item {
	return w.items[id]
}

// HasRoom reports whether a room with the given ID exists.
func (w *World) HasRoom(id int) bool {
	_, ok := w.rooms[id]
	return ok
}

// Guards returns the world's guards. Callers may mutate guard runtime
// fields (position, mode) but not the slice itself.
func (w *World) Guards() []*types.Guard {
	return w.guards
}

// ItemsInRoom returns the items currently present in a room, in
// ascending ID order for deterministic listings.
func (w *World) ItemsInRoom(roomID int) []*types.Item {
	room := w.rooms[roomID]
	if room == nil {
		return nil
	}
	ids := make([]int, 0, len(room.ItemIDs))
	for id := range room.ItemIDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]*types.Item, 0, len(ids))
	for _, id := range ids {
		result = append(result, w.items[id])
	}
	return result
}

// PhoneItem returns the first item (by ID) carrying a device payload,
// or nil. Used to seed the player's unread counter at session start.
func (w *World) PhoneItem() *types.Item {
	var found *types.Item
	for _, item := range w.items {
		if item.Capabilities.Has(types.CapDevice) {
			if found == nil || item.ID < found.ID {
				found = item
			}
		}
	}
	return found
}

package world

import (
	"strings"
	"testing"

	"github.com/nathoo/dork/types"
)

func validRooms() map[int]*types.Room {
	return map[int]*types.Room{
		1: {
			ID: 1, Title: "Garage", Description: "Concrete and regret.",
			Exits:   map[string]types.Exit{"out": {To: 2}},
			ItemIDs: map[int]bool{10: true},
		},
		2: {
			ID: 2, Title: "Street", Description: "Empty.",
			Exits: map[string]types.Exit{"garage": {To: 1}},
		},
	}
}

func validItems() map[int]*types.Item {
	return map[int]*types.Item{
		10: {ID: 10, Name: "crowbar", Description: "The universal adapter.",
			Capabilities: types.CapTakeable},
	}
}

func TestNew_Valid(t *testing.T) {
	w, err := New(validRooms(), validItems(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.Room(1) == nil || w.Room(2) == nil {
		t.Error("expected both rooms present")
	}
	if w.Item(10) == nil {
		t.Error("expected item present")
	}
	if !w.HasRoom(1) || w.HasRoom(99) {
		t.Error("HasRoom wrong")
	}
}

func TestNew_CollectsAllErrors(t *testing.T) {
	rooms := validRooms()
	rooms[1].Title = ""
	rooms[1].Exits["door"] = types.Exit{To: 99}
	rooms[2].ItemIDs = map[int]bool{55: true}

	_, err := New(rooms, validItems(), nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(ve.Errors), ve.Errors)
	}
}

func TestNew_ValidationCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rooms map[int]*types.Room, items map[int]*types.Item)
		want   string
	}{
		{
			"empty world",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				for id := range rooms {
					delete(rooms, id)
				}
			},
			"at least one room",
		},
		{
			"key mismatch",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				rooms[1].ID = 7
			},
			"keyed under",
		},
		{
			"dangling exit",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				rooms[1].Exits["up"] = types.Exit{To: 42}
			},
			"missing room 42",
		},
		{
			"scripted exit without script",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				rooms[1].Exits["lift"] = types.Exit{To: 2, Type: types.ExitScripted}
			},
			"no script text",
		},
		{
			"terminating exit without ending",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				rooms[1].Exits["road"] = types.Exit{To: 2, Type: types.ExitTerminating}
			},
			"no ending text",
		},
		{
			"readable without spec",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				items[10].Capabilities |= types.CapReadable
			},
			"no readable spec",
		},
		{
			"spec without readable",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				items[10].Readable = &types.ReadableSpec{Text: "hi"}
			},
			"not marked readable",
		},
		{
			"device without phone spec",
			func(rooms map[int]*types.Room, items map[int]*types.Item) {
				items[10].Capabilities |= types.CapDevice
			},
			"no phone spec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, items := validRooms(), validItems()
			tt.mutate(rooms, items)
			_, err := New(rooms, items, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestNew_GuardValidation(t *testing.T) {
	guards := []*types.Guard{{ID: 1, Name: "guard", CurrentRoomID: 3, Route: []int{1, 9}}}
	_, err := New(validRooms(), validItems(), guards)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "starts in missing room 3") {
		t.Errorf("missing start-room error: %q", msg)
	}
	if !strings.Contains(msg, "route visits missing room 9") {
		t.Errorf("missing route error: %q", msg)
	}
}

func TestItemsInRoom_SortedAndLive(t *testing.T) {
	rooms := validRooms()
	items := validItems()
	items[11] = &types.Item{ID: 11, Name: "badge", Description: "Laminated."}
	items[5] = &types.Item{ID: 5, Name: "pen", Description: "Chewed."}
	rooms[1].ItemIDs[11] = true
	rooms[1].ItemIDs[5] = true

	w, err := New(rooms, items, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := w.ItemsInRoom(1)
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	if got[0].ID != 5 || got[1].ID != 10 || got[2].ID != 11 {
		t.Errorf("order = %d,%d,%d, want 5,10,11", got[0].ID, got[1].ID, got[2].ID)
	}

	// Item sets are live: removing from the room is visible.
	delete(rooms[1].ItemIDs, 10)
	if len(w.ItemsInRoom(1)) != 2 {
		t.Error("expected removal to be visible")
	}

	if w.ItemsInRoom(99) != nil {
		t.Error("missing room should return nil")
	}
}

func TestPhoneItem(t *testing.T) {
	rooms := validRooms()
	items := validItems()

	w, _ := New(rooms, items, nil)
	if w.PhoneItem() != nil {
		t.Error("expected nil with no device item")
	}

	items[20] = &types.Item{ID: 20, Name: "phone", Description: "Cracked.",
		Capabilities: types.CapDevice, Phone: &types.PhoneSpec{}}
	items[15] = &types.Item{ID: 15, Name: "pager", Description: "Ancient.",
		Capabilities: types.CapDevice, Phone: &types.PhoneSpec{}}

	w, err := New(rooms, items, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := w.PhoneItem()
	if got == nil || got.ID != 15 {
		t.Errorf("PhoneItem = %v, want item 15", got)
	}
}

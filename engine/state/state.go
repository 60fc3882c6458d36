// Package state manages the mutable per-session player state: current
// room, inventory, class, flags, counters, and phone scalar state.
// Bookkeeping only; no game rules live here.
package state

import (
	"strings"

	"github.com/nathoo/dork/types"
)

// MaxBattery is the phone battery ceiling. The battery is always
// clamped to [0, MaxBattery].
const MaxBattery = 100

// Phone is the player-side scalar state of the carried device. The
// device's message queue lives on the item itself.
type Phone struct {
	Battery int
	LightOn bool
	Unread  int
}

// State is the complete mutable player state for one session. It is
// created at session start, mutated every turn, and replaced wholesale
// on a new-game request.
type State struct {
	CurrentRoomID int
	Inventory     map[int]bool
	Class         types.PlayerClass

	Phone Phone

	GameOver       bool
	GameOverReason string

	// NewGameRequested and LoadRequested are read and cleared by the
	// session driver, which owns state replacement.
	NewGameRequested bool
	LoadRequested    bool

	TurnCount int

	flags    map[string]bool
	counters map[string]int
}

// New creates a fresh state positioned at the starting room, with a
// full battery and nothing else.
func New(startRoomID int) *State {
	return &State{
		CurrentRoomID: startRoomID,
		Inventory:     map[int]bool{},
		Phone:         Phone{Battery: MaxBattery},
		flags:         map[string]bool{},
		counters:      map[string]int{},
	}
}

// MoveTo changes the current room. Gate checks are the movement
// service's job; this is pure bookkeeping.
func (s *State) MoveTo(roomID int) {
	s.CurrentRoomID = roomID
}

// HasItem reports whether the player carries the given item.
func (s *State) HasItem(itemID int) bool { return s.Inventory[itemID] }

// AddItem puts an item into the inventory.
func (s *State) AddItem(itemID int) { s.Inventory[itemID] = true }

// RemoveItem takes an item out of the inventory. Reports whether it
// was there.
func (s *State) RemoveItem(itemID int) bool {
	if !s.Inventory[itemID] {
		return false
	}
	delete(s.Inventory, itemID)
	return true
}

// Flag keys are case-insensitive.
func flagKey(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// HasFlag reports whether a flag is set.
func (s *State) HasFlag(name string) bool { return s.flags[flagKey(name)] }

// SetFlag records a named boolean fact. Reports whether it was newly set.
func (s *State) SetFlag(name string) bool {
	key := flagKey(name)
	if s.flags[key] {
		return false
	}
	s.flags[key] = true
	return true
}

// ClearFlag removes a flag. Reports whether it was set.
func (s *State) ClearFlag(name string) bool {
	key := flagKey(name)
	if !s.flags[key] {
		return false
	}
	delete(s.flags, key)
	return true
}

// Flags returns a copy of the set flags, for snapshots.
func (s *State) Flags() []string {
	out := make([]string, 0, len(s.flags))
	for f := range s.flags {
		out = append(out, f)
	}
	return out
}

// Counter returns a counter value. Unset counters are 0.
func (s *State) Counter(name string) int { return s.counters[flagKey(name)] }

// IncrCounter adds delta to a counter and returns the new value.
func (s *State) IncrCounter(name string, delta int) int {
	key := flagKey(name)
	s.counters[key] += delta
	return s.counters[key]
}

// SetCounter sets a counter to an exact value.
func (s *State) SetCounter(name string, value int) {
	s.counters[flagKey(name)] = value
}

// AdjustBattery applies a delta and clamps to [0, MaxBattery]. The
// light is forced off whenever the battery reaches 0. Returns the new
// level.
func (s *State) AdjustBattery(delta int) int {
	s.Phone.Battery += delta
	if s.Phone.Battery < 0 {
		s.Phone.Battery = 0
	}
	if s.Phone.Battery > MaxBattery {
		s.Phone.Battery = MaxBattery
	}
	if s.Phone.Battery == 0 {
		s.Phone.LightOn = false
	}
	return s.Phone.Battery
}

// SetLight turns the phone light on or off. Reports whether the change
// took effect; a dead battery refuses to light.
func (s *State) SetLight(on bool) bool {
	if on && s.Phone.Battery <= 0 {
		return false
	}
	s.Phone.LightOn = on
	return true
}

// EndGame marks the session terminal with a reason shown on subsequent
// input.
func (s *State) EndGame(reason string) {
	s.GameOver = true
	s.GameOverReason = reason
}

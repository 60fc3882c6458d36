// Package save implements the snapshot persistence collaborator: a
// narrow Write/Read/Exists service over a small JSON snapshot of the
// player state. The engine does not care about the storage medium.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nathoo/dork/engine/state"
	"github.com/nathoo/dork/engine/world"
	"github.com/nathoo/dork/types"
)

// Snapshot is the JSON-serializable save format. Deliberately small:
// world content is rebuilt from the loader, not persisted.
type Snapshot struct {
	CurrentRoomID int      `json:"current_room_id"`
	Inventory     []int    `json:"inventory"`
	Flags         []string `json:"flags"`
	Class         string   `json:"class"`
	Battery       int      `json:"battery"`
}

// Service is the persistence collaborator contract.
type Service interface {
	Write(Snapshot) error
	Read() (Snapshot, error)
	Exists() bool
}

// Build captures the player state into a snapshot.
func Build(s *state.State) Snapshot {
	inv := make([]int, 0, len(s.Inventory))
	for id := range s.Inventory {
		inv = append(inv, id)
	}
	sort.Ints(inv)

	flags := s.Flags()
	sort.Strings(flags)

	return Snapshot{
		CurrentRoomID: s.CurrentRoomID,
		Inventory:     inv,
		Flags:         flags,
		Class:         s.Class.String(),
		Battery:       s.Phone.Battery,
	}
}

// Apply restores a snapshot onto a fresh state.
func Apply(snap Snapshot, s *state.State) {
	s.CurrentRoomID = snap.CurrentRoomID
	s.Inventory = map[int]bool{}
	for _, id := range snap.Inventory {
		s.Inventory[id] = true
	}
	for _, f := range snap.Flags {
		s.SetFlag(f)
	}
	s.Class = parseClass(snap.Class)
	s.Phone.Battery = snap.Battery
	s.AdjustBattery(0) // clamps out-of-range values from edited files
}

func parseClass(name string) types.PlayerClass {
	switch name {
	case "janitor":
		return types.ClassJanitor
	case "intern":
		return types.ClassIntern
	case "middle manager":
		return types.ClassMiddleManager
	case "necromancer":
		return types.ClassNecromancer
	default:
		return types.ClassNone
	}
}

// CanSave reports whether saving is allowed here: the game is still
// running and the current room contains a save-point item.
func CanSave(w *world.World, s *state.State) bool {
	if s.GameOver {
		return false
	}
	for _, item := range w.ItemsInRoom(s.CurrentRoomID) {
		if item.Capabilities.Has(types.CapSavePoint) {
			return true
		}
	}
	return false
}

// FileService persists the snapshot as an indented JSON file.
type FileService struct {
	Path string
}

// NewFileService creates a file-backed save service.
func NewFileService(path string) *FileService {
	return &FileService{Path: path}
}

func (f *FileService) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

func (f *FileService) Write(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

func (f *FileService) Read() (Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading save file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding save: %w", err)
	}
	return snap, nil
}

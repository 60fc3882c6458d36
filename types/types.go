// Package types defines the shared data structures for the Dork engine.
// Structural data only; behavior lives in the engine packages, except
// for small invariant-preserving accessors.
package types

// ExitType selects what happens when an exit is traversed.
type ExitType int

const (
	// ExitNormal moves the player and describes the target room.
	ExitNormal ExitType = iota
	// ExitScripted moves the player and plays a fixed cinematic text
	// before the target room description (elevators, airlocks).
	ExitScripted
	// ExitTerminating ends the game instead of describing a room.
	ExitTerminating
)

// Exit is a directed, possibly gated connection between rooms.
type Exit struct {
	To int // target room ID

	// Gatekeeping. Class check runs before flag check.
	RequiredFlag   string
	AllowedClasses []PlayerClass
	LockedMessage  string

	// Hidden exits are omitted from exit listings but still traversable
	// when named explicitly.
	Hidden bool

	Type ExitType

	// Script is the cinematic text for ExitScripted exits.
	Script string
	// Ending is the game-over text for ExitTerminating exits.
	Ending string
}

// Room is a node in the world graph. Identity and display data are fixed
// at construction; only ItemIDs mutates at runtime, as items move.
type Room struct {
	ID          int
	Title       string
	Description string

	// IsDark blocks visual detail unless a light source is active.
	IsDark bool

	// HasPower marks rooms where devices can be charged.
	HasPower bool

	// Floor the room is on. 0 means outdoors / not in the building.
	Floor int

	// ListenText is authored ambience for the listen command.
	ListenText string

	// Exits maps normalized direction tokens to exits.
	Exits map[string]Exit

	// Voice, when set, makes this room respond to spoken passphrases.
	Voice *VoiceGate

	// ItemIDs are the items physically present in this room.
	ItemIDs map[int]bool
}

// VoiceGate is a room-local voice lock: speaking the phrase sets a flag,
// which typically gates an exit in the same room.
type VoiceGate struct {
	// Phrase is the exact passphrase, compared word for word after
	// normalization.
	Phrase string
	// SetsFlag is set on the player when the phrase matches.
	SetsFlag string
	// Success is shown when the phrase matches.
	Success string
}

// PlayerClass is the one-time job title the player blames everything on.
type PlayerClass int

const (
	ClassNone PlayerClass = iota
	ClassJanitor
	ClassIntern
	ClassMiddleManager
	ClassNecromancer
)

// String returns the lowercase display name of the class.
func (c PlayerClass) String() string {
	switch c {
	case ClassJanitor:
		return "janitor"
	case ClassIntern:
		return "intern"
	case ClassMiddleManager:
		return "middle manager"
	case ClassNecromancer:
		return "necromancer"
	default:
		return "none"
	}
}

// GuardMode is what the facility guard is currently doing.
type GuardMode int

const (
	GuardPatrol GuardMode = iota
	GuardInvestigate
)

// Guard is an NPC that walks a fixed cyclic route and reacts to noise.
// CurrentRoomID, RouteIndex, Mode and TargetRoomID mutate at runtime.
type Guard struct {
	ID            int
	Name          string
	CurrentRoomID int

	Route      []int
	RouteIndex int

	Mode GuardMode

	// TargetRoomID is where the guard heads while investigating.
	// 0 means no target.
	TargetRoomID int
}

// Meta holds game metadata supplied by the content loader.
type Meta struct {
	Title   string
	Author  string
	Version string
	Start   int // starting room ID
	Intro   string

	// StartFlags are set on every fresh state ("is_night" and friends).
	StartFlags []string
}

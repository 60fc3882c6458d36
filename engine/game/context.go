// Package game defines the per-turn context threaded through every
// command handler and turn system. Passing it explicitly (instead of
// ambient globals) keeps a turn's side effects auditable and lets tests
// construct a context directly.
package game

import (
	"math/rand"
	"time"

	"github.com/nathoo/dork/engine/save"
	"github.com/nathoo/dork/engine/state"
	"github.com/nathoo/dork/engine/world"
)

// TurnFrame is per-turn scratch written by handlers and systems and
// read later in the same turn only. Never persisted.
type TurnFrame struct {
	RawInput        string
	NormalizedInput string

	PlayerMoved bool
	MadeNoise   bool
}

// Context carries everything a handler or system may touch during one
// turn: the world graph, the mutable player state, the injected
// randomness source, the persistence collaborator, a clock, and the
// turn scratchpad.
type Context struct {
	World *world.World
	State *state.State
	RNG   *rand.Rand
	Saves save.Service
	Now   func() time.Time

	Turn *TurnFrame
}

// New builds a context for a fresh turn.
func New(w *world.World, s *state.State, rng *rand.Rand, saves save.Service, now func() time.Time) *Context {
	if now == nil {
		now = time.Now
	}
	return &Context{
		World: w,
		State: s,
		RNG:   rng,
		Saves: saves,
		Now:   now,
		Turn:  &TurnFrame{},
	}
}

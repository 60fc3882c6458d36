// Package engine drives a game session: one call per player input,
// routed through the command chain and then the turn pipeline. The
// session owns the world and state lifecycles; everything below it
// works against a per-turn context.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nathoo/dork/engine/command"
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/move"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/engine/save"
	"github.com/nathoo/dork/engine/state"
	"github.com/nathoo/dork/engine/systems"
	"github.com/nathoo/dork/engine/world"
	"github.com/nathoo/dork/types"
)

// WorldFactory builds a fresh, validated world. Called at session start
// and again on every new-game or load request, so runtime mutation
// never leaks between sessions.
type WorldFactory func() (*world.World, error)

// Config carries the session collaborators. Zero values are usable:
// no persistence, wall-clock time, time-seeded randomness.
type Config struct {
	Saves save.Service
	Now   func() time.Time

	// Seed fixes the randomness source; 0 seeds from the clock.
	Seed int64
}

// Game is one interactive session.
type Game struct {
	meta     types.Meta
	newWorld WorldFactory

	world *world.World
	state *state.State

	router   *command.Router
	pipeline *systems.Pipeline

	rng   *rand.Rand
	saves save.Service
	now   func() time.Time
}

// New builds a session around a world factory and game metadata.
func New(meta types.Meta, newWorld WorldFactory, cfg Config) (*Game, error) {
	w, err := newWorld()
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if !w.HasRoom(meta.Start) {
		return nil, fmt.Errorf("start room %d does not exist", meta.Start)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		meta:     meta,
		newWorld: newWorld,
		world:    w,
		router:   command.NewRouter(command.Default(meta)),
		pipeline: systems.NewPipeline(systems.Default()),
		rng:      rand.New(rand.NewSource(seed)),
		saves:    cfg.Saves,
		now:      cfg.Now,
	}
	g.state = g.freshState()
	return g, nil
}

// Meta returns the loaded game metadata.
func (g *Game) Meta() types.Meta { return g.meta }

// State exposes the live player state, for status displays and
// diagnostic meta-commands. Callers must not mutate it.
func (g *Game) State() *state.State { return g.state }

// World exposes the live world, read-only by convention.
func (g *Game) World() *world.World { return g.world }

// Execute runs one full turn for one line of player input and returns
// the text to show. Empty input costs nothing: no handler, no pipeline,
// no turn advance.
func (g *Game) Execute(raw string) types.Output {
	input := parser.Normalize(raw)
	if input == "" {
		return types.Output{
			Text: "Time passes. Reluctantly.",
			Kind: types.Prompt,
			Code: "EMPTY",
		}
	}

	ctx := game.New(g.world, g.state, g.rng, g.saves, g.now)
	ctx.Turn.RawInput = raw
	ctx.Turn.NormalizedInput = input

	out := g.router.Route(input, ctx)
	out = g.pipeline.Run(ctx, out)
	g.state.TurnCount++

	if g.state.LoadRequested {
		return g.restore(out)
	}
	if g.state.NewGameRequested {
		return g.restart(out)
	}
	return out
}

// restart rebuilds the world and state from scratch and plays the
// opening beat of the fresh session.
func (g *Game) restart(out types.Output) types.Output {
	w, err := g.newWorld()
	if err != nil {
		g.state.NewGameRequested = false
		return out.Append("The rebuild failed: " + err.Error())
	}
	g.world = w
	g.state = g.freshState()

	ctx := game.New(g.world, g.state, g.rng, g.saves, g.now)
	opening := g.router.Route("look", ctx)
	opening = g.pipeline.Run(ctx, opening)
	return out.Append(opening.Text)
}

// restore rebuilds the world, applies the filed snapshot, and
// re-describes wherever the player saved.
func (g *Game) restore(out types.Output) types.Output {
	g.state.LoadRequested = false

	snap, err := g.saves.Read()
	if err != nil {
		return out.Append("The filed record is corrupted: " + err.Error())
	}
	w, err := g.newWorld()
	if err != nil {
		return out.Append("The rebuild failed: " + err.Error())
	}
	// Edited save files happen; a snapshot pointing at a room the world
	// does not have must not replace the running session.
	if !w.HasRoom(snap.CurrentRoomID) {
		return out.Append(fmt.Sprintf(
			"The filed record places you in room %d, which does not exist. It stays filed.",
			snap.CurrentRoomID))
	}

	g.world = w
	s := g.freshState()
	save.Apply(snap, s)
	g.state = s

	ctx := game.New(g.world, g.state, g.rng, g.saves, g.now)
	look := move.MoveTo(snap.CurrentRoomID, ctx)
	return out.Append(look.Text)
}

// freshState builds the starting state: start room, start flags, and
// the unread counter synced to the world's device.
func (g *Game) freshState() *state.State {
	s := state.New(g.meta.Start)
	for _, f := range g.meta.StartFlags {
		s.SetFlag(f)
	}
	if phone := g.world.PhoneItem(); phone != nil && phone.Phone != nil {
		s.Phone.Unread = phone.Phone.UnreadCount()
	}
	return s
}

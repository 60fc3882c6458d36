package systems

import (
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/types"
)

// NoiseSystem converts the turn's noise annotation into guard suspicion:
// every active guard is pointed at the room the noise came from.
type NoiseSystem struct{}

func (s *NoiseSystem) Order() int { return 90 }

func (s *NoiseSystem) Apply(ctx *game.Context, current types.Output) types.Output {
	if !ctx.Turn.MadeNoise || !GuardsActive(ctx) {
		return current
	}
	heard := false
	for _, g := range ctx.World.Guards() {
		g.Mode = types.GuardInvestigate
		g.TargetRoomID = ctx.State.CurrentRoomID
		heard = true
	}
	if heard {
		return current.Append("Somewhere below, footsteps stop. Then start again. Faster.")
	}
	return current
}

// GuardSystem advances guards one step per turn and resolves detection.
// Guards only act while patrol conditions hold.
type GuardSystem struct{}

func (s *GuardSystem) Order() int { return 95 }

func (s *GuardSystem) Apply(ctx *game.Context, current types.Output) types.Output {
	if !GuardsActive(ctx) {
		return current
	}

	st := ctx.State
	for _, g := range ctx.World.Guards() {
		if g.Mode == types.GuardInvestigate && g.TargetRoomID != 0 {
			// Investigation is a direct jump; the guard knows the floor.
			g.CurrentRoomID = g.TargetRoomID
			g.TargetRoomID = 0
			g.Mode = types.GuardPatrol
		} else if len(g.Route) > 0 {
			g.RouteIndex = (g.RouteIndex + 1) % len(g.Route)
			g.CurrentRoomID = g.Route[g.RouteIndex]
		}

		if g.CurrentRoomID == st.CurrentRoomID && !st.HasFlag("player_hidden") {
			caught := g.Name + " rounds the corner and stops. \"And who exactly are you?\"\n" +
				"You do not have a good answer. Security has several."
			st.EndGame(caught)
			out := current.Append(caught)
			out.Code = "GUARD_CAUGHT"
			return out
		}
	}
	return current
}

// GuardsActive reports whether guards patrol at all this turn: the
// player is inside the building, it is night, and they are on the
// patrolled floor.
func GuardsActive(ctx *game.Context) bool {
	st := ctx.State
	return st.HasFlag("in_building") &&
		st.HasFlag("is_night") &&
		st.Counter("floor") == 2
}

// NextPatrolRoom returns the room a patrolling guard will step into on
// its next move, or 0 if it has no route.
func NextPatrolRoom(g *types.Guard) int {
	if g.Mode == types.GuardInvestigate && g.TargetRoomID != 0 {
		return g.TargetRoomID
	}
	if len(g.Route) == 0 {
		return 0
	}
	return g.Route[(g.RouteIndex+1)%len(g.Route)]
}

package command

import (
	"github.com/nathoo/dork/engine/describe"
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/move"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/types"
)

// movementHandler accepts "go <direction>" and bare exit tokens of the
// current room ("out", "stairs", "elevator").
type movementHandler struct{}

func (h *movementHandler) Priority() int { return 10 }

func (h *movementHandler) CanHandle(input string, ctx *game.Context) bool {
	if parser.After(input, "go ") != "" {
		return true
	}
	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room == nil {
		return false
	}
	_, ok := room.Exits[input]
	return ok
}

func (h *movementHandler) Handle(input string, ctx *game.Context) types.Output {
	dir := input
	if rest := parser.After(input, "go "); rest != "" {
		dir = rest
	}
	return move.Go(dir, ctx)
}

// lookHandler re-describes the current room on demand.
type lookHandler struct{}

func (h *lookHandler) Priority() int { return 10 }

func (h *lookHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "look" || input == "l" || input == "look around"
}

func (h *lookHandler) Handle(input string, ctx *game.Context) types.Output {
	return describe.Look(ctx)
}

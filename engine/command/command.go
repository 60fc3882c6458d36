// Package command implements the priority-ordered command dispatch:
// a chain-of-responsibility router over independent handlers, each a
// predicate/action pair. Exactly one handler runs per turn.
package command

import (
	"sort"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/types"
)

// Handler is one unit of command interpretation. Lower priorities run
// first. Handlers are stateless per call; all mutation goes through the
// context.
type Handler interface {
	Priority() int
	CanHandle(input string, ctx *game.Context) bool
	Handle(input string, ctx *game.Context) types.Output
}

// Router dispatches normalized input to the first handler, in ascending
// priority order, whose CanHandle returns true. Ordering is fixed at
// construction; ties keep insertion order.
type Router struct {
	handlers []Handler
}

// NewRouter builds a router over the given handlers.
func NewRouter(handlers []Handler) *Router {
	sorted := make([]Handler, len(handlers))
	copy(sorted, handlers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return &Router{handlers: sorted}
}

// Route picks and runs exactly one handler for the input. In a terminal
// session, everything except the two reserved control phrases
// short-circuits to the game-over message; this gate sits in front of
// the handler chain, it is not a handler itself.
func (r *Router) Route(input string, ctx *game.Context) types.Output {
	if ctx.State.GameOver && input != "new game" && input != "load game" {
		reason := ctx.State.GameOverReason
		if reason == "" {
			reason = "Game over."
		}
		return types.Output{Text: reason, Kind: types.Error, Code: "GAME_OVER"}
	}

	for _, h := range r.handlers {
		if h.CanHandle(input, ctx) {
			return h.Handle(input, ctx)
		}
	}

	// Unreachable with the fallback handler registered; kept so a
	// misconfigured router still produces output.
	return types.Output{Text: "That does nothing.", Kind: types.Error, Code: "UNKNOWN"}
}

// Default returns the full handler set in registration order. The
// router sorts by priority, so order here only breaks ties.
func Default(meta types.Meta) []Handler {
	return []Handler{
		&introHandler{intro: meta.Intro},
		&newGameHandler{},
		&loadGameHandler{},
		&classGateHandler{},
		&movementHandler{},
		&lookHandler{},
		&waitHandler{},
		&listenHandler{},
		&examineHandler{},
		&helpHandler{},
		&inventoryHandler{},
		&readHandler{},
		&saveHandler{},
		&pushHandler{},
		&sayHandler{},
		&hideHandler{},
		&phoneHandler{},
		&fallbackHandler{},
	}
}

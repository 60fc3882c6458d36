package command

import (
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/types"
)

// fallbackHandler always matches. It terminates every route with a
// definite answer, so the router never returns silence.
type fallbackHandler struct{}

func (h *fallbackHandler) Priority() int { return 9999 }

func (h *fallbackHandler) CanHandle(input string, ctx *game.Context) bool { return true }

func (h *fallbackHandler) Handle(input string, ctx *game.Context) types.Output {
	return types.Output{
		Text: "That input has been forwarded to a department that does not exist.",
		Kind: types.Error,
		Code: "UNKNOWN",
	}
}

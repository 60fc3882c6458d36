package command

import (
	"fmt"
	"strings"

	"github.com/nathoo/dork/engine/describe"
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/types"
)

// introHandler shows the authored intro once, on the first turn, no
// matter what the player typed.
type introHandler struct {
	intro string
}

func (h *introHandler) Priority() int { return -1000 }

func (h *introHandler) CanHandle(input string, ctx *game.Context) bool {
	return h.intro != "" && !ctx.State.HasFlag("intro_shown")
}

func (h *introHandler) Handle(input string, ctx *game.Context) types.Output {
	ctx.State.SetFlag("intro_shown")
	return types.Output{Text: h.intro, Kind: types.Narration, Code: "INTRO"}
}

// newGameHandler flags the session for a full rebuild. The session
// driver performs the actual world and state replacement after the turn.
type newGameHandler struct{}

func (h *newGameHandler) Priority() int { return -100 }

func (h *newGameHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "new game" || input == "restart"
}

func (h *newGameHandler) Handle(input string, ctx *game.Context) types.Output {
	ctx.State.NewGameRequested = true
	return types.Output{
		Text: "Fine. Let's pretend none of that happened.",
		Kind: types.Narration,
		Code: "NEW_GAME",
	}
}

// loadGameHandler flags the session to restore the filed record. The
// driver rebuilds the world, applies the snapshot, and re-describes.
type loadGameHandler struct{}

func (h *loadGameHandler) Priority() int { return -90 }

func (h *loadGameHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "load game" || input == "load"
}

func (h *loadGameHandler) Handle(input string, ctx *game.Context) types.Output {
	if ctx.Saves == nil || !ctx.Saves.Exists() {
		return types.Output{
			Text: "There is no filed record to restore. HR has no memory of you.",
			Kind: types.Error,
			Code: "NO_SAVE",
		}
	}
	ctx.State.LoadRequested = true
	return types.Output{
		Text: "Retrieving the filed record...",
		Kind: types.Narration,
		Code: "LOAD_GAME",
	}
}

// classGateHandler blocks everything until the player picks a class.
// While the class is unset it claims every input.
type classGateHandler struct{}

var classByName = map[string]types.PlayerClass{
	"janitor":        types.ClassJanitor,
	"intern":         types.ClassIntern,
	"middle manager": types.ClassMiddleManager,
	"manager":        types.ClassMiddleManager,
	"necromancer":    types.ClassNecromancer,
}

var classBlurbs = map[types.PlayerClass]string{
	types.ClassJanitor:       "Janitor. You have keys to rooms nobody admits exist. Nobody looks at you twice.",
	types.ClassIntern:        "Intern. Unpaid, unnoticed, unkillable. You can get into anything labeled 'do not enter'.",
	types.ClassMiddleManager: "Middle Manager. You can schedule meetings that shouldn't exist. Doors fear your badge.",
	types.ClassNecromancer:   "Necromancer. HR classified you as 'cultural fit'. The dead return your emails.",
}

func (h *classGateHandler) Priority() int { return 0 }

func (h *classGateHandler) CanHandle(input string, ctx *game.Context) bool {
	return ctx.State.Class == types.ClassNone
}

func (h *classGateHandler) Handle(input string, ctx *game.Context) types.Output {
	s := ctx.State

	name := input
	if rest := parser.After(name, "choose "); rest != "" {
		name = rest
	}
	if rest := parser.After(name, "class "); rest != "" {
		name = rest
	}
	if class, ok := classByName[name]; ok {
		s.Class = class
		look := describe.Look(ctx)
		return types.Output{
			Text: classBlurbs[class] + "\n\n" + look.Text,
			Kind: types.Narration,
			Code: "CLASS_SET",
		}
	}

	if !s.HasFlag("class_prompted") {
		s.SetFlag("class_prompted")
		return types.Output{Text: classMenu(), Kind: types.Prompt, Code: "CLASS_PROMPT"}
	}
	return types.Output{
		Text: fmt.Sprintf("'%s' is not on the org chart.\n\n%s", input, classMenu()),
		Kind: types.Error,
		Code: "CLASS_UNKNOWN",
	}
}

func classMenu() string {
	var b strings.Builder
	b.WriteString("Before anything else: who are you, professionally speaking?\n")
	b.WriteString("- janitor\n")
	b.WriteString("- intern\n")
	b.WriteString("- middle manager\n")
	b.WriteString("- necromancer\n")
	b.WriteString("Type one to proceed.")
	return b.String()
}

package command

import (
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/move"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/engine/resolve"
	"github.com/nathoo/dork/engine/snark"
	"github.com/nathoo/dork/engine/systems"
	"github.com/nathoo/dork/types"
)

// waitHandler deliberately does nothing. The turn still advances, which
// is sometimes the whole point.
type waitHandler struct{}

func (h *waitHandler) Priority() int { return 10 }

func (h *waitHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "wait" || input == "z"
}

func (h *waitHandler) Handle(input string, ctx *game.Context) types.Output {
	return types.Output{
		Text: "You wait. The building continues to exist around you.",
		Kind: types.Narration,
		Code: "WAIT",
	}
}

// listenHandler reports what can be heard, most urgent source first:
// an active guard one step away, then authored room ambience, then a
// generic line.
type listenHandler struct{}

func (h *listenHandler) Priority() int { return 10 }

func (h *listenHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "listen" || input == "listen carefully"
}

func (h *listenHandler) Handle(input string, ctx *game.Context) types.Output {
	if systems.GuardsActive(ctx) {
		for _, g := range ctx.World.Guards() {
			if systems.NextPatrolRoom(g) == ctx.State.CurrentRoomID {
				return types.Output{
					Text: snark.Approaching(ctx.RNG),
					Kind: types.Narration,
					Code: "LISTEN",
				}
			}
		}
	}

	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room != nil && room.ListenText != "" {
		return types.Output{Text: room.ListenText, Kind: types.Narration, Code: "LISTEN"}
	}
	return types.Output{Text: snark.Ambient(ctx.RNG), Kind: types.Narration, Code: "LISTEN"}
}

// helpHandler lists the verbs the engine actually understands.
type helpHandler struct{}

func (h *helpHandler) Priority() int { return 30 }

func (h *helpHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "help" || input == "?" || input == "commands"
}

func (h *helpHandler) Handle(input string, ctx *game.Context) types.Output {
	text := "Things you can type:\n" +
		"- go <direction>, or just the direction\n" +
		"- look, examine <thing>, listen, wait\n" +
		"- take <thing>, drop <thing>, inventory, read <thing>\n" +
		"- push <thing>, say <words>, hide\n" +
		"- phone: messages, light on, light off, charge phone\n" +
		"- save, load game, new game\n" +
		"Everything else is interpreted with extreme prejudice."
	return types.Output{Text: text, Kind: types.Narration, Code: "HELP"}
}

// pushHandler pushes things. A push target matching an exit label
// traverses it (doors, elevator call buttons); anything else is
// acknowledged and ignored.
type pushHandler struct{}

func (h *pushHandler) Priority() int { return 55 }

func (h *pushHandler) CanHandle(input string, ctx *game.Context) bool {
	return parser.After(input, "push ") != "" || parser.After(input, "press ") != ""
}

func (h *pushHandler) Handle(input string, ctx *game.Context) types.Output {
	target := parser.After(input, "push ")
	if target == "" {
		target = parser.After(input, "press ")
	}

	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room != nil {
		if _, ok := room.Exits[parser.Normalize(target)]; ok {
			return move.Go(target, ctx)
		}
	}
	if item := resolve.InScope(ctx, target); item != nil {
		return types.Output{
			Text: "You push the " + item.Name + ". It absorbs the gesture without comment.",
			Kind: types.Narration,
			Code: "PUSH_NOOP",
		}
	}
	return types.Output{Text: "There's no such thing to push.", Kind: types.Error, Code: "NO_ITEM"}
}

// hideHandler tucks the player behind anything hideable in the room.
// Hiding survives until the player moves.
type hideHandler struct{}

func (h *hideHandler) Priority() int { return 70 }

func (h *hideHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "hide"
}

func (h *hideHandler) Handle(input string, ctx *game.Context) types.Output {
	var cover *types.Item
	for _, item := range ctx.World.ItemsInRoom(ctx.State.CurrentRoomID) {
		if item.Capabilities.Has(types.CapHideable) {
			cover = item
			break
		}
	}
	if cover == nil {
		return types.Output{
			Text: "There is nowhere dignified to hide. Or undignified. There is nowhere.",
			Kind: types.Error,
			Code: "NO_COVER",
		}
	}
	if !ctx.State.SetFlag("player_hidden") {
		return types.Output{
			Text: "You are already hiding. Committing harder changes nothing.",
			Kind: types.Narration,
			Code: "HIDDEN",
		}
	}
	return types.Output{
		Text: "You wedge yourself behind the " + cover.Name + " and practice not existing.",
		Kind: types.Narration,
		Code: "HIDDEN",
	}
}

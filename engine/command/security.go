package command

import (
	"fmt"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/types"
)

// sayHandler speaks out loud. In a room with a voice gate the spoken
// words are checked against the passphrase; elsewhere the universe
// declines to respond.
type sayHandler struct{}

func (h *sayHandler) Priority() int { return 60 }

func (h *sayHandler) CanHandle(input string, ctx *game.Context) bool {
	return parser.After(input, "say ") != "" || parser.After(input, "speak ") != ""
}

func (h *sayHandler) Handle(input string, ctx *game.Context) types.Output {
	spoken := parser.After(input, "say ")
	if spoken == "" {
		spoken = parser.After(input, "speak ")
	}

	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room == nil || room.Voice == nil {
		return types.Output{
			Text: "You say it out loud. Nothing in this room is paid to listen.",
			Kind: types.Narration,
			Code: "SAY_NOOP",
		}
	}

	gate := room.Voice
	if containsPhrase(parser.Tokens(spoken), parser.Tokens(gate.Phrase)) {
		ctx.State.SetFlag(gate.SetsFlag)
		return types.Output{Text: gate.Success, Kind: types.Narration, Code: "VOICE_OK"}
	}

	fails := ctx.State.IncrCounter(fmt.Sprintf("voice_fail_%d", room.ID), 1)
	var text string
	switch fails {
	case 1:
		text = "\"ACCESS DENIED.\""
	case 2:
		text = "\"ACCESS DENIED. STILL.\""
	case 3:
		text = "\"GUESSING CONTINUES TO BE A BOLD STRATEGY.\""
	default:
		text = "\"AWW. IT KEEPS TRYING.\""
	}
	return types.Output{Text: text, Kind: types.Error, Code: "VOICE_DENIED"}
}

// containsPhrase reports whether phrase occurs in spoken as a contiguous
// run, in order. Saying the passphrase inside a longer sentence counts;
// scrambled words do not.
func containsPhrase(spoken, phrase []string) bool {
	if len(phrase) == 0 || len(spoken) < len(phrase) {
		return false
	}
	for i := 0; i+len(phrase) <= len(spoken); i++ {
		match := true
		for j, w := range phrase {
			if spoken[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

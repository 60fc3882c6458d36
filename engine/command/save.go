package command

import (
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/save"
	"github.com/nathoo/dork/types"
)

// saveHandler files the current state, if the room permits it.
type saveHandler struct{}

func (h *saveHandler) Priority() int { return 50 }

func (h *saveHandler) CanHandle(input string, ctx *game.Context) bool {
	return input == "save" || input == "save game"
}

func (h *saveHandler) Handle(input string, ctx *game.Context) types.Output {
	if ctx.Saves == nil {
		return types.Output{
			Text: "Saving is not available in this session.",
			Kind: types.Error,
			Code: "NO_SAVE_POINT",
		}
	}
	if !save.CanSave(ctx.World, ctx.State) {
		return types.Output{
			Text: "You can't file a record here. Find somewhere with proper paperwork.",
			Kind: types.Error,
			Code: "NO_SAVE_POINT",
		}
	}
	if err := ctx.Saves.Write(save.Build(ctx.State)); err != nil {
		return types.Output{
			Text: "The record refuses to be filed: " + err.Error(),
			Kind: types.Error,
			Code: "SAVE_FAILED",
		}
	}
	return types.Output{
		Text: "Your existence has been filed in triplicate. You may now be lost safely.",
		Kind: types.Narration,
		Code: "SAVED",
	}
}

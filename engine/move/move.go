// Package move is the movement service: the only component allowed to
// change the player's current room. It resolves directions against the
// current room's exits, evaluates the exit gate, and applies the
// exit-type-specific behavior plus turn annotations.
package move

import (
	"github.com/nathoo/dork/engine/describe"
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/types"
)

const defaultLockedMessage = "Access denied."

// Go attempts to traverse the named exit of the current room.
func Go(direction string, ctx *game.Context) types.Output {
	dir := parser.Normalize(direction)

	s := ctx.State
	fromRoom := ctx.World.Room(s.CurrentRoomID)
	wasDarkAndUnlit := fromRoom.IsDark && !s.Phone.LightOn

	exit, ok := fromRoom.Exits[dir]
	if !ok {
		return types.Output{Text: "You can't go that way.", Kind: types.Error, Code: "NO_EXIT"}
	}

	if !Allowed(exit, s) {
		msg := exit.LockedMessage
		if msg == "" {
			msg = defaultLockedMessage
		}
		return types.Output{Text: msg, Kind: types.Error, Code: "EXIT_BLOCKED"}
	}

	if exit.Type == types.ExitTerminating {
		s.EndGame(exit.Ending)
		return types.Output{Text: exit.Ending, Kind: types.Narration, Code: "ENDING"}
	}

	arrive(exit.To, ctx)

	// Stumbling out of an unlit dark room is not quiet.
	if wasDarkAndUnlit {
		ctx.Turn.MadeNoise = true
	}

	look := describe.Look(ctx)
	if exit.Type == types.ExitScripted {
		return types.Output{
			Text: exit.Script + "\n\n" + look.Text,
			Kind: types.Narration,
			Code: look.Code,
		}
	}
	return look
}

// MoveTo teleports the player directly to a room, for non-exit-driven
// moves (control panels, scripted sequences). Callers are responsible
// for having checked authorization; no gate is evaluated.
func MoveTo(roomID int, ctx *game.Context) types.Output {
	arrive(roomID, ctx)
	return describe.Look(ctx)
}

// arrive applies the shared room-change bookkeeping: position, floor
// tracking, hiding and charging broken by movement, turn annotation.
func arrive(roomID int, ctx *game.Context) {
	s := ctx.State
	s.MoveTo(roomID)

	// Moving breaks hiding and unplugs the phone.
	s.ClearFlag("player_hidden")
	s.ClearFlag("phone_charging")

	room := ctx.World.Room(roomID)
	s.SetCounter("floor", room.Floor)
	if room.Floor > 0 {
		s.SetFlag("in_building")
	} else {
		s.ClearFlag("in_building")
	}

	ctx.Turn.PlayerMoved = true
}

// Package describe renders room descriptions: title, prose, visible
// items, and non-hidden exits. Dark rooms hide visual detail unless the
// phone light is on.
package describe

import (
	"sort"
	"strings"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/types"
)

const darkText = "It is pitch dark.\n" +
	"Whatever is in here is having a private moment.\n" +
	"You could turn on a light. If you own one. And it works."

// Look produces the standard description of the player's current room.
func Look(ctx *game.Context) types.Output {
	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room == nil {
		// The movement service never lets this happen; construction
		// validation covers content. Still, don't crash the session.
		return types.Output{Text: "You are somewhere unknown.", Kind: types.Error, Code: "NO_ROOM"}
	}

	if room.IsDark && !ctx.State.Phone.LightOn {
		return types.Output{Text: darkText, Kind: types.Narration, Code: "DARK"}
	}

	var sb strings.Builder

	if room.Title != "" {
		sb.WriteString(room.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(room.Description)

	items := ctx.World.ItemsInRoom(room.ID)
	if len(items) > 0 {
		sb.WriteString("\n\nYou see:")
		for _, item := range items {
			sb.WriteString("\n- ")
			sb.WriteString(item.Name)
		}
	}

	dirs := visibleExits(room)
	if len(dirs) > 0 {
		sb.WriteString("\n\nExits:")
		for _, dir := range dirs {
			sb.WriteString("\n- ")
			sb.WriteString(dir)
		}
	}

	return types.Output{Text: sb.String(), Kind: types.Narration, Code: "LOOK"}
}

// visibleExits returns the non-hidden exit directions in sorted order
// for deterministic output.
func visibleExits(room *types.Room) []string {
	dirs := make([]string, 0, len(room.Exits))
	for dir, exit := range room.Exits {
		if !exit.Hidden {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}

package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/engine/resolve"
	"github.com/nathoo/dork/engine/snark"
	"github.com/nathoo/dork/types"
)

// examineHandler inspects a single item in scope. Carried items can be
// examined anywhere; room items need light.
type examineHandler struct{}

func (h *examineHandler) Priority() int { return 20 }

var examineVerbs = []string{"examine ", "x ", "inspect ", "look at "}

func examineTarget(input string) string {
	for _, v := range examineVerbs {
		if rest := parser.After(input, v); rest != "" {
			return rest
		}
	}
	return ""
}

func (h *examineHandler) CanHandle(input string, ctx *game.Context) bool {
	return examineTarget(input) != ""
}

func (h *examineHandler) Handle(input string, ctx *game.Context) types.Output {
	token := examineTarget(input)

	if item := resolve.InInventory(ctx, token); item != nil {
		return describeItem(item, ctx)
	}

	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room != nil && room.IsDark && !ctx.State.Phone.LightOn {
		return types.Output{
			Text: "It's too dark to make out any detail.",
			Kind: types.Error,
			Code: "DARK",
		}
	}
	if item := resolve.InRoom(ctx, token); item != nil {
		return describeItem(item, ctx)
	}
	return types.Output{
		Text: fmt.Sprintf("You see no %s here.", token),
		Kind: types.Error,
		Code: "NO_ITEM",
	}
}

func describeItem(item *types.Item, ctx *game.Context) types.Output {
	text := item.Description
	if item.Phone != nil {
		for _, m := range item.Phone.Messages {
			m.MarkSeen(ctx.Now())
		}
		unread := item.Phone.UnreadCount()
		ctx.State.Phone.Unread = unread
		switch unread {
		case 0:
			text += "\nNo unread messages."
		case 1:
			text += "\nThe screen announces 1 unread message."
		default:
			text += fmt.Sprintf("\nThe screen announces %d unread messages.", unread)
		}
	}
	return types.Output{Text: text, Kind: types.Narration, Code: "EXAMINE"}
}

// inventoryHandler covers carrying things: listing, taking, dropping.
type inventoryHandler struct{}

func (h *inventoryHandler) Priority() int { return 40 }

func (h *inventoryHandler) CanHandle(input string, ctx *game.Context) bool {
	switch input {
	case "inventory", "inv", "i":
		return true
	}
	return parser.After(input, "take ") != "" ||
		parser.After(input, "get ") != "" ||
		parser.After(input, "drop ") != ""
}

func (h *inventoryHandler) Handle(input string, ctx *game.Context) types.Output {
	switch input {
	case "inventory", "inv", "i":
		return h.list(ctx)
	}
	if token := parser.After(input, "take "); token != "" {
		return h.take(token, ctx)
	}
	if token := parser.After(input, "get "); token != "" {
		return h.take(token, ctx)
	}
	return h.drop(parser.After(input, "drop "), ctx)
}

func (h *inventoryHandler) list(ctx *game.Context) types.Output {
	items := make([]string, 0, len(ctx.State.Inventory))
	for id := range ctx.State.Inventory {
		if item := ctx.World.Item(id); item != nil {
			items = append(items, item.Name)
		}
	}
	if len(items) == 0 {
		return types.Output{
			Text: "You are carrying nothing but ambient dread.",
			Kind: types.Narration,
			Code: "INVENTORY",
		}
	}
	sort.Strings(items)
	var b strings.Builder
	b.WriteString("You are carrying:\n")
	for _, name := range items {
		b.WriteString("- " + name + "\n")
	}
	return types.Output{
		Text: strings.TrimRight(b.String(), "\n"),
		Kind: types.Narration,
		Code: "INVENTORY",
	}
}

func (h *inventoryHandler) take(token string, ctx *game.Context) types.Output {
	item := resolve.InRoom(ctx, token)
	if item == nil {
		return types.Output{
			Text: fmt.Sprintf("You see no %s here.", token),
			Kind: types.Error,
			Code: "NO_ITEM",
		}
	}
	if !item.Capabilities.Has(types.CapTakeable) {
		return types.Output{
			Text: "The " + item.Name + " declines to be owned by you.",
			Kind: types.Error,
			Code: "NOT_PORTABLE",
		}
	}
	room := ctx.World.Room(ctx.State.CurrentRoomID)
	delete(room.ItemIDs, item.ID)
	ctx.State.AddItem(item.ID)
	return types.Output{Text: "Taken: " + item.Name + ".", Kind: types.Narration, Code: "TAKEN"}
}

func (h *inventoryHandler) drop(token string, ctx *game.Context) types.Output {
	item := resolve.InInventory(ctx, token)
	if item == nil {
		return types.Output{
			Text: "You aren't carrying that.",
			Kind: types.Error,
			Code: "NOT_CARRIED",
		}
	}
	ctx.State.RemoveItem(item.ID)
	// The light lives on the device, not on the player.
	if item.Capabilities.Has(types.CapDevice) {
		ctx.State.SetLight(false)
	}
	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room.ItemIDs == nil {
		room.ItemIDs = map[int]bool{}
	}
	room.ItemIDs[item.ID] = true
	return types.Output{
		Text: snark.Dropped(item.Name, ctx.RNG),
		Kind: types.Narration,
		Code: "DROPPED",
	}
}

// readHandler reads anything with readable content. Reading a device
// opens its next unread message.
type readHandler struct{}

func (h *readHandler) Priority() int { return 45 }

func (h *readHandler) CanHandle(input string, ctx *game.Context) bool {
	return parser.After(input, "read ") != ""
}

func (h *readHandler) Handle(input string, ctx *game.Context) types.Output {
	token := parser.After(input, "read ")
	if token == "messages" || token == "message" {
		return readNextMessage(ctx)
	}

	item := resolve.InScope(ctx, token)
	if item == nil {
		return types.Output{
			Text: fmt.Sprintf("You see no %s to read.", token),
			Kind: types.Error,
			Code: "NO_ITEM",
		}
	}
	if item.Phone != nil {
		return readNextMessage(ctx)
	}
	if item.Readable == nil {
		return types.Output{
			Text: "The " + item.Name + " has nothing written on it. Refreshing, honestly.",
			Kind: types.Error,
			Code: "NOT_READABLE",
		}
	}
	text := item.Readable.Text
	if item.Readable.Title != "" {
		text = item.Readable.Title + "\n\n" + text
	}
	return types.Output{Text: text, Kind: types.Narration, Code: "READ"}
}

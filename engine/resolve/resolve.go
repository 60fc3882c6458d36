// Package resolve maps noun tokens from player input to items. Pure
// lookup over a scope (room contents, inventory): exact token match
// against normalized names and aliases, never substring matching, so
// partial nouns don't grab the wrong thing.
package resolve

import (
	"sort"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/parser"
	"github.com/nathoo/dork/types"
)

// InRoom finds an item in the player's current room by name or alias.
// Returns nil if nothing matches.
func InRoom(ctx *game.Context, token string) *types.Item {
	token = parser.Normalize(token)
	if token == "" {
		return nil
	}
	for _, item := range ctx.World.ItemsInRoom(ctx.State.CurrentRoomID) {
		if matches(item, token) {
			return item
		}
	}
	return nil
}

// InInventory finds a carried item by name or alias.
func InInventory(ctx *game.Context, token string) *types.Item {
	token = parser.Normalize(token)
	if token == "" {
		return nil
	}
	for id := range ctx.State.Inventory {
		item := ctx.World.Item(id)
		if item != nil && matches(item, token) {
			return item
		}
	}
	return nil
}

// InScope checks the inventory first, then the room.
func InScope(ctx *game.Context, token string) *types.Item {
	if item := InInventory(ctx, token); item != nil {
		return item
	}
	return InRoom(ctx, token)
}

// CarriedWith returns the lowest-ID carried item with all the given
// capability bits, or nil.
func CarriedWith(ctx *game.Context, cap types.Capability) *types.Item {
	ids := make([]int, 0, len(ctx.State.Inventory))
	for id := range ctx.State.Inventory {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		item := ctx.World.Item(id)
		if item != nil && item.Capabilities.Has(cap) {
			return item
		}
	}
	return nil
}

func matches(item *types.Item, token string) bool {
	if parser.Normalize(item.Name) == token {
		return true
	}
	for _, alias := range item.Aliases {
		if parser.Normalize(alias) == token {
			return true
		}
	}
	return false
}

package command

import (
	"fmt"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/resolve"
	"github.com/nathoo/dork/types"
)

// phoneHandler covers the carried device: reading messages, the light,
// and charging. All phrases are exact matches on normalized input.
type phoneHandler struct{}

func (h *phoneHandler) Priority() int { return 100 }

var phonePhrases = map[string]string{
	"messages":       "messages",
	"check messages": "messages",
	"check phone":    "messages",
	"phone":          "messages",
	"light on":       "light on",
	"turn on light":  "light on",
	"light":          "light on",
	"light off":      "light off",
	"turn off light": "light off",
	"charge phone":   "charge",
	"plug in phone":  "charge",
	"plug in":        "charge",
}

func (h *phoneHandler) CanHandle(input string, ctx *game.Context) bool {
	_, ok := phonePhrases[input]
	return ok
}

func (h *phoneHandler) Handle(input string, ctx *game.Context) types.Output {
	switch phonePhrases[input] {
	case "messages":
		return readNextMessage(ctx)
	case "light on":
		return h.light(true, ctx)
	case "light off":
		return h.light(false, ctx)
	default:
		return h.charge(ctx)
	}
}

func (h *phoneHandler) light(on bool, ctx *game.Context) types.Output {
	if resolve.CarriedWith(ctx, types.CapDevice) == nil {
		return noPhone()
	}
	st := ctx.State
	if !on {
		st.SetLight(false)
		return types.Output{
			Text: "The light clicks off. Darkness resumes its shift.",
			Kind: types.Narration,
			Code: "LIGHT_OFF",
		}
	}
	if !st.SetLight(true) {
		return phoneDead()
	}
	return types.Output{
		Text: "The phone light stutters on. It is not much. It is yours.",
		Kind: types.Narration,
		Code: "LIGHT_ON",
	}
}

func (h *phoneHandler) charge(ctx *game.Context) types.Output {
	st := ctx.State
	if resolve.CarriedWith(ctx, types.CapDevice) == nil {
		return noPhone()
	}
	if resolve.CarriedWith(ctx, types.CapPowerSource) == nil {
		return types.Output{
			Text: "You have nothing to charge it with. The phone judges you.",
			Kind: types.Error,
			Code: "NO_CHARGER",
		}
	}
	room := ctx.World.Room(st.CurrentRoomID)
	if room == nil || !room.HasPower {
		return types.Output{
			Text: "No outlet here. Electricity remains a privilege, not a right.",
			Kind: types.Error,
			Code: "NO_POWER",
		}
	}
	if !st.SetFlag("phone_charging") {
		return types.Output{
			Text: "It's already plugged in. Watched phones charge anyway.",
			Kind: types.Narration,
			Code: "CHARGING",
		}
	}
	return types.Output{
		Text: "You plug the phone in. A tiny lightning bolt appears, smugly.",
		Kind: types.Narration,
		Code: "CHARGING",
	}
}

// readNextMessage opens the oldest unread message on the carried device.
// Shared by the phone phrases and the read verb.
func readNextMessage(ctx *game.Context) types.Output {
	phone := resolve.CarriedWith(ctx, types.CapDevice)
	if phone == nil {
		return noPhone()
	}
	if ctx.State.Phone.Battery <= 0 {
		return phoneDead()
	}

	var next *types.Message
	for _, m := range phone.Phone.Messages {
		if m.State != types.MessageRead {
			next = m
			break
		}
	}
	if next == nil {
		return types.Output{
			Text: "No unread messages. The silence is a message too.",
			Kind: types.Narration,
			Code: "NO_UNREAD",
		}
	}

	next.MarkRead(ctx.Now())
	ctx.State.Phone.Unread = phone.Phone.UnreadCount()
	text := fmt.Sprintf("From: %s\nSubject: %s\n\n%s", next.From, next.Subject, next.Body)
	return types.Output{Text: text, Kind: types.Narration, Code: "MESSAGE"}
}

func noPhone() types.Output {
	return types.Output{
		Text: "You don't have a phone. A bold lifestyle, given the circumstances.",
		Kind: types.Error,
		Code: "NO_PHONE",
	}
}

func phoneDead() types.Output {
	return types.Output{
		Text: "The phone is dead. It shows you your own reflection instead.",
		Kind: types.Error,
		Code: "PHONE_DEAD",
	}
}

package systems

import (
	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/resolve"
	"github.com/nathoo/dork/types"
)

const (
	lightDrainPerTurn = 2
	chargePerTurn     = 10
)

const batteryDeadText = "The phone emits one final, judgmental buzz and dies.\n" +
	"Whatever light you had is gone."

// BatterySystem settles the phone battery at the end of every turn:
// the light drains it, a plugged-in charger fills it. It runs last so
// it sees the turn's final light state.
type BatterySystem struct{}

func (s *BatterySystem) Order() int { return 100 }

func (s *BatterySystem) Apply(ctx *game.Context, current types.Output) types.Output {
	st := ctx.State
	if resolve.CarriedWith(ctx, types.CapDevice) == nil {
		return current
	}

	delta := 0
	if st.Phone.LightOn {
		delta -= lightDrainPerTurn
	}
	if st.HasFlag("phone_charging") && chargeable(ctx) {
		delta += chargePerTurn
	}
	if delta == 0 {
		return current
	}

	before := st.Phone.Battery
	after := st.AdjustBattery(delta)
	if before > 0 && after == 0 {
		out := current.Append(batteryDeadText)
		out.Code = "BATTERY_DEAD"
		return out
	}
	return current
}

// chargeable re-checks the charging preconditions so the flag can't
// keep charging after the charger is dropped.
func chargeable(ctx *game.Context) bool {
	room := ctx.World.Room(ctx.State.CurrentRoomID)
	if room == nil || !room.HasPower {
		return false
	}
	return resolve.CarriedWith(ctx, types.CapPowerSource) != nil
}

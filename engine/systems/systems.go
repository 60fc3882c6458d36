// Package systems runs the post-command turn pipeline: autonomous world
// behavior that advances after every accepted command, in a fixed order,
// decorating the command's output rather than replacing it.
package systems

import (
	"sort"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/types"
)

// System is one autonomous behavior. Lower orders run first. Apply
// receives the output accumulated so far and must return an output,
// usually the same one.
type System interface {
	Order() int
	Apply(ctx *game.Context, current types.Output) types.Output
}

// Pipeline runs systems in ascending order after each command.
type Pipeline struct {
	systems []System
}

// NewPipeline builds a pipeline over the given systems. Ties keep
// insertion order.
func NewPipeline(systems []System) *Pipeline {
	sorted := make([]System, len(systems))
	copy(sorted, systems)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return &Pipeline{systems: sorted}
}

// Run threads the command output through every system.
func (p *Pipeline) Run(ctx *game.Context, out types.Output) types.Output {
	for _, s := range p.systems {
		out = s.Apply(ctx, out)
	}
	return out
}

// Default returns the standard pipeline ordering: noise propagates
// before the guard reacts, and the battery settles last.
func Default() []System {
	return []System{
		&NoiseSystem{},
		&GuardSystem{},
		&BatterySystem{},
	}
}

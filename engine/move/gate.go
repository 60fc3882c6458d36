package move

import (
	"github.com/nathoo/dork/engine/state"
	"github.com/nathoo/dork/types"
)

// Allowed is the exit gate: a pure predicate over player state with no
// side effects. Class check runs first, then the flag check. An exit
// with neither restriction is always allowed.
func Allowed(exit types.Exit, s *state.State) bool {
	if len(exit.AllowedClasses) > 0 {
		member := false
		for _, c := range exit.AllowedClasses {
			if c == s.Class {
				member = true
				break
			}
		}
		if !member {
			return false
		}
	}

	return exit.RequiredFlag == "" || s.HasFlag(exit.RequiredFlag)
}

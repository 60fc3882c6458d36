package describe

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/nathoo/dork/engine/game"
	"github.com/nathoo/dork/engine/state"
	"github.com/nathoo/dork/engine/world"
	"github.com/nathoo/dork/types"
)

func testCtx(t *testing.T) *game.Context {
	t.Helper()
	rooms := map[int]*types.Room{
		1: {
			ID: 1, Title: "Server Room", Description: "Racks of blinking lights.",
			Exits: map[string]types.Exit{
				"landing": {To: 2},
				"door":    {To: 2},
				"vent":    {To: 2, Hidden: true},
			},
			ItemIDs: map[int]bool{10: true, 11: true},
		},
		2: {ID: 2, Title: "Landing", Description: "Carpet.", IsDark: true},
	}
	items := map[int]*types.Item{
		10: {ID: 10, Name: "crowbar", Description: "Bent."},
		11: {ID: 11, Name: "badge", Description: "Laminated."},
	}
	w, err := world.New(rooms, items, nil)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return game.New(w, state.New(1), rand.New(rand.NewSource(1)), nil, nil)
}

func TestLook_FullListing(t *testing.T) {
	ctx := testCtx(t)
	out := Look(ctx)

	if out.Kind != types.Narration || out.Code != "LOOK" {
		t.Fatalf("kind=%v code=%q", out.Kind, out.Code)
	}
	want := "Server Room\n\nRacks of blinking lights.\n\n" +
		"You see:\n- crowbar\n- badge\n\n" +
		"Exits:\n- door\n- landing"
	if out.Text != want {
		t.Errorf("Look text:\n%q\nwant:\n%q", out.Text, want)
	}
}

func TestLook_HiddenExitOmitted(t *testing.T) {
	ctx := testCtx(t)
	out := Look(ctx)
	if strings.Contains(out.Text, "vent") {
		t.Error("hidden exit listed")
	}
}

func TestLook_DarkRoom(t *testing.T) {
	ctx := testCtx(t)
	ctx.State.MoveTo(2)

	out := Look(ctx)
	if out.Code != "DARK" {
		t.Fatalf("code = %q, want DARK", out.Code)
	}
	if strings.Contains(out.Text, "Carpet") {
		t.Error("dark room leaked its description")
	}

	// Light on reveals the room.
	ctx.State.SetLight(true)
	out = Look(ctx)
	if out.Code != "LOOK" || !strings.Contains(out.Text, "Carpet") {
		t.Errorf("lit look = %q (%s)", out.Text, out.Code)
	}
}

func TestLook_MissingRoom(t *testing.T) {
	ctx := testCtx(t)
	ctx.State.MoveTo(99)

	out := Look(ctx)
	if out.Kind != types.Error || out.Code != "NO_ROOM" {
		t.Errorf("kind=%v code=%q", out.Kind, out.Code)
	}
}

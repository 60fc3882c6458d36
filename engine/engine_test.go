package engine

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/dork/engine/save"
	"github.com/nathoo/dork/engine/world"
	"github.com/nathoo/dork/types"
)

// testFactory builds a tiny office on demand. Each call returns an
// independent world, the way a loader-backed factory would.
func testFactory() (*world.World, error) {
	rooms := map[int]*types.Room{
		1: {
			ID: 1, Title: "Garage", Description: "Concrete and regret.", Floor: 0,
			Exits:   map[string]types.Exit{"lobby": {To: 2}},
			ItemIDs: map[int]bool{100: true, 101: true},
		},
		2: {
			ID: 2, Title: "Lobby", Description: "Marble veneer.", Floor: 1,
			Exits: map[string]types.Exit{"garage": {To: 1}},
			ItemIDs: map[int]bool{102: true},
		},
	}
	items := map[int]*types.Item{
		100: {ID: 100, Name: "phone", Description: "Cracked.",
			Capabilities: types.CapTakeable | types.CapDevice,
			Phone: &types.PhoneSpec{Messages: []*types.Message{
				{From: "LASAGNA", Subject: "hi", Body: "say it clearly"},
			}}},
		101: {ID: 101, Name: "crowbar", Description: "Universal.",
			Capabilities: types.CapTakeable},
		102: {ID: 102, Name: "filing cabinet", Description: "Gray.",
			Capabilities: types.CapSavePoint},
	}
	return world.New(rooms, items, nil)
}

var testMeta = types.Meta{
	Title:      "Test Building",
	Start:      1,
	Intro:      "It is late. You should not be here.",
	StartFlags: []string{"is_night"},
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	saves := save.NewFileService(filepath.Join(t.TempDir(), "save.json"))
	g, err := New(testMeta, testFactory, Config{Saves: saves, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNew_RejectsMissingStartRoom(t *testing.T) {
	bad := testMeta
	bad.Start = 99
	if _, err := New(bad, testFactory, Config{Seed: 1}); err == nil {
		t.Fatal("expected error for missing start room")
	}
}

func TestNew_SyncsUnreadFromWorld(t *testing.T) {
	g := newTestGame(t)
	if g.State().Phone.Unread != 1 {
		t.Errorf("unread = %d, want 1", g.State().Phone.Unread)
	}
	if !g.State().HasFlag("is_night") {
		t.Error("start flag not applied")
	}
}

func TestExecute_EmptyInputCostsNothing(t *testing.T) {
	g := newTestGame(t)
	out := g.Execute("   ")
	if out.Code != "EMPTY" {
		t.Fatalf("code = %q", out.Code)
	}
	if g.State().TurnCount != 0 {
		t.Errorf("turn count = %d, want 0", g.State().TurnCount)
	}
}

func TestExecute_TurnsAdvance(t *testing.T) {
	g := newTestGame(t)
	g.Execute("look")
	g.Execute("look")
	if g.State().TurnCount != 2 {
		t.Errorf("turn count = %d, want 2", g.State().TurnCount)
	}
}

func TestExecute_IntroThenClassGate(t *testing.T) {
	g := newTestGame(t)

	out := g.Execute("look")
	if out.Code != "INTRO" || out.Text != testMeta.Intro {
		t.Fatalf("first turn: code=%q text=%q", out.Code, out.Text)
	}

	out = g.Execute("look")
	if out.Code != "CLASS_PROMPT" {
		t.Fatalf("second turn: code=%q", out.Code)
	}

	out = g.Execute("intern")
	if out.Code != "CLASS_SET" {
		t.Fatalf("class pick: code=%q", out.Code)
	}
	if !strings.Contains(out.Text, "Garage") {
		t.Errorf("class pick should describe the room: %q", out.Text)
	}
}

// past fast-forwards a fresh session through the intro and class gate.
func past(t *testing.T, g *Game) {
	t.Helper()
	g.Execute("anything")
	g.Execute("intern")
}

func TestExecute_MovementByBareExit(t *testing.T) {
	g := newTestGame(t)
	past(t, g)

	out := g.Execute("lobby")
	if g.State().CurrentRoomID != 2 {
		t.Fatalf("room = %d, want 2", g.State().CurrentRoomID)
	}
	if !strings.Contains(out.Text, "Marble veneer") {
		t.Errorf("arrival text = %q", out.Text)
	}
	if g.State().Counter("floor") != 1 {
		t.Errorf("floor = %d", g.State().Counter("floor"))
	}
}

func TestExecute_NewGameRebuildsEverything(t *testing.T) {
	g := newTestGame(t)
	past(t, g)
	g.Execute("take crowbar")
	g.Execute("lobby")
	oldWorld := g.World()

	out := g.Execute("new game")

	if g.World() == oldWorld {
		t.Error("world not rebuilt")
	}
	if g.State().CurrentRoomID != 1 || g.State().HasItem(101) {
		t.Error("state not reset")
	}
	if g.State().Class != types.ClassNone {
		t.Error("class survived the restart")
	}
	// The confirmation is followed by the fresh opening beat, which
	// starts with the intro again.
	if !strings.Contains(out.Text, "pretend none of that happened") ||
		!strings.Contains(out.Text, testMeta.Intro) {
		t.Errorf("restart text = %q", out.Text)
	}
	// The taken item is back on the fresh garage floor.
	if !g.World().Room(1).ItemIDs[101] {
		t.Error("rebuilt world missing the crowbar")
	}
	// The opening turn ran as a full turn; on a fresh state that
	// changes nothing.
	if g.State().Phone.Battery != 100 {
		t.Errorf("battery = %d after restart", g.State().Phone.Battery)
	}
}

func TestExecute_SaveAndLoadRoundTrip(t *testing.T) {
	g := newTestGame(t)
	past(t, g)
	g.Execute("take crowbar")
	g.Execute("lobby")

	if out := g.Execute("save"); out.Code != "SAVED" {
		t.Fatalf("save code = %q", out.Code)
	}

	// Wander off and lose everything.
	g.Execute("garage")
	g.Execute("drop crowbar")

	out := g.Execute("load game")
	if g.State().CurrentRoomID != 2 {
		t.Fatalf("room = %d, want 2", g.State().CurrentRoomID)
	}
	if !g.State().HasItem(101) {
		t.Error("inventory not restored")
	}
	if g.State().Class != types.ClassIntern {
		t.Errorf("class = %v", g.State().Class)
	}
	if g.State().Counter("floor") != 1 {
		t.Errorf("floor bookkeeping not rebuilt: %d", g.State().Counter("floor"))
	}
	if !strings.Contains(out.Text, "Marble veneer") {
		t.Errorf("load should re-describe the room: %q", out.Text)
	}
}

func TestExecute_LoadWithUnknownRoomIsRefused(t *testing.T) {
	g := newTestGame(t)
	past(t, g)

	snap := save.Build(g.State())
	snap.CurrentRoomID = 999
	if err := g.saves.Write(snap); err != nil {
		t.Fatal(err)
	}

	out := g.Execute("load game")
	if !strings.Contains(out.Text, "room 999") {
		t.Errorf("refusal text = %q", out.Text)
	}
	// The running session is untouched.
	if g.State().CurrentRoomID != 1 {
		t.Errorf("room = %d, want 1", g.State().CurrentRoomID)
	}
	if g.State().Class != types.ClassIntern {
		t.Errorf("class = %v", g.State().Class)
	}
	if out := g.Execute("look"); out.Code != "LOOK" {
		t.Errorf("session unplayable after refused load: %q", out.Code)
	}
}

func TestExecute_LoadWithoutSaveFails(t *testing.T) {
	g := newTestGame(t)
	past(t, g)
	out := g.Execute("load game")
	if out.Code != "NO_SAVE" {
		t.Errorf("code = %q", out.Code)
	}
}

func TestExecute_GameOverLocksInput(t *testing.T) {
	g := newTestGame(t)
	past(t, g)
	g.State().EndGame("You were escorted out.")

	out := g.Execute("look")
	if out.Code != "GAME_OVER" {
		t.Fatalf("code = %q", out.Code)
	}

	out = g.Execute("new game")
	if g.State().GameOver {
		t.Error("new game did not clear the ending")
	}
	if !strings.Contains(out.Text, testMeta.Intro) {
		t.Errorf("fresh session missing intro: %q", out.Text)
	}
}

func TestExecute_BatteryDrainsAcrossTurns(t *testing.T) {
	g := newTestGame(t)
	past(t, g)
	g.Execute("take phone")
	g.Execute("light on")

	start := g.State().Phone.Battery
	g.Execute("wait")
	g.Execute("wait")
	g.Execute("wait")

	if got := g.State().Phone.Battery; got != start-6 {
		t.Errorf("battery = %d, want %d", got, start-6)
	}
}

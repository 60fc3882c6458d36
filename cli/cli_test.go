package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/dork/engine"
	"github.com/nathoo/dork/engine/world"
	"github.com/nathoo/dork/types"
)

func testGame(t *testing.T) *engine.Game {
	t.Helper()
	factory := func() (*world.World, error) {
		rooms := map[int]*types.Room{
			1: {
				ID: 1, Title: "Garage", Description: "Concrete and regret.",
				Exits: map[string]types.Exit{"lobby": {To: 2}},
			},
			2: {
				ID: 2, Title: "Lobby", Description: "Marble veneer.",
				Exits: map[string]types.Exit{"garage": {To: 1}},
			},
		}
		return world.New(rooms, map[int]*types.Item{}, nil)
	}
	meta := types.Meta{Title: "T", Start: 1, Intro: "It is late."}
	g, err := engine.New(meta, factory, engine.Config{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func run(t *testing.T, script string) (string, *engine.Game) {
	t.Helper()
	g := testGame(t)
	var out bytes.Buffer
	c := &CLI{Game: g, In: strings.NewReader(script), Out: &out}
	c.Run()
	return out.String(), g
}

func TestRun_OpensWithTheFirstTurn(t *testing.T) {
	out, _ := run(t, "")
	if !strings.Contains(out, "It is late.") {
		t.Errorf("opening turn missing: %q", out)
	}
}

func TestRun_ScriptedSession(t *testing.T) {
	script := strings.Join([]string{
		"intern",
		"go lobby",
		"look",
	}, "\n")
	out, g := run(t, script)

	if g.State().CurrentRoomID != 2 {
		t.Errorf("room = %d, want 2", g.State().CurrentRoomID)
	}
	if !strings.Contains(out, "Marble veneer") {
		t.Errorf("output missing lobby description: %q", out)
	}
}

func TestRun_CommentsAreSkipped(t *testing.T) {
	script := strings.Join([]string{
		"# this is a walkthrough",
		"intern",
	}, "\n")
	_, g := run(t, script)

	// The comment must not count as a turn or reach the class gate.
	if g.State().Class != types.ClassIntern {
		t.Errorf("class = %v", g.State().Class)
	}
	if g.State().TurnCount != 2 { // opening look + intern
		t.Errorf("turns = %d", g.State().TurnCount)
	}
}

func TestRun_QuitStopsTheLoop(t *testing.T) {
	script := strings.Join([]string{
		"/quit",
		"intern",
	}, "\n")
	out, g := run(t, script)

	if !strings.Contains(out, "[Goodbye.]") {
		t.Errorf("no farewell: %q", out)
	}
	if g.State().TurnCount != 1 { // only the opening turn ran
		t.Errorf("turns = %d", g.State().TurnCount)
	}
}

func TestRun_AgainRepeatsLastCommand(t *testing.T) {
	script := strings.Join([]string{
		"intern",
		"wait",
		"again",
		"g",
	}, "\n")
	out, g := run(t, script)

	// opening look + intern + wait + 2 repeats
	if g.State().TurnCount != 5 {
		t.Errorf("turns = %d, want 5", g.State().TurnCount)
	}
	if strings.Count(out, "You wait.") != 3 {
		t.Errorf("wait output not repeated:\n%s", out)
	}
}

func TestRun_AgainWithNothingToRepeat(t *testing.T) {
	out, _ := run(t, "again\n")
	if !strings.Contains(out, "Nothing to repeat.") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_StateDump(t *testing.T) {
	out, _ := run(t, "intern\n/state\n")
	for _, want := range []string{"[Turn: 2]", "[Room: 1 (Garage)]", "[Battery: 100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("state dump missing %q:\n%s", want, out)
		}
	}
}

func TestRun_UnknownMetaCommand(t *testing.T) {
	out, _ := run(t, "/frobnicate\n")
	if !strings.Contains(out, "Unknown command: /frobnicate") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_EchoInput(t *testing.T) {
	g := testGame(t)
	var out bytes.Buffer
	c := &CLI{Game: g, In: strings.NewReader("intern\n"), Out: &out, EchoInput: true}
	c.Run()

	if !strings.Contains(out.String(), "> intern") {
		t.Errorf("input not echoed after the prompt:\n%s", out.String())
	}
}

// Package cli provides plain terminal I/O and meta-command dispatch for
// the Dork engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/dork/engine"
	"github.com/nathoo/dork/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Game      *engine.Game
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given game session.
func New(g *engine.Game) *CLI {
	return &CLI{
		Game: g,
		In:   os.Stdin,
		Out:  os.Stdout,
	}
}

// Run starts the game loop: one opening turn, then prompt → input →
// dispatch → output until EOF or /quit.
func (c *CLI) Run() {
	c.printOutput(c.Game.Execute("look"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput && input != "" {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else if input != "" {
			c.lastCmd = input
		}

		c.printOutput(c.Game.Execute(input))
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   — Exit game",
		"  /help   — Show this help",
		"  /state  — Debug: dump current state",
		"",
		"Game commands:",
		"  look (l)            — Describe the room",
		"  examine <thing> (x) — Look closely at something",
		"  go <dir>            — Move (or just type the exit name)",
		"  take/get <item>     — Pick something up",
		"  drop <item>         — Put something down",
		"  read <thing>        — Read something",
		"  push <thing>        — Push buttons, doors, luck",
		"  say <words>         — Speak out loud",
		"  hide                — Get out of sight",
		"  listen / wait (z)   — Use your ears / your patience",
		"  inventory (i)       — Check what you're carrying",
		"  messages, light on/off, charge phone",
		"  save / load game / new game",
		"  again (g)           — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Game.State()
	room := c.Game.World().Room(s.CurrentRoomID)
	roomTitle := "?"
	if room != nil {
		roomTitle = room.Title
	}

	inv := make([]int, 0, len(s.Inventory))
	for id := range s.Inventory {
		inv = append(inv, id)
	}
	sort.Ints(inv)

	c.printSystem(fmt.Sprintf("Turn: %d", s.TurnCount))
	c.printSystem(fmt.Sprintf("Room: %d (%s)", s.CurrentRoomID, roomTitle))
	c.printSystem(fmt.Sprintf("Class: %s", s.Class))
	c.printSystem(fmt.Sprintf("Inventory: %v", inv))
	c.printSystem(fmt.Sprintf("Battery: %d%% (light %v)", s.Phone.Battery, s.Phone.LightOn))
	if flags := s.Flags(); len(flags) > 0 {
		sort.Strings(flags)
		c.printSystem(fmt.Sprintf("Flags: %v", flags))
	}
	if s.GameOver {
		c.printSystem("Game over: " + s.GameOverReason)
	}
}

func (c *CLI) printOutput(out types.Output) {
	c.printLine(out.Text)
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

// Dork is a turn-based text adventure engine with Lua-defined content.
// Usage: dork [--version] [--plain] [--script <file>] [--seed <n>] <game_directory>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nathoo/dork/cli"
	"github.com/nathoo/dork/engine"
	"github.com/nathoo/dork/engine/save"
	"github.com/nathoo/dork/loader"
	"github.com/nathoo/dork/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var gameDir string
	var scriptFile string
	var seed int64

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("dork %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid seed %q\n", args[i])
				os.Exit(1)
			}
			seed = n
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: dork [--version] [--plain] [--script <file>] [--seed <n>] <game_directory>\n")
		os.Exit(1)
	}

	// Load and compile Lua game content.
	data, err := loader.Load(gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	home, _ := os.UserHomeDir()
	saveDir := filepath.Join(home, ".dork")
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating save directory: %v\n", err)
		os.Exit(1)
	}

	g, err := engine.New(data.Meta, data.NewWorld, engine.Config{
		Saves: save.NewFileService(filepath.Join(saveDir, "save.json")),
		Seed:  seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		printHeader(g)
		c := cli.New(g)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		printHeader(g)
		c := cli.New(g)
		c.Run()
		return
	}

	if err := tui.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHeader(g *engine.Game) {
	meta := g.Meta()
	fmt.Printf("%s v%s by %s\n\n", meta.Title, meta.Version, meta.Author)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

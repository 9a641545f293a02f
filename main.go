package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"dissonance/internal/game"
	"dissonance/pkg/logger"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if path := os.Getenv("LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			out = f
		}
	}

	game.New(screen, logger.New(out)).Run()
}

// Command chat talks to the delivery chatbot's intent responder from a terminal.
// It runs a full-screen chat when stdin is a terminal and a line-oriented
// loop otherwise, which makes it usable in pipes and scripts.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/edgard/deliverybot/internal/responder"
)

func main() {
	os.Exit(run())
}

func run() int {
	plain := flag.Bool("plain", false, "Read one message per line from stdin and print replies")
	tz := flag.String("tz", "Local", "Time zone for date and time replies")
	flag.Parse()

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		slog.Error("Invalid time zone", "tz", *tz, "error", err)
		return 2
	}

	resp, err := responder.New(responder.WithLocation(loc))
	if err != nil {
		slog.Error("Failed to build intent responder", "error", err)
		return 1
	}

	if *plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		if err := runPlain(os.Stdin, os.Stdout, resp); err != nil {
			slog.Error("Chat loop failed", "error", err)
			return 1
		}
		return 0
	}

	if _, err := tea.NewProgram(newModel(resp), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "chat:", err)
		return 1
	}
	return 0
}

// cmd/cli/main.go
//
// Terminal front end. Plans trips with the same request controller as the
// web app, rendering results as markdown.
package main

import (
	"context"
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"io"
	"log"
	"os"
	"voyage/internal/config"
	"voyage/internal/render"
	"voyage/internal/services"
	"voyage/internal/tui"
)

func main() {
	cfg := config.Load()

	// bubbletea owns the terminal; planner logs go to a file if asked for.
	if path := os.Getenv("VOYAGE_LOG_FILE"); path != "" {
		f, err := tea.LogToFile(path, "voyage")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading templates: %v\n", err)
		os.Exit(1)
	}
	mock := services.NewMockPlanner(cfg.MockLatency)
	controller := services.BuildRequestController(cfg, mock, renderer)

	p := tea.NewProgram(tui.NewApp(context.Background(), controller, string(cfg.Mode)))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/loadbutton/internal/config"
	"github.com/ytget/loadbutton/internal/host"
	"github.com/ytget/loadbutton/internal/locale"
	"github.com/ytget/loadbutton/internal/tui"
)

func main() {
	// Log lines would corrupt the alternate screen
	if path := os.Getenv("LOADBUTTON_LOG"); path != "" {
		f, err := tea.LogToFile(path, "loadbutton")
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		cfg = config.Defaults()
	}

	style, err := config.LoadStyle(cfg.UI.StylePath)
	if err != nil {
		log.Printf("style: %v, using defaults", err)
		style = &config.Style{}
	}

	localization := locale.NewLocalization()
	localization.SetLanguage(cfg.UI.Language)

	ops := host.NewSimulatedService(cfg.Operation.Delay, cfg.Operation.FailureRate)
	m := tui.NewModel(ops, localization, style.Options(), cfg.UI.FrameInterval, nil)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

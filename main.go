package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/loadbutton/internal/config"
	"github.com/ytget/loadbutton/internal/host"
	"github.com/ytget/loadbutton/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.loadbutton"
	AppName = "Load App"
)

func main() {
	// Log version information
	fmt.Printf("Load App v%s starting...\n", version)

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
	opts := style.Options()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLoadTheme(opts))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// The desktop language comes from preferences unless set in config
	if cfg.UI.Language != "" && cfg.UI.Language != config.DefaultLanguage {
		config.NewSettings(myApp).SetLanguage(cfg.UI.Language)
	}

	ops := host.NewSimulatedService(cfg.Operation.Delay, cfg.Operation.FailureRate)
	ui.NewRootUI(myWindow, myApp, ops, opts)

	myWindow.ShowAndRun()
}

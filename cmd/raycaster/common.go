package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Per-command flags shared by the front ends
var (
	flagQuality string
	flagMinimap bool
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the process logger. Full-screen front ends own the
// terminal, so without --log-file they log nowhere.
func newLogger(fullscreen bool) (*log.Logger, func()) {
	var (
		out     io.Writer = os.Stderr
		cleanup           = func() {}
	)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		out = f
		cleanup = func() { f.Close() }
	case fullscreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "raycaster",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup
}

// loadConfig loads the engine config and applies command-line overrides.
func loadConfig() config.RaycasterConfig {
	cfg, err := config.LoadRaycaster(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	if flagQuality != "" {
		if err := config.ApplyQualityPreset(&cfg, config.QualityPreset(flagQuality)); err != nil {
			fail("%v", err)
		}
	}
	if flagMinimap {
		cfg.Minimap.Enabled = true
	}
	return cfg
}

// loadMap resolves a map argument against built-ins and --maps-dir.
func loadMap(args []string) world.Map {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}

	m, err := maps.NewCatalog(flagMapsDir).Load(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'raycaster maps' to see available maps.")
		os.Exit(1)
	}
	return m
}

// openStore opens session storage. Play continues without history on
// failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		logger.Warn("could not open session database", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the terminal front end to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// currentUser names the local player in the session history.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// Package main is the entry point for the tmpmail command.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shineum/tmpmail/internal/address"
	"github.com/shineum/tmpmail/internal/cli"
	"github.com/shineum/tmpmail/internal/config"
	"github.com/shineum/tmpmail/internal/provider/onesecmail"
	"github.com/shineum/tmpmail/internal/storage"
	"github.com/shineum/tmpmail/internal/viewer"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.2.3"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	// Setup structured logging
	setupLogger(cfg.Logging.Level, cfg.Logging.Format)

	store := storage.New(cfg.Storage.Dir)
	client := onesecmail.New(onesecmail.Config{BaseURL: cfg.Provider.BaseURL})

	slog.Debug("starting tmpmail",
		"provider", client.Name(),
		"storage_dir", store.Dir(),
		"browser", cfg.Viewer.Browser,
	)

	app := &cli.App{
		Addresses:      address.NewManager(store),
		Provider:       client,
		Documents:      store,
		Viewer:         viewer.New(),
		Clipboard:      cli.SystemClipboard,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Version:        version,
		DefaultBrowser: cfg.Viewer.Browser,
	}

	return app.Run(context.Background(), args)
}

// setupLogger configures the global slog logger on stderr, keeping stdout
// for command output.
func setupLogger(level, format string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

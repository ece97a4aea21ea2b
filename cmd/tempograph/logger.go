package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// newLogger builds a console-friendly slog.Logger using tint, matching the
// verbosity conventions of the rest of this CLI's command tree.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}

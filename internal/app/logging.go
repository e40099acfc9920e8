package app

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/blackwell-systems/farescout/internal/output"
)

// newLogger builds the slog logger commands hand to the analyzers. Logs go
// to stderr so piped JSON output stays clean.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    output.IsNoColor(),
	}))
}

// applyColorMode resolves the color mode before any styled output is
// rendered: an explicit --no-color wins, otherwise non-terminal stdout
// disables color.
func applyColorMode() {
	if flagNoColor {
		output.SetNoColor(true)
		return
	}
	output.AutoColor()
}

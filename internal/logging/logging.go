// Package logging builds the panel's root slog.Logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/coreos/go-systemd/v22/journal"
)

// New returns a logger for the configured output: text or json lines
// on stderr, or native journal records when requested and the journal
// socket is present. debug lowers the level to slog.LevelDebug.
func New(debug bool, format string, useJournal bool) *slog.Logger {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	}
	if useJournal && journal.Enabled() {
		return slog.New(NewJournalHandler(level))
	}
	opts := slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &opts))
}

package config

import (
	"os"

	"github.com/charmbracelet/log"
)

// Log is the game-wide logger.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "ffighter",
	ReportTimestamp: true,
	Level:           log.InfoLevel,
})

// SetLogLevel parses a level name ("debug", "info", ...) and applies it.
func SetLogLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

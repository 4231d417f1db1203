package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults; Init reconfigures it in place.
var Log = logrus.New()

// Config selects the level and output format of the global logger.
type Config struct {
	Level  string // logrus level name, "info" when empty or invalid
	Format string // "json" for production, anything else for text
	Output io.Writer
}

// Init configures the global logger. Call it once at startup in main.go.
func Init(cfg Config) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}

package logutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console", "json" or "auto"
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "auto"}
}

// New builds a logger writing to w. With the "auto" format, console output is
// used only when w is a terminal.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), errors.Wrap(err, "log level")
		}
		lvl = l
	}

	out := w
	switch strings.ToLower(cfg.Format) {
	case "", "auto":
		if isTerminal(w) {
			out = consoleWriter(w)
		}
	case "console":
		out = consoleWriter(w)
	case "json":
	default:
		return zerolog.Nop(), errors.Errorf("unknown log format: %q", cfg.Format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func consoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

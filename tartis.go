// Package tartis wires process level concerns for the game: configuration
// from the environment, logging and the version string.
package tartis

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const Version = "Tartis 1.0"

type Config struct {
	FallInterval time.Duration `env:"TARTIS_FALL_INTERVAL" envDefault:"500ms"`
	Cols         int           `env:"TARTIS_COLS" envDefault:"10"`
	Rows         int           `env:"TARTIS_ROWS" envDefault:"20"`

	// Seed makes piece order reproducible. Zero seeds from the clock.
	Seed int64 `env:"TARTIS_SEED"`

	LogFile   string `env:"TARTIS_LOG_FILE"`
	LogFormat string `env:"TARTIS_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"TARTIS_LOG_LEVEL" envDefault:"info"`

	ColorProfile string `env:"TARTIS_COLOR_PROFILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.FallInterval <= 0 {
		errs = append(errs, fmt.Errorf("fall interval must be positive: %s", c.FallInterval))
	}
	if c.Cols < 4 {
		errs = append(errs, fmt.Errorf("board needs at least 4 columns: %d", c.Cols))
	}
	if c.Rows < 4 {
		errs = append(errs, fmt.Errorf("board needs at least 4 rows: %d", c.Rows))
	}
	switch c.LogFormat {
	case "", "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("unknown log format: %q", c.LogFormat))
	}
	if _, err := c.Profile(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Profile maps ColorProfile to a termenv profile, defaulting to 256 colours
// like an ssh session would get.
func (c Config) Profile() (termenv.Profile, error) {
	switch c.ColorProfile {
	case "":
		return termenv.ANSI256, nil
	case "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color profile: %q", c.ColorProfile)
	}
}

// NewLogger builds the logger described by c. The terminal belongs to the
// game, so logs go to LogFile or nowhere. The returned closer releases the
// file.
func (c Config) NewLogger() (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "tartis",
	})

	switch c.LogFormat {
	case "json":
		l.SetFormatter(log.JSONFormatter)
	case "logfmt":
		l.SetFormatter(log.LogfmtFormatter)
	}

	if c.LogLevel != "" {
		lv, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, nil, errors.Join(fmt.Errorf("parse log level: %w", err), closer.Close())
		}
		l.SetLevel(lv)
	}

	return l, closer, nil
}

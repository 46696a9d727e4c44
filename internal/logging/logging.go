// Package logging builds the zerolog logger used across the app.
//
// The board owns the terminal while it runs, so logs never go to stdout:
// they are appended to a file when one is configured and dropped otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const DefaultLevel = zerolog.InfoLevel

// ParseLevel maps a level name to a zerolog level. Empty means DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging.ParseLevel: %w", err)
	}
	return lvl, nil
}

// New returns a timestamped JSON logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Open returns a logger appending to path along with a func that closes the
// file. An empty path yields zerolog.Nop() and a no-op close.
func Open(path string, level string) (zerolog.Logger, func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("logging.Open: create dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("logging.Open: %w", err)
	}
	cleanup := func() {
		_ = f.Close()
	}
	return New(f, lvl), cleanup, nil
}

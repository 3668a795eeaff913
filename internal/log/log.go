// Package log provides the zerolog-based logger used by the
// saes command.
//
// The logger is a no-op until SetOutput is called.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
)

// SetOutput directs log output to w at the named level.
//
// Output is human readable and carries no timestamp, since the
// command runs once and exits.
func SetOutput(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.New(out).Level(lvl)
	return nil
}

// Reset restores the no-op logger.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.Nop()
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := pkgLogger
	return &l
}

func Debug() *zerolog.Event { return logger().Debug() }
func Error() *zerolog.Event { return logger().Error() }

// Package logging builds the debug logger.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"simpletasks/internal/config"
)

// New returns a logger for cfg and a function that releases its resources.
// With neither --debug nor log_file the logger discards everything.
func New(cfg *config.Config, errOut io.Writer) (*slog.Logger, func() error) {
	var writers []io.Writer
	closer := func() error { return nil }

	if cfg.Debug {
		writers = append(writers, errOut)
	}
	if path := cfg.LogPath(); path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    1, // megabytes
			MaxBackups: 3,
		}
		writers = append(writers, lj)
		closer = lj.Close
	}

	if len(writers) == 0 {
		return slog.New(slog.DiscardHandler), closer
	}
	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("app", config.AppName), closer
}

package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// cliLogger implements colorclip.Logger on top of charmbracelet/log.
// Progress messages are debug-level and only shown with --verbose.
type cliLogger struct {
	logger *log.Logger
}

func newCLILogger(w io.Writer, verbose bool) *cliLogger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return &cliLogger{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: verbose,
			TimeFormat:      "15:04:05.00",
			Level:           level,
			Prefix:          "colorclip",
		}),
	}
}

func (l *cliLogger) Infof(format string, args ...any) {
	l.logger.Debugf(format, args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	l.logger.Warnf(format, args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	l.logger.Errorf(format, args...)
}

// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// Setup points the standard logger at w and picks its formatter:
// "text" or "json" force one, "auto" uses text when w is a terminal and
// JSON otherwise. verbose enables debug entries.
func Setup(w io.Writer, format string, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(Formatter(format, IsTerminal(w)))
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Formatter returns the formatter for format; tty decides "auto".
func Formatter(format string, tty bool) log.Formatter {
	switch format {
	case "json":
		return &log.JSONFormatter{}
	case "text":
		return &log.TextFormatter{FullTimestamp: true}
	}
	if tty {
		return &log.TextFormatter{FullTimestamp: true}
	}
	return &log.JSONFormatter{}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

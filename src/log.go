package wlan

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:gochecknoglobals
	Prefix: "wlan",
	Level:  log.InfoLevel,
})

// SetLogLevel accepts "debug", "info", "warn", "error" or "fatal".
// At debug level the packet codec dumps every intermediate buffer.
func SetLogLevel(level string) error {
	var l, err = log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	logger.SetLevel(l)

	return nil
}

// SetLogOutput redirects the package logger, e.g. to io.Discard in tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Logger exposes the package logger so the command line tools share it.
func Logger() *log.Logger {
	return logger
}

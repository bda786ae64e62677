// Package logging configures the application logger. The TUI owns the
// terminal, so logs go to a file under the XDG state directory instead
// of stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

const appName = "reel"

// Setup returns a logger writing to the state-dir log file. The file is
// truncated on each run. When the file cannot be opened the logger
// discards output rather than fighting the TUI for the terminal.
func Setup(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}

	f, err := os.Create(path)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)

	return log
}

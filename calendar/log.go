package calendar

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger carries the engine's diagnostics (currently only malformed
// working-hours warnings). It is silent until the host wires its own
// logger in with SetLogger.
var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// SetLogger redirects engine diagnostics to the host application's logger.
// Passing nil restores the silent default.
func SetLogger(entry *logrus.Entry) {
	if entry == nil {
		logger = newDiscardLogger()
		return
	}
	logger = entry
}

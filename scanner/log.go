package scanner

import (
	"github.com/decred/slog"

	"github.com/rawblock/xmrwallet/build"
)

// scnLog is initialized with no output filters, so the package is silent
// until the caller requests otherwise via UseLogger.
var scnLog slog.Logger

func init() {
	UseLogger(build.NewSubLogger("SCAN", nil))
}

// DisableLog disables all library log output.
func DisableLog() {
	UseLogger(slog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	scnLog = logger
}

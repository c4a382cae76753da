package txbuilder

import (
	"github.com/decred/slog"

	"github.com/rawblock/xmrwallet/build"
)

var txbLog slog.Logger

func init() {
	UseLogger(build.NewSubLogger("TXBD", nil))
}

// DisableLog disables all library log output.
func DisableLog() {
	UseLogger(slog.Disabled)
}

// UseLogger sets the package-wide logger used by this package. This should
// be called before the package is used.
func UseLogger(logger slog.Logger) {
	txbLog = logger
}

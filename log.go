// Package xmrwallet is the cryptographic wallet core: curve arithmetic,
// stealth-output construction, CLSAG ring signatures, Bulletproofs+ range
// proofs, and the transaction-builder pipeline that ties them together.
//
// This file wires up the package-level sub-loggers shared by every core
// subsystem, following the same addLndPkgLogger/AddSubLogger/SetSubLogger
// split the original daemon used: each subsystem package declares its own
// replaceable logger at var-init time, and SetupLoggers rebinds them all
// once a root RotatingLogWriter exists.
package xmrwallet

import (
	"github.com/decred/slog"
	"github.com/rawblock/xmrwallet/build"
)

// replaceableLogger is a thin wrapper around a logger that is used so the
// logger can be replaced easily without some black pointer magic.
type replaceableLogger struct {
	slog.Logger
	subsystem string
}

// Loggers cannot be used before SetupLoggers has been called with a root
// writer. We declare all loggers so we never run into a nil reference if
// they are used early.
var (
	corePkgLoggers []*replaceableLogger

	addCorePkgLogger = func(subsystem string) *replaceableLogger {
		l := &replaceableLogger{
			Logger:    build.NewSubLogger(subsystem, nil),
			subsystem: subsystem,
		}
		corePkgLoggers = append(corePkgLoggers, l)
		return l
	}

	wlltLog = addCorePkgLogger("WLLT")
)

// UseLoggerFunc is the shape every core subsystem exposes for rebinding its
// own package-level logger once a root logger is available.
type UseLoggerFunc func(slog.Logger)

// SetupLoggers initializes all package-global logger variables and rebinds
// every subsystem package's own logger via the supplied UseLogger hooks,
// keyed by subsystem tag (e.g. "SCAN", "SLCT", "TXBD").
func SetupLoggers(root *build.RotatingLogWriter, subsystems map[string]UseLoggerFunc) {
	for _, l := range corePkgLoggers {
		l.Logger = build.NewSubLogger(l.subsystem, root.GenSubLogger)
		SetSubLogger(root, l.subsystem, l.Logger)
	}

	for subsystem, useLogger := range subsystems {
		AddSubLogger(root, subsystem, useLogger)
	}
}

// AddSubLogger is a helper method to conveniently create and register the
// logger of one or more sub systems.
func AddSubLogger(root *build.RotatingLogWriter, subsystem string,
	useLoggers ...UseLoggerFunc) {

	logger := build.NewSubLogger(subsystem, root.GenSubLogger)
	SetSubLogger(root, subsystem, logger, useLoggers...)
}

// SetSubLogger is a helper method to conveniently register the logger of a
// sub system.
func SetSubLogger(root *build.RotatingLogWriter, subsystem string,
	logger slog.Logger, useLoggers ...UseLoggerFunc) {

	root.RegisterSubLogger(subsystem, logger)
	for _, useLogger := range useLoggers {
		useLogger(logger)
	}
}

// logClosure is used to provide a closure over expensive logging operations
// so they don't have to be performed when the logging level doesn't warrant
// it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// newLogClosure returns a new closure over a function that returns a string
// which itself provides a Stringer interface so that it can be used with
// the logging system.
func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}

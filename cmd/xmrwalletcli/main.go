// Command xmrwalletcli is the offline-signer command-line front end for
// the wallet core: mnemonic generation and restore, address derivation,
// and the tx build/sign/submit workflow built around the offline-signing
// document handoff.
//
// The core packages this binary wires together never depend on this
// package; it exists only to give the JSON interchange documents produced
// by txbuilder.Export and consumed by txbuilder.ImportUnsigned a concrete
// user-facing producer and consumer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/rawblock/xmrwallet"
	"github.com/rawblock/xmrwallet/build"
	"github.com/rawblock/xmrwallet/rpcprovider"
	"github.com/rawblock/xmrwallet/scanner"
	"github.com/rawblock/xmrwallet/selector"
	"github.com/rawblock/xmrwallet/storage"
	"github.com/rawblock/xmrwallet/txbuilder"
	"github.com/rawblock/xmrwallet/walleterrors"
	"github.com/rawblock/xmrwallet/walletfile"
)

func main() {
	root := build.NewRotatingLogWriter()
	xmrwallet.SetupLoggers(root, map[string]xmrwallet.UseLoggerFunc{
		"SCAN": scanner.UseLogger,
		"SLCT": selector.UseLogger,
		"STOR": storage.UseLogger,
		"TXBD": txbuilder.UseLogger,
		"WFIL": walletfile.UseLogger,
		"RPCP": rpcprovider.UseLogger,
	})

	app := cli.NewApp()
	app.Name = "xmrwalletcli"
	app.Usage = "offline-signing wallet CLI"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		mnemonicCommand,
		addressCommand,
		txCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "[xmrwalletcli]", friendlyError(err))
		os.Exit(1)
	}
}

// actionDecorator wraps a cli.Command's Action so every returned error is
// funneled through friendlyError before urfave/cli prints it, keeping
// internal error-kind tags out of a user-facing message.
func actionDecorator(f func(*cli.Context) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		if err := f(c); err != nil {
			return friendlyError(err)
		}
		return nil
	}
}

// friendlyError strips a walleterrors.E down to its message when the
// caller doesn't need the Kind tag to decide what to do next — this
// process is always the end of the line for the error.
func friendlyError(err error) error {
	if err == nil {
		return nil
	}
	var e *walleterrors.E
	for errors.As(err, &e) && e.Err != nil {
		err = e.Err
	}
	return fmt.Errorf("%s", err.Error())
}

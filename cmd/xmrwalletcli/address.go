package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/walletfile"
)

var walletFlag = cli.StringFlag{
	Name:     "wallet",
	Usage:    "path to an encrypted wallet file",
	Required: true,
}

var addressCommand = cli.Command{
	Name:  "address",
	Usage: "derive and print wallet addresses",
	Subcommands: []cli.Command{
		addressShowCommand,
	},
}

var addressShowCommand = cli.Command{
	Name:  "show",
	Usage: "print the primary address, or a subaddress given --major/--minor",
	Flags: []cli.Flag{
		walletFlag,
		passwordFlag,
		cli.UintFlag{Name: "major", Usage: "subaddress account index"},
		cli.UintFlag{Name: "minor", Usage: "subaddress index within the account"},
	},
	Action: actionDecorator(addressShow),
}

func addressShow(ctx *cli.Context) error {
	data, err := walletfile.Load(ctx.String("wallet"), []byte(ctx.String("password")))
	if err != nil {
		return err
	}

	idx := keys.SubaddressIndex{
		Major: uint32(ctx.Uint("major")),
		Minor: uint32(ctx.Uint("minor")),
	}

	addr := keys.SubaddressFor(data.Network, data.Keys, idx)
	encoded, err := addr.Encode()
	if err != nil {
		return err
	}

	if idx.IsPrimary() {
		fmt.Println("primary address:", encoded)
	} else {
		fmt.Printf("subaddress (%d, %d): %s\n", idx.Major, idx.Minor, encoded)
	}
	return nil
}

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/mnemonic"
	"github.com/rawblock/xmrwallet/walleterrors"
	"github.com/rawblock/xmrwallet/walletfile"
)

var mnemonicCommand = cli.Command{
	Name:  "mnemonic",
	Usage: "generate or restore a wallet from its 25-word mnemonic seed",
	Subcommands: []cli.Command{
		mnemonicGenerateCommand,
		mnemonicRestoreCommand,
	},
}

var networkFlag = cli.StringFlag{
	Name:  "network",
	Value: "mainnet",
	Usage: "mainnet, stagenet, or testnet",
}

var outFlag = cli.StringFlag{
	Name:  "out",
	Usage: "path to write an encrypted wallet file (omit to only print the seed and address)",
}

var passwordFlag = cli.StringFlag{
	Name:  "password",
	Usage: "password protecting the wallet file written by --out",
}

var mnemonicGenerateCommand = cli.Command{
	Name:   "generate",
	Usage:  "create a new wallet from fresh entropy",
	Flags:  []cli.Flag{networkFlag, outFlag, passwordFlag},
	Action: actionDecorator(mnemonicGenerate),
}

func mnemonicGenerate(ctx *cli.Context) error {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return walleterrors.New("mnemonicGenerate", walleterrors.Other, err)
	}

	phrase, err := mnemonic.EntropyToMnemonic(seed[:])
	if err != nil {
		return err
	}

	return finishMnemonicCommand(ctx, seed, phrase)
}

var mnemonicRestoreCommand = cli.Command{
	Name:      "restore",
	Usage:     "recover a wallet from an existing mnemonic phrase",
	ArgsUsage: "\"25 word phrase\"",
	Flags:     []cli.Flag{networkFlag, outFlag, passwordFlag},
	Action:    actionDecorator(mnemonicRestore),
}

func mnemonicRestore(ctx *cli.Context) error {
	phrase := ctx.Args().First()
	if phrase == "" {
		return cli.ShowCommandHelp(ctx, "restore")
	}

	entropy, err := mnemonic.MnemonicToEntropy(phrase)
	if err != nil {
		return err
	}
	var seed [32]byte
	copy(seed[:], entropy)

	return finishMnemonicCommand(ctx, seed, phrase)
}

// finishMnemonicCommand derives the keypair for seed, prints its mnemonic
// and primary address, and — when --out is given — saves it as an
// encrypted wallet file.
func finishMnemonicCommand(ctx *cli.Context, seed [32]byte, phrase string) error {
	network, err := parseNetwork(ctx.String("network"))
	if err != nil {
		return err
	}

	kp, err := keys.FromSeed(seed)
	if err != nil {
		return err
	}
	addr := keys.PrimaryAddress(network, kp)
	encoded, err := addr.Encode()
	if err != nil {
		return err
	}

	fmt.Println("mnemonic:", phrase)
	fmt.Println("address: ", encoded)

	out := ctx.String("out")
	if out == "" {
		return nil
	}
	password := ctx.String("password")
	if password == "" {
		return walleterrors.New("mnemonicCommand", walleterrors.InvalidPassword,
			"--password is required when --out is given")
	}

	data := walletfile.Data{Network: network, Keys: kp}
	if err := walletfile.Save(out, []byte(password), data); err != nil {
		return err
	}
	fmt.Println("wallet file written to", out)
	return nil
}

func parseNetwork(s string) (cfg.Network, error) {
	switch s {
	case "mainnet", "":
		return cfg.Mainnet, nil
	case "stagenet":
		return cfg.Stagenet, nil
	case "testnet":
		return cfg.Testnet, nil
	default:
		return 0, walleterrors.New("parseNetwork", walleterrors.Other,
			fmt.Sprintf("unknown network %q", s))
	}
}

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/rawblock/xmrwallet/rpcprovider"
	"github.com/rawblock/xmrwallet/txbuilder"
	"github.com/rawblock/xmrwallet/walleterrors"
)

var txCommand = cli.Command{
	Name:  "tx",
	Usage: "build, sign, and submit transactions",
	Subcommands: []cli.Command{
		txBuildCommand,
		txSignCommand,
		txSubmitCommand,
	},
}

var requestFlag = cli.StringFlag{
	Name:     "request",
	Usage:    "path to a tx request JSON file describing inputs and destinations",
	Required: true,
}

var changeAddressFlag = cli.StringFlag{
	Name:  "change-address",
	Usage: "address to display in the offline document for the signer's own confirmation",
}

var txBuildCommand = cli.Command{
	Name:  "build",
	Usage: "prepare an unsigned transaction and write an offline-signing document",
	Flags: []cli.Flag{
		requestFlag,
		changeAddressFlag,
		cli.StringFlag{Name: "out", Usage: "path to write the offline document", Required: true},
	},
	Action: actionDecorator(txBuild),
}

func txBuild(ctx *cli.Context) error {
	req, err := loadTxRequest(ctx.String("request"))
	if err != nil {
		return err
	}
	params, err := req.toParams()
	if err != nil {
		return err
	}

	unsigned, err := txbuilder.PrepareUnsigned(params)
	if err != nil {
		return err
	}

	doc := txbuilder.Export(unsigned, params, ctx.String("change-address"))
	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return walleterrors.New("txBuild", walleterrors.Other, err)
	}
	if err := os.WriteFile(ctx.String("out"), buf, 0o600); err != nil {
		return walleterrors.New("txBuild", walleterrors.Other, err)
	}

	fmt.Println("offline document written to", ctx.String("out"))
	return nil
}

var txSignCommand = cli.Command{
	Name:  "sign",
	Usage: "import an offline document, verify it against a locally trusted request, and sign",
	Flags: []cli.Flag{
		requestFlag,
		cli.StringFlag{Name: "doc", Usage: "path to the offline document produced by tx build", Required: true},
		cli.StringFlag{Name: "out", Usage: "path to write the signed transaction blob (hex)", Required: true},
	},
	Action: actionDecorator(txSign),
}

func txSign(ctx *cli.Context) error {
	req, err := loadTxRequest(ctx.String("request"))
	if err != nil {
		return err
	}
	for i, in := range req.Inputs {
		if in.OneTimeSecretHex == "" {
			return walleterrors.New("txSign", walleterrors.InvalidScalar,
				fmt.Sprintf("request input %d has no oneTimeSecretHex; cannot sign", i))
		}
	}
	params, err := req.toParams()
	if err != nil {
		return err
	}

	docBuf, err := os.ReadFile(ctx.String("doc"))
	if err != nil {
		return walleterrors.New("txSign", walleterrors.Other, err)
	}
	var doc txbuilder.OfflineDocument
	if err := json.Unmarshal(docBuf, &doc); err != nil {
		return walleterrors.New("txSign", walleterrors.InvalidLength, err)
	}

	unsigned, err := txbuilder.ImportUnsigned(doc, params)
	if err != nil {
		return err
	}

	built, err := unsigned.Sign(params)
	if err != nil {
		return err
	}

	if err := os.WriteFile(ctx.String("out"), []byte(hex.EncodeToString(built.TxBlob)), 0o600); err != nil {
		return walleterrors.New("txSign", walleterrors.Other, err)
	}
	fmt.Printf("signed tx %x written to %s (fee %d)\n", built.TxHash, ctx.String("out"), built.Fee)
	return nil
}

var txSubmitCommand = cli.Command{
	Name:  "submit",
	Usage: "relay a signed transaction blob to a daemon",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "tx", Usage: "path to a hex-encoded signed transaction blob", Required: true},
		cli.StringFlag{Name: "daemon", Usage: "daemon RPC base URL, e.g. http://127.0.0.1:18081", Required: true},
		cli.DurationFlag{Name: "timeout", Value: 30 * time.Second},
	},
	Action: actionDecorator(txSubmit),
}

func txSubmit(ctx *cli.Context) error {
	hexBlob, err := os.ReadFile(ctx.String("tx"))
	if err != nil {
		return walleterrors.New("txSubmit", walleterrors.Other, err)
	}
	blob, err := hex.DecodeString(string(hexBlob))
	if err != nil {
		return walleterrors.New("txSubmit", walleterrors.InvalidLength, err)
	}

	client := rpcprovider.NewHTTPDaemonClient(ctx.String("daemon"), ctx.Duration("timeout"))

	tctx, cancel := context.WithTimeout(context.Background(), ctx.Duration("timeout"))
	defer cancel()

	result, err := client.SubmitTx(tctx, blob)
	if err != nil {
		return err
	}
	if !result.Accepted {
		return walleterrors.New("txSubmit", walleterrors.DaemonRpcError, result.Reason)
	}

	fmt.Println("transaction accepted")
	return nil
}

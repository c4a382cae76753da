package walletfile

import (
	"encoding/hex"

	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/storage"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Account groups subaddresses under one major index with a user label,
// plus per-minor-index labels for the subaddresses created under it.
type Account struct {
	Major            uint32
	Label            string
	SubaddressLabels map[uint32]string
}

// AddressBookEntry is a saved recipient address with a display label.
type AddressBookEntry struct {
	Address string
	Label   string
}

// Data is everything a wallet file round-trips: the network it's valid
// on, its keys (full or view-only), its accounts and subaddress labels,
// every output and transaction the wallet has observed, its address
// book, and how far it has synced.
type Data struct {
	Network      cfg.Network
	Keys         keys.KeyPair
	Accounts     []Account
	Outputs      []storage.StoredOutput
	Transactions []storage.StoredTransaction
	AddressBook  []AddressBookEntry
	SyncHeight   uint64
}

// The JSON document types below are the plaintext's wire shape: curve
// scalars/points have no JSON encoding of their own, so every field that
// holds one is hex-encoded here and converted back on load.

type keyMaterial struct {
	ViewOnly       bool   `json:"viewOnly"`
	SpendSecretHex string `json:"spendSecretHex,omitempty"`
	ViewSecretHex  string `json:"viewSecretHex"`
	SpendPublicHex string `json:"spendPublicHex"`
	ViewPublicHex  string `json:"viewPublicHex"`
}

type accountDoc struct {
	Major            uint32            `json:"major"`
	Label            string            `json:"label"`
	SubaddressLabels map[uint32]string `json:"subaddressLabels,omitempty"`
}

type outputDoc struct {
	GlobalIndex       uint64 `json:"globalIndex"`
	TxHashHex         string `json:"txHashHex"`
	OutputIndex       uint64 `json:"outputIndex"`
	SubaddressMajor   uint32 `json:"subaddressMajor"`
	SubaddressMinor   uint32 `json:"subaddressMinor"`
	OneTimePublicHex  string `json:"oneTimePublicHex"`
	KeyImageHex       string `json:"keyImageHex"`
	Amount            uint64 `json:"amount"`
	MaskHex           string `json:"maskHex"`
	BlockHeight       uint64 `json:"blockHeight"`
	Unlocked          bool   `json:"unlocked"`
	SpendingTxHashHex string `json:"spendingTxHashHex,omitempty"`
}

type transactionDoc struct {
	TxHashHex   string `json:"txHashHex"`
	TxBlobHex   string `json:"txBlobHex"`
	Fee         uint64 `json:"fee"`
	BlockHeight uint64 `json:"blockHeight"`
	Timestamp   int64  `json:"timestamp"`
	Label       string `json:"label"`
}

type addressBookDoc struct {
	Address string `json:"address"`
	Label   string `json:"label"`
}

// document is the full plaintext encrypted inside a wallet file.
type document struct {
	Network      cfg.Network      `json:"network"`
	Keys         keyMaterial      `json:"keys"`
	Accounts     []accountDoc     `json:"accounts"`
	Outputs      []outputDoc      `json:"outputs"`
	Transactions []transactionDoc `json:"transactions"`
	AddressBook  []addressBookDoc `json:"addressBook"`
	SyncHeight   uint64           `json:"syncHeight"`
}

func toDocument(d Data) document {
	doc := document{
		Network:    d.Network,
		Keys:       keysToMaterial(d.Keys),
		SyncHeight: d.SyncHeight,
	}

	doc.Accounts = make([]accountDoc, len(d.Accounts))
	for i, a := range d.Accounts {
		doc.Accounts[i] = accountDoc{Major: a.Major, Label: a.Label, SubaddressLabels: a.SubaddressLabels}
	}

	doc.Outputs = make([]outputDoc, len(d.Outputs))
	for i, o := range d.Outputs {
		doc.Outputs[i] = outputToDoc(o)
	}

	doc.Transactions = make([]transactionDoc, len(d.Transactions))
	for i, tx := range d.Transactions {
		doc.Transactions[i] = transactionDoc{
			TxHashHex:   hex.EncodeToString(tx.TxHash[:]),
			TxBlobHex:   hex.EncodeToString(tx.TxBlob),
			Fee:         tx.Fee,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
			Label:       tx.Label,
		}
	}

	doc.AddressBook = make([]addressBookDoc, len(d.AddressBook))
	for i, e := range d.AddressBook {
		doc.AddressBook[i] = addressBookDoc{Address: e.Address, Label: e.Label}
	}

	return doc
}

func fromDocument(doc document) (Data, error) {
	kp, err := materialToKeys(doc.Keys)
	if err != nil {
		return Data{}, err
	}

	d := Data{
		Network:    doc.Network,
		Keys:       kp,
		SyncHeight: doc.SyncHeight,
	}

	d.Accounts = make([]Account, len(doc.Accounts))
	for i, a := range doc.Accounts {
		d.Accounts[i] = Account{Major: a.Major, Label: a.Label, SubaddressLabels: a.SubaddressLabels}
	}

	d.Outputs = make([]storage.StoredOutput, len(doc.Outputs))
	for i, o := range doc.Outputs {
		out, err := docToOutput(o)
		if err != nil {
			return Data{}, err
		}
		d.Outputs[i] = out
	}

	d.Transactions = make([]storage.StoredTransaction, len(doc.Transactions))
	for i, t := range doc.Transactions {
		txHash, err := decodeHash32(t.TxHashHex)
		if err != nil {
			return Data{}, err
		}
		blob, err := hex.DecodeString(t.TxBlobHex)
		if err != nil {
			return Data{}, walleterrors.New("walletfile.fromDocument", walleterrors.InvalidWalletFile, err)
		}
		d.Transactions[i] = storage.StoredTransaction{
			TxHash:      txHash,
			TxBlob:      blob,
			Fee:         t.Fee,
			BlockHeight: t.BlockHeight,
			Timestamp:   t.Timestamp,
			Label:       t.Label,
		}
	}

	d.AddressBook = make([]AddressBookEntry, len(doc.AddressBook))
	for i, e := range doc.AddressBook {
		d.AddressBook[i] = AddressBookEntry{Address: e.Address, Label: e.Label}
	}

	return d, nil
}

func keysToMaterial(kp keys.KeyPair) keyMaterial {
	m := keyMaterial{
		ViewOnly:       kp.ViewOnly,
		ViewSecretHex:  hex.EncodeToString(kp.ViewSecret.Bytes()),
		SpendPublicHex: hex.EncodeToString(kp.SpendPublic.Bytes()),
		ViewPublicHex:  hex.EncodeToString(kp.ViewPublic.Bytes()),
	}
	if !kp.ViewOnly {
		m.SpendSecretHex = hex.EncodeToString(kp.SpendSecret.Bytes())
	}
	return m
}

func materialToKeys(m keyMaterial) (keys.KeyPair, error) {
	const op = "walletfile.materialToKeys"

	viewSecret, err := curve.ScalarFromBytes(mustHex(m.ViewSecretHex))
	if err != nil {
		return keys.KeyPair{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}
	spendPublic, err := curve.PointFromBytes(mustHex(m.SpendPublicHex))
	if err != nil {
		return keys.KeyPair{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}

	if m.ViewOnly {
		return keys.FromViewOnly(viewSecret, spendPublic), nil
	}

	spendSecret, err := curve.ScalarFromBytes(mustHex(m.SpendSecretHex))
	if err != nil {
		return keys.KeyPair{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}
	viewPublic, err := curve.PointFromBytes(mustHex(m.ViewPublicHex))
	if err != nil {
		return keys.KeyPair{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}

	return keys.KeyPair{
		SpendSecret: spendSecret,
		ViewSecret:  viewSecret,
		SpendPublic: spendPublic,
		ViewPublic:  viewPublic,
	}, nil
}

func outputToDoc(o storage.StoredOutput) outputDoc {
	d := outputDoc{
		GlobalIndex:      o.GlobalIndex,
		TxHashHex:        hex.EncodeToString(o.TxHash[:]),
		OutputIndex:      o.OutputIndex,
		SubaddressMajor:  o.SubaddressIndex.Major,
		SubaddressMinor:  o.SubaddressIndex.Minor,
		OneTimePublicHex: hex.EncodeToString(o.OneTimePublic.Bytes()),
		KeyImageHex:      hex.EncodeToString(o.KeyImage.Bytes()),
		Amount:           o.Amount,
		MaskHex:          hex.EncodeToString(o.Mask.Bytes()),
		BlockHeight:      o.BlockHeight,
		Unlocked:         o.Unlocked,
	}
	if o.Spent != nil {
		d.SpendingTxHashHex = hex.EncodeToString(o.Spent.SpendingTxHash[:])
	}
	return d
}

func docToOutput(d outputDoc) (storage.StoredOutput, error) {
	const op = "walletfile.docToOutput"

	txHash, err := decodeHash32(d.TxHashHex)
	if err != nil {
		return storage.StoredOutput{}, err
	}
	oneTimePublic, err := curve.PointFromBytes(mustHex(d.OneTimePublicHex))
	if err != nil {
		return storage.StoredOutput{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}
	keyImage, err := curve.PointFromBytes(mustHex(d.KeyImageHex))
	if err != nil {
		return storage.StoredOutput{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}
	mask, err := curve.ScalarFromBytes(mustHex(d.MaskHex))
	if err != nil {
		return storage.StoredOutput{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}

	out := storage.StoredOutput{
		GlobalIndex:     d.GlobalIndex,
		TxHash:          txHash,
		OutputIndex:     d.OutputIndex,
		SubaddressIndex: keys.SubaddressIndex{Major: d.SubaddressMajor, Minor: d.SubaddressMinor},
		OneTimePublic:   oneTimePublic,
		KeyImage:        keyImage,
		Amount:          d.Amount,
		Mask:            mask,
		BlockHeight:     d.BlockHeight,
		Unlocked:        d.Unlocked,
	}
	if d.SpendingTxHashHex != "" {
		spendingTxHash, err := decodeHash32(d.SpendingTxHashHex)
		if err != nil {
			return storage.StoredOutput{}, err
		}
		out.Spent = &storage.SpentInfo{SpendingTxHash: spendingTxHash}
	}
	return out, nil
}

func decodeHash32(s string) ([32]byte, error) {
	var h [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, walleterrors.New("walletfile.decodeHash32", walleterrors.InvalidWalletFile, err)
	}
	if len(raw) != 32 {
		return h, walleterrors.New("walletfile.decodeHash32", walleterrors.InvalidWalletFile, "expected 32 bytes")
	}
	copy(h[:], raw)
	return h, nil
}

// mustHex decodes s, returning nil on error so the caller's subsequent
// ScalarFromBytes/PointFromBytes call reports the failure with its own
// (already-handled) error path rather than this helper needing one too.
func mustHex(s string) []byte {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return raw
}

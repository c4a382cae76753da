package walletfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/storage"
	"github.com/rawblock/xmrwallet/walleterrors"
)

func testSeed(b byte) [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func sampleData(t *testing.T, kp keys.KeyPair) Data {
	t.Helper()

	mask := curve.HashToScalar([]byte("wallet-file-test-mask"))
	oneTimePublic := curve.HashToPoint([]byte("wallet-file-test-P"))
	keyImage := curve.HashToPoint([]byte("wallet-file-test-I"))
	var txHash [32]byte
	txHash[0] = 0x42

	return Data{
		Network: cfg.Mainnet,
		Keys:    kp,
		Accounts: []Account{
			{Major: 0, Label: "primary", SubaddressLabels: map[uint32]string{0: "main", 1: "donations"}},
		},
		Outputs: []storage.StoredOutput{
			{
				GlobalIndex:     42,
				TxHash:          txHash,
				OutputIndex:     0,
				SubaddressIndex: keys.SubaddressIndex{Major: 0, Minor: 1},
				OneTimePublic:   oneTimePublic,
				KeyImage:        keyImage,
				Amount:          123_000_000,
				Mask:            mask,
				BlockHeight:     3_100_000,
				Unlocked:        true,
			},
		},
		Transactions: []storage.StoredTransaction{
			{TxHash: txHash, TxBlob: []byte{0x01, 0x02, 0x03}, Fee: 20_000, BlockHeight: 3_100_000, Label: "payment"},
		},
		AddressBook: []AddressBookEntry{
			{Address: "4abc...", Label: "friend"},
		},
		SyncHeight: 3_100_000,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kp, err := keys.FromSeed(testSeed(0x01))
	require.NoError(t, err)

	data := sampleData(t, kp)
	path := filepath.Join(t.TempDir(), "wallet.keys")
	password := []byte("correct horse battery staple")

	require.NoError(t, Save(path, password, data))

	loaded, err := Load(path, password)
	require.NoError(t, err)

	require.Equal(t, data.Network, loaded.Network)
	require.True(t, data.Keys.SpendSecret.Equal(loaded.Keys.SpendSecret))
	require.True(t, data.Keys.ViewSecret.Equal(loaded.Keys.ViewSecret))
	require.True(t, data.Keys.SpendPublic.Equal(loaded.Keys.SpendPublic))
	require.Equal(t, data.Keys.ViewOnly, loaded.Keys.ViewOnly)
	require.Equal(t, data.Accounts, loaded.Accounts)
	require.Equal(t, data.AddressBook, loaded.AddressBook)
	require.Equal(t, data.SyncHeight, loaded.SyncHeight)

	require.Len(t, loaded.Outputs, 1)
	require.Equal(t, data.Outputs[0].GlobalIndex, loaded.Outputs[0].GlobalIndex)
	require.True(t, data.Outputs[0].OneTimePublic.Equal(loaded.Outputs[0].OneTimePublic))
	require.True(t, data.Outputs[0].Mask.Equal(loaded.Outputs[0].Mask))
	require.Equal(t, data.Outputs[0].Amount, loaded.Outputs[0].Amount)

	require.Len(t, loaded.Transactions, 1)
	require.Equal(t, data.Transactions[0].TxBlob, loaded.Transactions[0].TxBlob)
	require.Equal(t, data.Transactions[0].Fee, loaded.Transactions[0].Fee)
}

func TestLoadViewOnlyWallet(t *testing.T) {
	kp, err := keys.FromSeed(testSeed(0x02))
	require.NoError(t, err)
	viewOnly := keys.FromViewOnly(kp.ViewSecret, kp.SpendPublic)

	data := Data{Network: cfg.Stagenet, Keys: viewOnly, SyncHeight: 0}
	path := filepath.Join(t.TempDir(), "watch-only.keys")
	password := []byte("watch-only-password")

	require.NoError(t, Save(path, password, data))

	loaded, err := Load(path, password)
	require.NoError(t, err)
	require.True(t, loaded.Keys.ViewOnly)
	require.True(t, loaded.Keys.ViewSecret.Equal(kp.ViewSecret))
	require.True(t, loaded.Keys.SpendPublic.Equal(kp.SpendPublic))
}

func TestLoadWrongPasswordFails(t *testing.T) {
	kp, err := keys.FromSeed(testSeed(0x03))
	require.NoError(t, err)

	data := sampleData(t, kp)
	path := filepath.Join(t.TempDir(), "wallet.keys")
	require.NoError(t, Save(path, []byte("right password"), data))

	_, err = Load(path, []byte("wrong password"))
	require.Error(t, err)
	require.True(t, walleterrors.Is(err, walleterrors.InvalidPassword))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.keys")
	require.NoError(t, os.WriteFile(path, append([]byte("XXXX"), make([]byte, 100)...), 0o600))

	_, err := Load(path, []byte("anything"))
	require.Error(t, err)
	require.True(t, walleterrors.Is(err, walleterrors.InvalidWalletFile))
}

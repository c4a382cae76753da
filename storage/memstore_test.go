package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
)

func testPoint(b byte) curve.Point {
	return curve.HashToPoint([]byte{b})
}

func TestSaveAndGetOutputs(t *testing.T) {
	s := NewMemStore()

	primary := keys.SubaddressIndex{}
	sub := keys.SubaddressIndex{Major: 0, Minor: 1}

	require.NoError(t, s.SaveOutput(StoredOutput{
		GlobalIndex:     100,
		SubaddressIndex: primary,
		OneTimePublic:   testPoint(1),
		KeyImage:        testPoint(2),
		Amount:          5000,
		Unlocked:        true,
	}))
	require.NoError(t, s.SaveOutput(StoredOutput{
		GlobalIndex:     101,
		SubaddressIndex: sub,
		OneTimePublic:   testPoint(3),
		KeyImage:        testPoint(4),
		Amount:          7000,
		Unlocked:        false,
	}))

	all, err := s.GetOutputs(OutputFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	subOnly, err := s.GetOutputs(OutputFilter{SubaddressIndex: &sub})
	require.NoError(t, err)
	require.Len(t, subOnly, 1)
	require.Equal(t, uint64(101), subOnly[0].GlobalIndex)

	unlockedOnly, err := s.GetOutputs(OutputFilter{UnlockedOnly: true})
	require.NoError(t, err)
	require.Len(t, unlockedOnly, 1)
	require.Equal(t, uint64(100), unlockedOnly[0].GlobalIndex)
}

func TestMarkSpentAndFilter(t *testing.T) {
	s := NewMemStore()
	keyImage := testPoint(9)

	require.NoError(t, s.SaveOutput(StoredOutput{
		GlobalIndex: 200,
		KeyImage:    keyImage,
		Amount:      1000,
	}))

	var txHash [32]byte
	txHash[0] = 0xaa
	require.NoError(t, s.MarkSpent(keyImage, txHash))

	spent := true
	out, err := s.GetOutputs(OutputFilter{Spent: &spent})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, txHash, out[0].Spent.SpendingTxHash)

	unspent := false
	none, err := s.GetOutputs(OutputFilter{Spent: &unspent})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSyncHeightAndBlockHash(t *testing.T) {
	s := NewMemStore()

	h, err := s.GetSyncHeight()
	require.NoError(t, err)
	require.Equal(t, uint64(0), h)

	require.NoError(t, s.SetSyncHeight(500))
	h, err = s.GetSyncHeight()
	require.NoError(t, err)
	require.Equal(t, uint64(500), h)

	var hash [32]byte
	hash[0] = 0x11
	require.NoError(t, s.SetBlockHash(500, hash))

	got, ok, err := s.GetBlockHash(500)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, hash, got)

	_, ok, err = s.GetBlockHash(999)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRollbackToHeightUnmarksSpentAboveFork(t *testing.T) {
	s := NewMemStore()
	keyImage := testPoint(7)

	require.NoError(t, s.SaveOutput(StoredOutput{GlobalIndex: 1, KeyImage: keyImage}))

	var spendingTx [32]byte
	spendingTx[0] = 0x55
	require.NoError(t, s.SaveTransaction(StoredTransaction{TxHash: spendingTx, BlockHeight: 600}))
	require.NoError(t, s.MarkSpent(keyImage, spendingTx))

	require.NoError(t, s.SetBlockHash(500, [32]byte{1}))
	require.NoError(t, s.SetBlockHash(600, [32]byte{2}))

	require.NoError(t, s.RollbackToHeight(550))

	_, ok, err := s.GetBlockHash(600)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.GetBlockHash(500)
	require.NoError(t, err)
	require.True(t, ok)

	outs, err := s.GetOutputs(OutputFilter{})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	require.Nil(t, outs[0].Spent)
}

package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/commitment"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
)

func testSeed(b byte) [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func buildPrimaryOutput(t *testing.T, recipient keys.KeyPair, index uint64, amount uint64) CandidateOutput {
	t.Helper()
	r := curve.HashToScalar([]byte("sender-r"), []byte{byte(index)})
	R := curve.ScalarMultBase(r)
	shared := recipient.ViewPublic.ScalarMult(r)

	P := keys.StealthOutputKey(shared, recipient.SpendPublic, index)
	tag := keys.ViewTag(shared, index)

	mask := commitment.EcdhMask(shared, index)
	ct := commitment.EcdhEncode(amount, shared, index)
	comm := commitment.Commit(mask, amount)

	return CandidateOutput{
		TxPubKey:      R,
		OneTimePublic: P,
		Index:         index,
		ViewTag:       &tag,
		EcdhAmount:    ct,
		Commitment:    comm,
	}
}

func TestScanRecognizesPrimaryAddressOutput(t *testing.T) {
	recipient, err := keys.FromSeed(testSeed(0x10))
	require.NoError(t, err)

	out := buildPrimaryOutput(t, recipient, 0, 7700000)

	table := NewSubaddressTable(recipient)
	table.Ensure(0, 0)
	s := New(recipient, table)

	owned, ok, err := s.Scan(out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(7700000), owned.Amount)
	require.True(t, owned.SubaddressIndex.IsPrimary())
}

func TestScanRecognizesSubaddressOutput(t *testing.T) {
	recipient, err := keys.FromSeed(testSeed(0x20))
	require.NoError(t, err)

	idx := keys.SubaddressIndex{Major: 0, Minor: 3}
	spendPub, viewPub := recipient.DeriveSubaddress(idx)

	const outputIndex = uint64(1)
	const amount = uint64(55555)
	r := curve.HashToScalar([]byte("sender-r-sub"))
	Rn := spendPub.ScalarMult(r) // R_n = r*D
	sharedSender := viewPub.ScalarMult(r) // r*C

	P := keys.StealthOutputKey(sharedSender, spendPub, outputIndex)
	tag := keys.ViewTag(sharedSender, outputIndex)
	mask := commitment.EcdhMask(sharedSender, outputIndex)
	ct := commitment.EcdhEncode(amount, sharedSender, outputIndex)
	comm := commitment.Commit(mask, amount)

	out := CandidateOutput{
		TxPubKey:         curve.ScalarMultBase(curve.HashToScalar([]byte("unrelated-global-r"))),
		AdditionalPubKey: &Rn,
		OneTimePublic:    P,
		Index:            outputIndex,
		ViewTag:          &tag,
		EcdhAmount:       ct,
		Commitment:       comm,
	}

	table := NewSubaddressTable(recipient)
	table.Ensure(0, 10)
	s := New(recipient, table)

	owned, ok, err := s.Scan(out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, amount, owned.Amount)
	require.Equal(t, idx, owned.SubaddressIndex)
}

func TestScanRejectsOutputNotAddressedToWallet(t *testing.T) {
	recipient, err := keys.FromSeed(testSeed(0x30))
	require.NoError(t, err)
	stranger, err := keys.FromSeed(testSeed(0x31))
	require.NoError(t, err)

	out := buildPrimaryOutput(t, stranger, 0, 100)

	table := NewSubaddressTable(recipient)
	table.Ensure(0, 0)
	s := New(recipient, table)

	_, ok, err := s.Scan(out)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSubaddressTableEnsureIsIdempotentAndExtends(t *testing.T) {
	kp, err := keys.FromSeed(testSeed(0x40))
	require.NoError(t, err)

	table := NewSubaddressTable(kp)
	table.Ensure(0, 5)

	spendPub, _ := kp.DeriveSubaddress(keys.SubaddressIndex{Major: 0, Minor: 5})
	idx, ok := table.Lookup(spendPub)
	require.True(t, ok)
	require.Equal(t, keys.SubaddressIndex{Major: 0, Minor: 5}, idx)

	_, ok = table.Lookup(func() curve.Point {
		p, _ := kp.DeriveSubaddress(keys.SubaddressIndex{Major: 0, Minor: 6})
		return p
	}())
	require.False(t, ok)

	table.Ensure(0, 6)
	spendPub6, _ := kp.DeriveSubaddress(keys.SubaddressIndex{Major: 0, Minor: 6})
	idx6, ok := table.Lookup(spendPub6)
	require.True(t, ok)
	require.Equal(t, keys.SubaddressIndex{Major: 0, Minor: 6}, idx6)
}

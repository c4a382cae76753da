package txbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/keys"
)

// TestSerializeParseIsIdempotent checks the serialization-idempotence
// property: serializing a built transaction, parsing it back, and
// re-serializing it yields the identical bytes.
func TestSerializeParseIsIdempotent(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0xcc))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0xdd))
	require.NoError(t, err)

	input := buildOwnedInput(t, sender, 11, 4, 6_500_000_000, 9000)
	fee := uint64(60_000)
	sendA := uint64(500_000_000)
	sendB := uint64(800_000_000)
	change := input.Amount - sendA - sendB - fee

	params := Params{
		Inputs: []Input{input},
		Destinations: []Destination{
			{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: sendA},
			{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: sendB},
			{Address: keys.PrimaryAddress(cfg.Mainnet, sender), Amount: change},
		},
		Fee:        fee,
		RandScalar: deterministicRandSource("idempotence-test"),
	}

	built, err := Build(params)
	require.NoError(t, err)

	parsed, err := ParseTransaction(built.TxBlob, len(input.Ring))
	require.NoError(t, err)
	require.Equal(t, uint64(txVersion), parsed.Version)
	require.Len(t, parsed.Vout, 3)

	require.Equal(t, built.TxBlob, parsed.Serialize())
}

// TestParsePrefixStandalone checks that parsePrefix, used on its own by
// the offline-signing path, recovers exactly the prefix portion of a
// built transaction without needing the rct_signatures bytes that follow
// it.
func TestParsePrefixStandalone(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0xee))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0xff))
	require.NoError(t, err)

	input := buildOwnedInput(t, sender, 8, 1, 3_000_000_000, 10000)
	fee := uint64(10_000)

	params := Params{
		Inputs:       []Input{input},
		Destinations: []Destination{{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: input.Amount - fee}},
		Fee:          fee,
		RandScalar:   deterministicRandSource("prefix-standalone-test"),
	}

	unsigned, err := PrepareUnsigned(params)
	require.NoError(t, err)

	tx, off, err := parsePrefix(unsigned.prep.prefixBytes)
	require.NoError(t, err)
	require.Equal(t, len(unsigned.prep.prefixBytes), off)
	require.Len(t, tx.Vin, 1)
	require.Len(t, tx.Vout, 1)
	require.Equal(t, tx.SerializePrefix(), unsigned.prep.prefixBytes)
}

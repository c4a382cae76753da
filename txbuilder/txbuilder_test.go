package txbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/bulletproof"
	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/clsag"
	"github.com/rawblock/xmrwallet/commitment"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
)

func deterministicRandSource(seed string) RandomScalarFunc {
	counter := 0
	return func() curve.Scalar {
		counter++
		return curve.HashToScalar([]byte(seed), []byte{byte(counter), byte(counter >> 8)})
	}
}

func testSeed(b byte) [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = b
	}
	return seed
}

// buildOwnedInput synthesizes a spendable Input belonging to recipient:
// a real one-time output at realIndex among n-1 random decoys, with
// correctly derived OneTimeSecret/OneTimePublic/Mask/Amount.
func buildOwnedInput(t *testing.T, recipient keys.KeyPair, n, realIndex int, amount uint64, globalBase uint64) Input {
	t.Helper()

	r := curve.HashToScalar([]byte("ring-sender-r"), []byte{byte(globalBase)})
	shared := recipient.ViewPublic.ScalarMult(r)
	P := keys.StealthOutputKey(shared, recipient.SpendPublic, 0)
	x := keys.OneTimeSecret(shared, 0, recipient.SpendSecret)
	mask := commitment.EcdhMask(shared, 0)
	commit := commitment.Commit(mask, amount)

	ring := make([]RingMember, n)
	for i := 0; i < n; i++ {
		idx := globalBase + uint64(i)
		if i == realIndex {
			ring[i] = RingMember{GlobalIndex: idx, PublicKey: P, Commitment: commit}
			continue
		}
		decoySecret := curve.HashToScalar([]byte("decoy-spend"), []byte{byte(globalBase), byte(i)})
		decoyMask := curve.HashToScalar([]byte("decoy-mask"), []byte{byte(globalBase), byte(i)})
		ring[i] = RingMember{
			GlobalIndex: idx,
			PublicKey:   curve.ScalarMultBase(decoySecret),
			Commitment:  commitment.CommitMask(decoyMask, curve.HashToScalar([]byte("decoy-amt"), []byte{byte(i)})),
		}
	}

	return Input{
		OneTimePublic: P,
		OneTimeSecret: x,
		Amount:        amount,
		Mask:          mask,
		Ring:          ring,
		RealIndex:     realIndex,
	}
}

func TestBuildProducesBalancedVerifiableTransaction(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0x11))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0x22))
	require.NoError(t, err)

	input := buildOwnedInput(t, sender, 16, 3, 2_000_000_000, 1000)

	fee := uint64(30_000)
	sendAmount := uint64(1_200_000_000)
	changeAmount := input.Amount - sendAmount - fee

	params := Params{
		Inputs: []Input{input},
		Destinations: []Destination{
			{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: sendAmount},
			{Address: keys.PrimaryAddress(cfg.Mainnet, sender), Amount: changeAmount},
		},
		UnlockTime: 0,
		Fee:        fee,
		RandScalar: deterministicRandSource("build-test"),
	}

	built, err := Build(params)
	require.NoError(t, err)
	require.NotEmpty(t, built.TxBlob)
	require.Equal(t, fee, built.Fee)

	parsed, err := ParseTransaction(built.TxBlob, len(input.Ring))
	require.NoError(t, err)
	require.Equal(t, uint64(txVersion), parsed.Version)
	require.Len(t, parsed.Vout, 2)
	require.Len(t, parsed.Vin, 1)
	require.Equal(t, byte(rctTypeBulletproofPlus), parsed.Rct.Type)
	require.Equal(t, fee, parsed.Rct.Fee)

	// Commitment balance: Σ pseudo_out == Σ out_pk + fee*H (the pseudo-outs
	// commit to the full input amounts, the outputs to everything but the
	// fee).
	sumPseudo := parsed.Rct.PseudoOuts[0]
	for _, po := range parsed.Rct.PseudoOuts[1:] {
		sumPseudo = sumPseudo.Add(po)
	}
	sumOut := parsed.Rct.OutPk[0]
	for _, op := range parsed.Rct.OutPk[1:] {
		sumOut = sumOut.Add(op)
	}
	sumOut = sumOut.Add(curve.H.ScalarMult(curve.ScalarFromUint64(fee)))
	require.True(t, sumPseudo.Equal(sumOut))

	// CLSAG verifies against the parsed ring and pseudo-out.
	ringP := make([]curve.Point, len(input.Ring))
	ringC := make([]curve.Point, len(input.Ring))
	for i, m := range input.Ring {
		ringP[i] = m.PublicKey
		ringC[i] = m.Commitment
	}
	sig := clsag.Signature{C1: parsed.Rct.Clsags[0].C1, S: parsed.Rct.Clsags[0].S, D: parsed.Rct.Clsags[0].D}
	keyImage := keys.KeyImage(input.OneTimeSecret, input.OneTimePublic)
	err = clsag.Verify(built.PrefixHash[:], ringP, ringC, parsed.Rct.PseudoOuts[0], keyImage, sig)
	require.NoError(t, err)

	err = bulletproof.Verify(parsed.Rct.OutPk, parsed.Rct.BulletproofProofs[0])
	require.NoError(t, err)
}

func TestBuildRejectsBalanceMismatch(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0x33))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0x44))
	require.NoError(t, err)

	input := buildOwnedInput(t, sender, 16, 0, 1_000_000_000, 2000)

	params := Params{
		Inputs:       []Input{input},
		Destinations: []Destination{{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: 999_000_000}},
		Fee:          500_000, // deliberately doesn't account for the rest
		RandScalar:   deterministicRandSource("mismatch-test"),
	}

	_, err = Build(params)
	require.Error(t, err)
}

func TestBuildRejectsTooManyOutputs(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0x55))
	require.NoError(t, err)
	input := buildOwnedInput(t, sender, 16, 0, 1_000_000_000, 3000)

	dests := make([]Destination, maxOutputs+1)
	for i := range dests {
		dests[i] = Destination{Address: keys.PrimaryAddress(cfg.Mainnet, sender), Amount: 1}
	}

	params := Params{
		Inputs:       []Input{input},
		Destinations: dests,
		Fee:          0,
		RandScalar:   deterministicRandSource("too-many-outputs"),
	}

	_, err = Build(params)
	require.Error(t, err)
}

func TestSweepAllSingleDestination(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0x66))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0x77))
	require.NoError(t, err)

	in1 := buildOwnedInput(t, sender, 16, 5, 2_000_000_000, 4000)
	in2 := buildOwnedInput(t, sender, 16, 1, 3_000_000_000, 5000)
	in3 := buildOwnedInput(t, sender, 16, 9, 1_500_000_000, 6000)

	fee := uint64(50_000)
	total := in1.Amount + in2.Amount + in3.Amount

	params := Params{
		Inputs:       []Input{in1, in2, in3},
		Destinations: []Destination{{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: total - fee}},
		Fee:          fee,
		RandScalar:   deterministicRandSource("sweep-test"),
	}

	built, err := Build(params)
	require.NoError(t, err)

	parsed, err := ParseTransaction(built.TxBlob, 16)
	require.NoError(t, err)
	require.Len(t, parsed.Vout, 1)
	require.Len(t, parsed.Vin, 3)
	require.Equal(t, fee, parsed.Rct.Fee)
}

func TestBuildOfflineRoundTrip(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0x88))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0x99))
	require.NoError(t, err)

	input := buildOwnedInput(t, sender, 16, 2, 5_000_000_000, 7000)
	fee := uint64(40_000)
	sendAmount := uint64(2_000_000_000)
	change := input.Amount - sendAmount - fee

	params := Params{
		Inputs: []Input{input},
		Destinations: []Destination{
			{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: sendAmount},
			{Address: keys.PrimaryAddress(cfg.Mainnet, sender), Amount: change},
		},
		Fee:        fee,
		RandScalar: deterministicRandSource("offline-test"),
	}

	unsigned, err := PrepareUnsigned(params)
	require.NoError(t, err)

	doc := Export(unsigned, params, "sender-change-address")
	require.Equal(t, 1, doc.Version)
	require.Len(t, doc.Inputs, 1)
	require.Len(t, doc.Outputs, 2)

	imported, err := ImportUnsigned(*doc, params)
	require.NoError(t, err)

	signed, err := imported.Sign(params)
	require.NoError(t, err)

	directlySigned, err := unsigned.Sign(params)
	require.NoError(t, err)

	require.Equal(t, len(directlySigned.TxBlob), len(signed.TxBlob))
	require.Equal(t, directlySigned.Fee, signed.Fee)
	require.Equal(t, directlySigned.PrefixHash, signed.PrefixHash)
}

func TestImportUnsignedRejectsTamperedFee(t *testing.T) {
	sender, err := keys.FromSeed(testSeed(0xaa))
	require.NoError(t, err)
	recipient, err := keys.FromSeed(testSeed(0xbb))
	require.NoError(t, err)

	input := buildOwnedInput(t, sender, 16, 0, 1_000_000_000, 8000)
	fee := uint64(20_000)

	params := Params{
		Inputs:       []Input{input},
		Destinations: []Destination{{Address: keys.PrimaryAddress(cfg.Mainnet, recipient), Amount: input.Amount - fee}},
		Fee:          fee,
		RandScalar:   deterministicRandSource("tamper-test"),
	}

	unsigned, err := PrepareUnsigned(params)
	require.NoError(t, err)
	doc := Export(unsigned, params, "addr")
	doc.Fee = fee + 1

	_, err = ImportUnsigned(*doc, params)
	require.Error(t, err)
}

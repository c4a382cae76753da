package commitment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/curve"
)

func TestCommitIsHomomorphicOverAmounts(t *testing.T) {
	x1 := curve.HashToScalar([]byte("mask1"))
	x2 := curve.HashToScalar([]byte("mask2"))

	c1 := Commit(x1, 100)
	c2 := Commit(x2, 250)

	sumCommit := c1.Add(c2)
	combinedMask := x1.Add(x2)
	directCommit := Commit(combinedMask, 350)

	require.True(t, sumCommit.Equal(directCommit))
}

func TestEcdhEncodeDecodeRoundTrip(t *testing.T) {
	sharedSecret := curve.ScalarMultBase(curve.HashToScalar([]byte("shared")))
	const amount = uint64(123456789)
	const index = uint64(2)

	ct := EcdhEncode(amount, sharedSecret, index)
	got := EcdhDecode(ct, sharedSecret, index)
	require.Equal(t, amount, got)
}

func TestEcdhEncodeDiffersFromPlaintext(t *testing.T) {
	sharedSecret := curve.ScalarMultBase(curve.HashToScalar([]byte("shared2")))
	ct := EcdhEncode(42, sharedSecret, 0)

	var plain [8]byte
	plain[0] = 42
	require.NotEqual(t, plain, ct)
}

func TestBalanceLastMaskSatisfiesConservation(t *testing.T) {
	in1 := curve.HashToScalar([]byte("in1"))
	in2 := curve.HashToScalar([]byte("in2"))
	out1 := curve.HashToScalar([]byte("out1"))
	out2 := curve.HashToScalar([]byte("out2"))

	lastMask := BalanceLastMask([]curve.Scalar{in1, in2}, []curve.Scalar{out1, out2})

	// Sigma(input commitments) for matching amounts must equal Sigma(output
	// commitments) once masks balance and amounts balance.
	const amt1, amt2, amtOut1, amtOut2 = uint64(10), uint64(20), uint64(7), uint64(23)
	inputSum := Commit(in1, amt1).Add(Commit(in2, amt2))
	outputSum := Commit(out1, amtOut1).Add(Commit(out2, amtOut2)).Add(Commit(lastMask, 0))

	require.True(t, inputSum.Equal(outputSum))
}

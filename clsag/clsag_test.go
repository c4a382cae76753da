package clsag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/curve"
)

// deterministicRandSource returns a RandomScalarFunc that derives scalars
// from a counter, giving reproducible (non-secure) randomness for tests.
func deterministicRandSource(seed string) RandomScalarFunc {
	counter := 0
	return func() curve.Scalar {
		counter++
		return curve.HashToScalar([]byte(seed), []byte{byte(counter), byte(counter >> 8)})
	}
}

func buildRing(t *testing.T, n, realIndex int, realAmount uint64) (
	ringP, ringC []curve.Point, pseudoOut curve.Point, x, z curve.Scalar,
) {
	t.Helper()
	ringP = make([]curve.Point, n)
	ringC = make([]curve.Point, n)

	var realX, realMask curve.Scalar
	for i := 0; i < n; i++ {
		sk := curve.HashToScalar([]byte("spend"), []byte{byte(i)})
		mask := curve.HashToScalar([]byte("mask"), []byte{byte(i)})
		ringP[i] = curve.ScalarMultBase(sk)

		amount := realAmount
		if i != realIndex {
			amount = uint64(i) * 17
		}
		ringC[i] = curve.ScalarMultBase(mask).Add(curve.H.ScalarMult(curve.ScalarFromUint64(amount)))

		if i == realIndex {
			realX = sk
			realMask = mask
		}
	}

	pseudoMask := curve.HashToScalar([]byte("pseudo-mask"))
	pseudoOut = curve.ScalarMultBase(pseudoMask).Add(curve.H.ScalarMult(curve.ScalarFromUint64(realAmount)))

	x = realX
	z = realMask.Sub(pseudoMask)
	return
}

func TestSignVerifyRoundTrip(t *testing.T) {
	const n = 5
	const realIndex = 2
	ringP, ringC, pseudoOut, x, z := buildRing(t, n, realIndex, 500)

	message := []byte("prefix-hash-placeholder")
	sig, keyImage, err := Sign(message, ringP, ringC, pseudoOut, realIndex, x, z, deterministicRandSource("nonce"))
	require.NoError(t, err)

	err = Verify(message, ringP, ringC, pseudoOut, keyImage, sig)
	require.NoError(t, err)
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	const n = 4
	const realIndex = 1
	ringP, ringC, pseudoOut, x, z := buildRing(t, n, realIndex, 200)

	sig, keyImage, err := Sign([]byte("original"), ringP, ringC, pseudoOut, realIndex, x, z, deterministicRandSource("nonce2"))
	require.NoError(t, err)

	err = Verify([]byte("tampered"), ringP, ringC, pseudoOut, keyImage, sig)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedResponse(t *testing.T) {
	const n = 4
	const realIndex = 0
	ringP, ringC, pseudoOut, x, z := buildRing(t, n, realIndex, 77)

	message := []byte("prefix-hash")
	sig, keyImage, err := Sign(message, ringP, ringC, pseudoOut, realIndex, x, z, deterministicRandSource("nonce3"))
	require.NoError(t, err)

	sig.S[1] = sig.S[1].Add(curve.ScalarFromUint64(1))

	err = Verify(message, ringP, ringC, pseudoOut, keyImage, sig)
	require.Error(t, err)
}

func TestSignRejectsMismatchedRingLengths(t *testing.T) {
	ringP := []curve.Point{curve.BasePoint()}
	ringC := []curve.Point{}
	_, _, err := Sign([]byte("m"), ringP, ringC, curve.Identity(), 0,
		curve.HashToScalar([]byte("x")), curve.HashToScalar([]byte("z")), deterministicRandSource("s"))
	require.Error(t, err)
}

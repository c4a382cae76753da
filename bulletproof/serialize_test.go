package bulletproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/curve"
)

func serializeTestRandScalar() RandomScalarFunc {
	var counter uint64
	return func() curve.Scalar {
		counter++
		var wide [64]byte
		wide[0] = byte(counter)
		wide[8] = byte(counter >> 8)
		s, _ := curve.ScalarReduce(wide[:])
		return s
	}
}

func TestProofBytesRoundTrip(t *testing.T) {
	rnd := serializeTestRandScalar()
	gamma := rnd()
	proof, _, err := Prove([]uint64{12345}, []curve.Scalar{gamma}, rnd)
	require.NoError(t, err)

	encoded := proof.Bytes()
	decoded, n, err := ParseProof(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)

	require.True(t, proof.A.Equal(decoded.A))
	require.True(t, proof.S.Equal(decoded.S))
	require.True(t, proof.T1.Equal(decoded.T1))
	require.True(t, proof.T2.Equal(decoded.T2))
	require.True(t, proof.Taux.Equal(decoded.Taux))
	require.True(t, proof.Mu.Equal(decoded.Mu))
	require.True(t, proof.T.Equal(decoded.T))
	require.Equal(t, len(proof.L), len(decoded.L))
	for i := range proof.L {
		require.True(t, proof.L[i].Equal(decoded.L[i]))
		require.True(t, proof.R[i].Equal(decoded.R[i]))
	}
}

func TestParseProofRejectsTruncatedBuffer(t *testing.T) {
	_, _, err := ParseProof(make([]byte, 10))
	require.Error(t, err)
}

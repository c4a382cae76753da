package bulletproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/curve"
)

func deterministicRandSource(seed string) RandomScalarFunc {
	counter := 0
	return func() curve.Scalar {
		counter++
		return curve.HashToScalar([]byte(seed), []byte{byte(counter), byte(counter >> 8)})
	}
}

func TestProveVerifySingleOutput(t *testing.T) {
	gamma := curve.HashToScalar([]byte("gamma"))
	proof, commitments, err := Prove([]uint64{12345}, []curve.Scalar{gamma}, deterministicRandSource("rp1"))
	require.NoError(t, err)

	err = Verify(commitments, proof)
	require.NoError(t, err)
}

func TestProveVerifyAggregatedOutputs(t *testing.T) {
	amounts := []uint64{1, 2, 1000000, 0, 42}
	gammas := make([]curve.Scalar, len(amounts))
	for i := range gammas {
		gammas[i] = curve.HashToScalar([]byte("gamma"), []byte{byte(i)})
	}

	proof, commitments, err := Prove(amounts, gammas, deterministicRandSource("rp2"))
	require.NoError(t, err)

	err = Verify(commitments, proof)
	require.NoError(t, err)
}

func TestVerifyRejectsTamperedT(t *testing.T) {
	gamma := curve.HashToScalar([]byte("gamma3"))
	proof, commitments, err := Prove([]uint64{777}, []curve.Scalar{gamma}, deterministicRandSource("rp3"))
	require.NoError(t, err)

	proof.T = proof.T.Add(curve.ScalarFromUint64(1))
	err = Verify(commitments, proof)
	require.Error(t, err)
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	gamma := curve.HashToScalar([]byte("gamma4"))
	proof, _, err := Prove([]uint64{555}, []curve.Scalar{gamma}, deterministicRandSource("rp4"))
	require.NoError(t, err)

	wrongCommitment := curve.ScalarMultBase(curve.HashToScalar([]byte("other")))
	err = Verify([]curve.Point{wrongCommitment}, proof)
	require.Error(t, err)
}

func TestProveRejectsTooManyOutputs(t *testing.T) {
	amounts := make([]uint64, MaxOutputs+1)
	gammas := make([]curve.Scalar, MaxOutputs+1)
	for i := range gammas {
		gammas[i] = curve.HashToScalar([]byte("g"), []byte{byte(i)})
	}
	_, _, err := Prove(amounts, gammas, deterministicRandSource("rp5"))
	require.Error(t, err)
}

func TestVerifyBatchChecksAllProofs(t *testing.T) {
	gamma1 := curve.HashToScalar([]byte("b1"))
	gamma2 := curve.HashToScalar([]byte("b2"))
	proof1, c1, err := Prove([]uint64{10}, []curve.Scalar{gamma1}, deterministicRandSource("batch1"))
	require.NoError(t, err)
	proof2, c2, err := Prove([]uint64{20}, []curve.Scalar{gamma2}, deterministicRandSource("batch2"))
	require.NoError(t, err)

	err = VerifyBatch([][]curve.Point{c1, c2}, []Proof{proof1, proof2})
	require.NoError(t, err)

	err = VerifyBatch([][]curve.Point{c1, c2}, []Proof{proof2, proof1})
	require.Error(t, err)
}

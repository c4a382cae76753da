// Package clsag implements CLSAG ring signatures: a signer proves
// ownership of one of n ring members' spend keys, and that the
// corresponding input's pseudo-output commitment matches the real
// member's commitment, without revealing which member is real.
package clsag

import (
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Signature is a CLSAG ring signature: the first challenge in the
// verification walk, one response scalar per ring member, and the
// auxiliary commitment-difference point D.
type Signature struct {
	C1 curve.Scalar
	S  []curve.Scalar
	D  curve.Point
}

var (
	domainAgg0  = []byte("CLSAG_agg_0")
	domainAgg1  = []byte("CLSAG_agg_1")
	domainRound = []byte("CLSAG_round")
)

// RandomScalarFunc supplies uniformly random scalars for the signing
// nonce and the non-real ring members' responses. Tests pass a seeded
// deterministic source; production callers pass one backed by
// crypto/rand.
type RandomScalarFunc func() curve.Scalar

// Sign produces a CLSAG signature proving knowledge of the spend secret
// x at ringP[realIndex] and the commitment-difference secret z such that
// ringC[realIndex] - pseudoOut = z*G (G being the blinding generator of
// commitment.Commit), binding the signature to message
// (the transaction's prefix hash). Returns the signature and the
// input's key image, which the caller serializes alongside it (the key
// image is not itself part of the Signature so that verifiers who
// already hold it from the input's key_image field need not re-derive
// it from the signature).
func Sign(
	message []byte,
	ringP, ringC []curve.Point,
	pseudoOut curve.Point,
	realIndex int,
	x, z curve.Scalar,
	randScalar RandomScalarFunc,
) (Signature, curve.Point, error) {
	n := len(ringP)
	if n == 0 || len(ringC) != n {
		return Signature{}, curve.Point{}, walleterrors.New("clsag.Sign", walleterrors.RingSizeInvalid,
			"ring key and commitment lists must be equal, non-zero length")
	}
	if realIndex < 0 || realIndex >= n {
		return Signature{}, curve.Point{}, walleterrors.New("clsag.Sign", walleterrors.RingSizeInvalid,
			"real index out of range")
	}

	hpReal := curve.HashToPoint(ringP[realIndex].Bytes())
	keyImage := hpReal.ScalarMult(x)
	D := hpReal.ScalarMult(z)

	muP, muC := aggregationCoefficients(ringP, ringC, keyImage, D)

	w := ringWeights(ringP, ringC, pseudoOut, muP, muC)
	aggregatePoint := keyImage.ScalarMult(muP).Add(D.ScalarMult(muC))

	alpha := randScalar()
	s := make([]curve.Scalar, n)
	for i := range s {
		if i != realIndex {
			s[i] = randScalar()
		}
	}

	c := make([]curve.Scalar, n)
	lReal := curve.ScalarMultBase(alpha)
	rReal := hpReal.ScalarMult(alpha)
	next := (realIndex + 1) % n
	c[next] = roundChallenge(message, w, keyImage, D, lReal, rReal)

	for i := next; i != realIndex; i = (i + 1) % n {
		hpI := curve.HashToPoint(ringP[i].Bytes())
		L := curve.ScalarMultBase(s[i]).Add(w[i].ScalarMult(c[i]))
		R := hpI.ScalarMult(s[i]).Add(aggregatePoint.ScalarMult(c[i]))
		ni := (i + 1) % n
		c[ni] = roundChallenge(message, w, keyImage, D, L, R)
	}

	s[realIndex] = alpha.Sub(c[realIndex].Mul(muP.Mul(x).Add(muC.Mul(z))))

	return Signature{C1: c[0], S: s, D: D}, keyImage, nil
}

// Verify checks sig against message, ring (ringP, ringC), pseudoOut, and
// the input's key image. Returns nil on success, a *walleterrors.E with
// Kind RingSizeInvalid when the ring and signature lengths disagree, or
// one with Kind CLSAGVerifyFailed describing any other failure.
func Verify(
	message []byte,
	ringP, ringC []curve.Point,
	pseudoOut curve.Point,
	keyImage curve.Point,
	sig Signature,
) error {
	n := len(ringP)
	if n == 0 || len(ringC) != n || len(sig.S) != n {
		return walleterrors.New("clsag.Verify", walleterrors.RingSizeInvalid,
			"ring/signature length mismatch")
	}
	if !keyImage.IsInSubgroup() {
		return walleterrors.New("clsag.Verify", walleterrors.CLSAGVerifyFailed,
			"key image outside prime-order subgroup")
	}

	muP, muC := aggregationCoefficients(ringP, ringC, keyImage, sig.D)
	w := ringWeights(ringP, ringC, pseudoOut, muP, muC)
	aggregatePoint := keyImage.ScalarMult(muP).Add(sig.D.ScalarMult(muC))

	c := sig.C1
	for i := 0; i < n; i++ {
		hpI := curve.HashToPoint(ringP[i].Bytes())
		L := curve.VarTimeDoubleScalarMult(sig.S[i], curve.BasePoint(), c, w[i])
		R := curve.VarTimeMultiScalarMult(
			[]curve.Scalar{sig.S[i], c},
			[]curve.Point{hpI, aggregatePoint},
		)
		c = roundChallenge(message, w, keyImage, sig.D, L, R)
	}

	if !c.Equal(sig.C1) {
		return walleterrors.New("clsag.Verify", walleterrors.CLSAGVerifyFailed,
			"challenge did not close the ring")
	}
	return nil
}

// ringWeights computes W_i = muP*P_i + muC*(C_i - pseudoOut) for every
// ring member.
func ringWeights(ringP, ringC []curve.Point, pseudoOut curve.Point, muP, muC curve.Scalar) []curve.Point {
	w := make([]curve.Point, len(ringP))
	for i := range ringP {
		diff := ringC[i].Sub(pseudoOut)
		w[i] = ringP[i].ScalarMult(muP).Add(diff.ScalarMult(muC))
	}
	return w
}

// aggregationCoefficients computes mu_P and mu_C, binding the ring's
// spend keys and commitments plus the key image and auxiliary point D
// into two scalars that collapse the per-member (P_i, C_i) pair into a
// single weighted point W_i.
func aggregationCoefficients(ringP, ringC []curve.Point, keyImage, D curve.Point) (muP, muC curve.Scalar) {
	ringKeys := make([][]byte, 0, 2*len(ringP)+2)
	for _, p := range ringP {
		ringKeys = append(ringKeys, p.Bytes())
	}
	for _, c := range ringC {
		ringKeys = append(ringKeys, c.Bytes())
	}
	ringKeys = append(ringKeys, keyImage.Bytes(), D.Bytes())

	muP = curve.HashToScalar(append([][]byte{domainAgg0}, ringKeys...)...)
	muC = curve.HashToScalar(append([][]byte{domainAgg1}, ringKeys...)...)
	return
}

// roundChallenge computes H_s("CLSAG_round" || message || W-keys || I ||
// D || L || R), the challenge carried from one ring step to the next.
func roundChallenge(message []byte, w []curve.Point, keyImage, D, L, R curve.Point) curve.Scalar {
	parts := make([][]byte, 0, len(w)+6)
	parts = append(parts, domainRound, message)
	for _, wi := range w {
		parts = append(parts, wi.Bytes())
	}
	parts = append(parts, keyImage.Bytes(), D.Bytes(), L.Bytes(), R.Bytes())
	return curve.HashToScalar(parts...)
}

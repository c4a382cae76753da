// Package commitment implements Pedersen commitments over amounts, ECDH
// amount encoding, and output-mask balancing — the confidential-amount
// layer CLSAG and Bulletproofs+ are built on top of.
package commitment

import (
	"encoding/binary"

	"github.com/rawblock/xmrwallet/curve"
)

// Commit returns C = x*G + a*H, hiding amount a under blinding factor x.
// G is the Ed25519 base point; H is curve.H, a fixed generator with
// unknown discrete log relative to G.
func Commit(x curve.Scalar, amount uint64) curve.Point {
	a := curve.ScalarFromUint64(amount)
	return curve.ScalarMultBase(x).Add(curve.H.ScalarMult(a))
}

// CommitMask returns x*G + a*H for an already-scalar-encoded amount mask
// a, used when balancing masks that don't represent a plain uint64
// amount (e.g. the derived last output mask).
func CommitMask(x curve.Scalar, a curve.Scalar) curve.Point {
	return curve.ScalarMultBase(x).Add(curve.H.ScalarMult(a))
}

var amountDomain = []byte("amount")

// amountMaskScalar derives the keystream scalar H_s(H_s("amount" ||
// shared_secret) || index) that ECDH-masks an output's amount.
func amountMaskScalar(sharedSecret curve.Point, index uint64) curve.Scalar {
	inner := curve.HashToScalar(amountDomain, sharedSecret.Bytes())
	var idxBuf [8]byte
	binary.LittleEndian.PutUint64(idxBuf[:], index)
	return curve.HashToScalar(inner.Bytes(), idxBuf[:])
}

// EcdhEncode masks amount into an 8-byte little-endian ciphertext, XORing
// it against the low 8 bytes of the derived keystream scalar.
func EcdhEncode(amount uint64, sharedSecret curve.Point, index uint64) [8]byte {
	keystream := amountMaskScalar(sharedSecret, index).Bytes()

	var plain [8]byte
	binary.LittleEndian.PutUint64(plain[:], amount)

	var out [8]byte
	for i := 0; i < 8; i++ {
		out[i] = plain[i] ^ keystream[i]
	}
	return out
}

// EcdhDecode reverses EcdhEncode, recovering the masked amount. The
// caller must separately validate the result by recomputing Commit(mask,
// amount) and comparing against the on-chain commitment.
func EcdhDecode(ciphertext [8]byte, sharedSecret curve.Point, index uint64) uint64 {
	keystream := amountMaskScalar(sharedSecret, index).Bytes()

	var plain [8]byte
	for i := 0; i < 8; i++ {
		plain[i] = ciphertext[i] ^ keystream[i]
	}
	return binary.LittleEndian.Uint64(plain[:])
}

// EcdhMask derives the blinding scalar masking an output's commitment,
// H_s(H_s("amount" || shared_secret) || index) shifted by one hash
// application so it is independent of the amount keystream above (the
// mask and the amount-encoding keystream must not collide).
func EcdhMask(sharedSecret curve.Point, index uint64) curve.Scalar {
	base := amountMaskScalar(sharedSecret, index)
	return curve.HashToScalar([]byte("commitment_mask"), base.Bytes())
}

// BalanceLastMask computes the final output's blinding mask so that the
// sum of all output commitments' masks equals the sum of the spent
// inputs' masks: last = (sum(inputMasks) - sum(otherOutputMasks)) mod l.
// This is what makes Sigma(outputs) - Sigma(inputs) = 0 as group elements
// once amounts also balance, letting verifiers check conservation of
// value without learning any individual amount.
func BalanceLastMask(inputMasks, otherOutputMasks []curve.Scalar) curve.Scalar {
	sum := curve.ScalarFromUint64(0)
	for _, m := range inputMasks {
		sum = sum.Add(m)
	}
	for _, m := range otherOutputMasks {
		sum = sum.Sub(m)
	}
	return sum
}

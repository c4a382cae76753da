// Package txbuilder assembles a signed, wire-ready Monero transaction from
// a caller-resolved set of spendable inputs and destinations: stealth
// output construction, mask balancing, Bulletproofs+ range proofs,
// canonical prefix serialization, and per-input CLSAG signing.
package txbuilder

import (
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
)

// Destination is one payment the built transaction makes.
type Destination struct {
	Address keys.Address
	Amount  uint64
}

// RingMember is one entry — real or decoy — in an input's anonymity ring.
type RingMember struct {
	GlobalIndex uint64
	PublicKey   curve.Point
	Commitment  curve.Point
}

// Input is one spendable output the transaction will consume, together
// with the ring the decoy selector chose for it.
type Input struct {
	// OneTimePublic and OneTimeSecret are the real output's one-time key
	// pair (P, x): x = H_s(derivation) + spend_secret (+ subaddress
	// offset, see keys.KeyPair.SubaddressSpendOffset).
	OneTimePublic curve.Point
	OneTimeSecret curve.Scalar

	// Amount and Mask are the real output's plain amount and blinding
	// factor, recovered by the scanner when the output was received.
	Amount uint64
	Mask   curve.Scalar

	// Ring holds every ring member sorted ascending by GlobalIndex,
	// including the real output at RealIndex.
	Ring      []RingMember
	RealIndex int
}

// RandomScalarFunc supplies uniformly random scalars for every
// randomized step of the build: the transaction secret, output masks,
// Bulletproofs+ blinding, and CLSAG nonces. Production callers wire this
// to crypto/rand; tests pass a deterministic seeded source.
type RandomScalarFunc func() curve.Scalar

// Params configures one Build call. The caller is responsible for having
// already run decoy and input selection (§4.10, §4.11) and for including
// a change destination in Destinations when Fee leaves a remainder, since
// Build only balances what it is given — it does not itself select
// inputs or decide whether a change output is warranted.
type Params struct {
	Inputs       []Input
	Destinations []Destination
	UnlockTime   uint64
	Fee          uint64
	RandScalar   RandomScalarFunc

	// PaymentID, when non-nil, is carried as a short encrypted payment
	// ID nonce in extra, keyed to the first destination's shared secret.
	PaymentID *[8]byte
}

// Built is the result of a successful Build: the fully serialized,
// signed transaction plus the pieces a caller commonly wants without
// re-parsing the blob.
type Built struct {
	TxBlob     []byte
	TxHash     [32]byte
	PrefixHash [32]byte
	Fee        uint64
}

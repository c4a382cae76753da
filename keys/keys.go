// Package keys implements spend/view key derivation, subaddress
// derivation, stealth-output key construction, and view tags — the
// address-layer primitives every send and scan operation is built on.
package keys

import (
	"encoding/binary"

	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keccak"
	"github.com/rawblock/xmrwallet/varint"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// KeyPair holds the root signing/viewing authority for a wallet. For a
// full wallet, SpendSecret is present and ViewSecret is derived from it
// deterministically. For a view-only wallet, SpendSecret is the zero
// value and must never be used; ViewSecret is supplied directly by the
// holder instead of being derived.
type KeyPair struct {
	SpendSecret curve.Scalar
	ViewSecret  curve.Scalar
	SpendPublic curve.Point
	ViewPublic  curve.Point

	// ViewOnly is true when SpendSecret was never populated — this
	// KeyPair can scan but not sign.
	ViewOnly bool
}

// FromSeed derives a full KeyPair from 32 bytes of seed entropy (typically
// the output of mnemonic.MnemonicToEntropy, or fresh randomness for a new
// wallet): the seed reduced mod the group order becomes the spend secret,
// and the view secret is Keccak-256(spend_secret) reduced mod the group
// order.
func FromSeed(seed [32]byte) (KeyPair, error) {
	var wide [64]byte
	copy(wide[:32], seed[:])
	spendSecret, err := curve.ScalarReduce(wide[:])
	if err != nil {
		return KeyPair{}, walleterrors.New("keys.FromSeed", walleterrors.InvalidScalar, err)
	}

	viewSecret := deriveViewSecret(spendSecret)

	return KeyPair{
		SpendSecret: spendSecret,
		ViewSecret:  viewSecret,
		SpendPublic: curve.ScalarMultBase(spendSecret),
		ViewPublic:  curve.ScalarMultBase(viewSecret),
	}, nil
}

// deriveViewSecret computes the deterministic view secret for a spend
// secret: Keccak-256(spend_secret) reduced mod the group order.
func deriveViewSecret(spendSecret curve.Scalar) curve.Scalar {
	h := keccak.Sum256(spendSecret.Bytes())
	var wide [64]byte
	copy(wide[:32], h[:])
	s, _ := curve.ScalarReduce(wide[:])
	return s
}

// FromViewOnly constructs a view-only KeyPair: it can scan incoming
// outputs and derive subaddresses, but SpendSecret is unavailable so it
// can never sign.
func FromViewOnly(viewSecret curve.Scalar, spendPublic curve.Point) KeyPair {
	return KeyPair{
		ViewSecret:  viewSecret,
		SpendPublic: spendPublic,
		ViewPublic:  curve.ScalarMultBase(viewSecret),
		ViewOnly:    true,
	}
}

// SubaddressIndex identifies a (major, minor) account/address-index pair.
// (0, 0) denotes the primary address.
type SubaddressIndex struct {
	Major uint32
	Minor uint32
}

// IsPrimary reports whether idx is the (0, 0) primary index.
func (idx SubaddressIndex) IsPrimary() bool {
	return idx.Major == 0 && idx.Minor == 0
}

var subaddrDomain = []byte("SubAddr\x00")

// subaddressScalar computes m = Keccak("SubAddr\0" || view_secret ||
// u32_le(major) || u32_le(minor)) reduced mod the group order.
func subaddressScalar(viewSecret curve.Scalar, idx SubaddressIndex) curve.Scalar {
	var majorBuf, minorBuf [4]byte
	binary.LittleEndian.PutUint32(majorBuf[:], idx.Major)
	binary.LittleEndian.PutUint32(minorBuf[:], idx.Minor)
	return curve.HashToScalar(subaddrDomain, viewSecret.Bytes(), majorBuf[:], minorBuf[:])
}

// DeriveSubaddress returns the (spend, view) public-key pair for idx. For
// the primary index this is exactly (SpendPublic, ViewPublic); for any
// other index it is a pure function of the wallet's keys and idx, sharing
// no on-chain linkability with the primary address or with any other
// subaddress.
func (kp KeyPair) DeriveSubaddress(idx SubaddressIndex) (spendPub, viewPub curve.Point) {
	if idx.IsPrimary() {
		return kp.SpendPublic, kp.ViewPublic
	}
	m := subaddressScalar(kp.ViewSecret, idx)
	d := kp.SpendPublic.Add(curve.ScalarMultBase(m))
	c := d.ScalarMult(kp.ViewSecret)
	return d, c
}

// SubaddressSpendOffset returns m, the scalar DeriveSubaddress adds to the
// primary spend public key to derive idx's subaddress spend public key
// (zero for the primary index). Spending an output received at a
// subaddress requires adding this offset to the wallet's spend secret
// before calling OneTimeSecret, since that output's one-time key was built
// against D = spend_public + m*G rather than spend_public directly.
func (kp KeyPair) SubaddressSpendOffset(idx SubaddressIndex) curve.Scalar {
	if idx.IsPrimary() {
		return curve.ScalarFromUint64(0)
	}
	return subaddressScalar(kp.ViewSecret, idx)
}

// StealthOutputKey computes the one-time output key P = H_s(r*A ||
// varint(n))*G + B for a destination with (view, spend) public keys
// (A, B), the sender's per-transaction secret r, and output index n. For
// subaddress destinations (C, D) the caller passes r*C in place of r*A and
// D as spendPub; the recipient recomputes r*C as view_secret*R_n from the
// additional tx pubkey R_n = r*D.
func StealthOutputKey(sharedSecretPoint curve.Point, spendPub curve.Point, n uint64) curve.Point {
	derivation := Derivation(sharedSecretPoint, n)
	return curve.ScalarMultBase(derivation).Add(spendPub)
}

// Derivation computes H_s(shared_secret || varint(n)), the per-output
// derivation scalar shared by stealth-output construction, scanning, and
// ECDH amount masking.
func Derivation(sharedSecretPoint curve.Point, n uint64) curve.Scalar {
	return curve.HashToScalar(sharedSecretPoint.Bytes(), varint.Bytes(n))
}

// ViewTag computes the one-byte scanning prefilter: the first byte of
// Keccak("view_tag" || r*A || varint(n)).
func ViewTag(sharedSecretPoint curve.Point, n uint64) byte {
	h := keccak.Sum256([]byte("view_tag"), sharedSecretPoint.Bytes(), varint.Bytes(n))
	return h[0]
}

// OneTimeSecret computes the recipient-side one-time secret key x = H_s(r*A
// || varint(n)) + b corresponding to a StealthOutputKey built with
// destination spend secret b. This is what the scanner reconstructs to
// take spending authority over a recognized output, and what the key
// image I = x*H_p(P) is ultimately derived from.
func OneTimeSecret(sharedSecretPoint curve.Point, n uint64, spendSecret curve.Scalar) curve.Scalar {
	derivation := Derivation(sharedSecretPoint, n)
	return derivation.Add(spendSecret)
}

// KeyImage computes I = x * H_p(P), the unique-per-output value the
// network uses to detect double spends. Two independent derivations of
// the same output's secret x and public key P always agree; two distinct
// outputs' key images are (with overwhelming probability) distinct.
func KeyImage(oneTimeSecret curve.Scalar, oneTimePublic curve.Point) curve.Point {
	hp := curve.HashToPoint(oneTimePublic.Bytes())
	return hp.ScalarMult(oneTimeSecret)
}

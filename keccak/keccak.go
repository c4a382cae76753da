// Package keccak provides the Keccak-256 sponge hash used throughout the
// wallet core. This is NOT SHA3-256: Keccak uses the original 10*1 padding
// (first pad byte 0x01, last pad byte 0x80) that was superseded by NIST's
// 0x06 domain-separated padding when SHA3 was standardized. Monero and
// every one-time address, key-image, and checksum derivation in this
// package depend on the original padding.
package keccak

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Size is the digest size in bytes.
const Size = 32

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data ...[]byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [Size]byte
	h.Sum(out[:0])
	return out
}

// New returns a resettable hash.Hash computing Keccak-256, for callers that
// need to write incrementally.
func New() *Hash {
	return &Hash{h: sha3.NewLegacyKeccak256()}
}

// Hash wraps the legacy-Keccak sponge so callers don't need to import
// golang.org/x/crypto/sha3 directly.
type Hash struct {
	h hash.Hash
}

// Write absorbs more bytes into the sponge.
func (h *Hash) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// Sum256 squeezes out the 32-byte digest without mutating the sponge state.
func (h *Hash) Sum256() [Size]byte {
	var out [Size]byte
	h.h.Sum(out[:0])
	return out
}

// Reset restores the sponge to its initial state.
func (h *Hash) Reset() {
	h.h.Reset()
}

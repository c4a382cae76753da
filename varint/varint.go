// Package varint implements the LEB128-style variable-length integer
// encoding used throughout the transaction prefix, extra fields, and
// stealth-address derivations: 7 bits of payload per byte, high bit set on
// every byte but the last.
package varint

import (
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Encode appends the varint encoding of v to buf and returns the result.
func Encode(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// Bytes returns the varint encoding of v as a standalone slice. Used
// directly inside hash preimages (e.g. H_s(shared_secret || varint(n))),
// where no surrounding buffer exists yet.
func Bytes(v uint64) []byte {
	return Encode(nil, v)
}

// Decode reads a varint from the front of buf, returning the decoded value
// and the number of bytes consumed. Returns SerializationOverflow if the
// encoding exceeds 10 bytes (more than fits in a uint64) and InvalidLength
// if buf is exhausted before a terminating byte is found.
func Decode(buf []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i, b := range buf {
		if i >= 10 {
			return 0, 0, walleterrors.New("varint.Decode", walleterrors.SerializationOverflow)
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, walleterrors.New("varint.Decode", walleterrors.InvalidLength,
		"truncated varint")
}

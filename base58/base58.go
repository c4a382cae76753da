// Package base58 implements Monero's block-oriented Base58 codec: input is
// partitioned into 8-byte blocks, each encoded to exactly 11 characters;
// a trailing partial block maps to a shorter, still-fixed width per the
// table in encodedBlockSize. This is NOT the whole-buffer big-integer
// Base58 scheme used by Bitcoin-derived codecs (btcsuite/base58,
// mr-tron/base58, present transitively elsewhere in this module's sibling
// examples) — those cannot represent Monero's per-block padding, so this
// package is hand-rolled rather than built on a general Base58 library.
package base58

import (
	"math/big"

	"github.com/rawblock/xmrwallet/keccak"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// alphabet is the Monero/Bitcoin Base58 alphabet: the ASCII digits and
// letters with 0, O, I, and l removed to avoid visual ambiguity.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
	checksumSize         = 4
)

// encodedBlockSize maps a raw block length (1..8) to its fixed encoded
// character width.
var encodedBlockSize = map[int]int{
	1: 2, 2: 3, 3: 5, 4: 6, 5: 7, 6: 9, 7: 10, 8: 11,
}

// decodedBlockSize is the inverse of encodedBlockSize, built once at
// startup for O(1) lookup during decode.
var decodedBlockSize map[int]int

var reverseAlphabet map[byte]int64

func init() {
	reverseAlphabet = make(map[byte]int64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		reverseAlphabet[alphabet[i]] = int64(i)
	}

	decodedBlockSize = make(map[int]int, len(encodedBlockSize))
	for raw, enc := range encodedBlockSize {
		decodedBlockSize[enc] = raw
	}
}

var big58 = big.NewInt(58)

// Encode Base58-encodes payload with a trailing 4-byte Keccak-256 checksum
// of payload appended before encoding, matching Monero's address and
// wallet-key text encodings.
func Encode(payload []byte) string {
	checksum := keccak.Sum256(payload)
	full := make([]byte, 0, len(payload)+checksumSize)
	full = append(full, payload...)
	full = append(full, checksum[:checksumSize]...)
	return EncodeRaw(full)
}

// EncodeRaw Base58-encodes data with no checksum framing.
func EncodeRaw(data []byte) string {
	out := make([]byte, 0, (len(data)/fullBlockSize+1)*fullEncodedBlockSize)

	fullBlocks := len(data) / fullBlockSize
	remainder := len(data) % fullBlockSize

	for i := 0; i < fullBlocks; i++ {
		block := data[i*fullBlockSize : (i+1)*fullBlockSize]
		out = append(out, encodeBlock(block, fullEncodedBlockSize)...)
	}
	if remainder > 0 {
		block := data[fullBlocks*fullBlockSize:]
		out = append(out, encodeBlock(block, encodedBlockSize[remainder])...)
	}
	return string(out)
}

func encodeBlock(block []byte, size int) []byte {
	num := new(big.Int).SetBytes(block)
	digits := make([]byte, size)
	mod := new(big.Int)
	for i := size - 1; i >= 0; i-- {
		num.DivMod(num, big58, mod)
		digits[i] = alphabet[mod.Int64()]
	}
	return digits
}

// Decode reverses Encode, validating the alphabet, block lengths, and the
// trailing checksum. Returns InvalidChecksum on checksum mismatch and
// InvalidLength on any block whose character count doesn't correspond to a
// valid Monero block size.
func Decode(s string) ([]byte, error) {
	full, err := DecodeRaw(s)
	if err != nil {
		return nil, err
	}
	if len(full) < checksumSize {
		return nil, walleterrors.New("base58.Decode", walleterrors.InvalidChecksum)
	}

	payload := full[:len(full)-checksumSize]
	checksum := full[len(full)-checksumSize:]
	want := keccak.Sum256(payload)

	for i := 0; i < checksumSize; i++ {
		if checksum[i] != want[i] {
			return nil, walleterrors.New("base58.Decode", walleterrors.InvalidChecksum)
		}
	}
	return payload, nil
}

// DecodeRaw reverses EncodeRaw with no checksum handling.
func DecodeRaw(s string) ([]byte, error) {
	fullBlocks := len(s) / fullEncodedBlockSize
	remainder := len(s) % fullEncodedBlockSize
	if remainder != 0 {
		if _, ok := decodedBlockSize[remainder]; !ok {
			return nil, walleterrors.New("base58.DecodeRaw", walleterrors.InvalidLength)
		}
	}

	out := make([]byte, 0, fullBlocks*fullBlockSize+fullBlockSize)
	for i := 0; i < fullBlocks; i++ {
		block := s[i*fullEncodedBlockSize : (i+1)*fullEncodedBlockSize]
		raw, err := decodeBlock(block, fullBlockSize)
		if err != nil {
			return nil, err
		}
		out = append(out, raw...)
	}
	if remainder > 0 {
		block := s[fullBlocks*fullEncodedBlockSize:]
		raw, err := decodeBlock(block, decodedBlockSize[remainder])
		if err != nil {
			return nil, err
		}
		out = append(out, raw...)
	}
	return out, nil
}

func decodeBlock(block string, rawSize int) ([]byte, error) {
	num := new(big.Int)
	for i := 0; i < len(block); i++ {
		digit, ok := reverseAlphabet[block[i]]
		if !ok {
			return nil, walleterrors.New("base58.decodeBlock", walleterrors.InvalidPrefix,
				"character outside Base58 alphabet")
		}
		num.Mul(num, big58)
		num.Add(num, big.NewInt(digit))
	}

	maxVal := new(big.Int).Lsh(big.NewInt(1), uint(rawSize*8))
	if num.Cmp(maxVal) >= 0 {
		return nil, walleterrors.New("base58.decodeBlock", walleterrors.InvalidLength,
			"block value overflows its raw byte width")
	}

	raw := make([]byte, rawSize)
	b := num.Bytes()
	copy(raw[rawSize-len(b):], b)
	return raw, nil
}

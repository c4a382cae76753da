package mnemonic

import (
	"encoding/binary"
	"hash/crc32"
	"strings"

	"github.com/rawblock/xmrwallet/walleterrors"
)

// WordCount is the number of words in a valid mnemonic: 24 seed words plus
// one checksum word.
const WordCount = 25

// seedWordCount is the number of words derived directly from entropy,
// before the checksum word is appended.
const seedWordCount = 24

// chunkSize is the number of entropy bytes each group of three words
// encodes.
const chunkSize = 4

// wordIndex is the companion hash map for englishWords, built once at
// startup so word-to-index lookups during decode are O(1) rather than a
// linear scan over 1626 entries.
var wordIndex map[string]int

func init() {
	wordIndex = make(map[string]int, len(englishWords))
	for i, w := range englishWords {
		wordIndex[w] = i
	}
}

// n is the wordlist size, used as the modulus in the chunk <-> 3-word
// mapping.
var n = len(englishWords)

// EntropyToMnemonic encodes 32 bytes of seed entropy as 25 space-separated
// English words: eight 4-byte chunks each yielding three words, plus a
// CRC32-derived checksum word.
func EntropyToMnemonic(entropy []byte) (string, error) {
	if len(entropy) != 32 {
		return "", walleterrors.New("mnemonic.EntropyToMnemonic", walleterrors.InvalidLength)
	}

	words := make([]string, 0, WordCount)
	for i := 0; i < len(entropy); i += chunkSize {
		chunk := binary.LittleEndian.Uint32(entropy[i : i+chunkSize])
		w1, w2, w3 := chunkToWords(chunk)
		words = append(words, englishWords[w1], englishWords[w2], englishWords[w3])
	}

	checksumWord := checksumWordFor(words)
	words = append(words, checksumWord)

	return strings.Join(words, " "), nil
}

// chunkToWords maps a 4-byte little-endian chunk to three word indices,
// per the wallet core's documented algorithm:
//
//	w1 = c mod N
//	w2 = (c/N + w1) mod N
//	w3 = (c/N^2 + w2) mod N
func chunkToWords(c uint32) (w1, w2, w3 int) {
	nn := uint64(n)
	cc := uint64(c)

	w1 = int(cc % nn)
	w2 = int((cc/nn + uint64(w1)) % nn)
	w3 = int((cc/(nn*nn) + uint64(w2)) % nn)
	return
}

// checksumWordFor computes the checksum word for a 24-word seed list: CRC32
// of the concatenation of each word's first three characters, modulo the
// word count, selects which seed word is repeated as the checksum.
func checksumWordFor(seedWords []string) string {
	var prefixes strings.Builder
	for _, w := range seedWords {
		if len(w) >= 3 {
			prefixes.WriteString(w[:3])
		} else {
			prefixes.WriteString(w)
		}
	}
	sum := crc32.ChecksumIEEE([]byte(prefixes.String()))
	idx := int(sum) % len(seedWords)
	return seedWords[idx]
}

// MnemonicToEntropy decodes a 25-word mnemonic back to its 32-byte seed
// entropy, validating word count, wordlist membership, and the checksum
// word.
func MnemonicToEntropy(phrase string) ([]byte, error) {
	words := strings.Fields(phrase)
	if len(words) != WordCount {
		return nil, walleterrors.New("mnemonic.MnemonicToEntropy", walleterrors.InvalidMnemonic,
			"expected 25 words")
	}

	seedWords := words[:seedWordCount]
	checksumWord := words[seedWordCount]

	indices := make([]int, seedWordCount)
	for i, w := range seedWords {
		idx, ok := wordIndex[w]
		if !ok {
			return nil, walleterrors.New("mnemonic.MnemonicToEntropy", walleterrors.InvalidMnemonic,
				"word not in wordlist: "+w)
		}
		indices[i] = idx
	}

	if want := checksumWordFor(seedWords); want != checksumWord {
		return nil, walleterrors.New("mnemonic.MnemonicToEntropy", walleterrors.InvalidChecksum)
	}

	entropy := make([]byte, 32)
	for i := 0; i < seedWordCount; i += 3 {
		w1, w2, w3 := indices[i], indices[i+1], indices[i+2]
		chunk, err := wordsToChunk(w1, w2, w3)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(entropy[(i/3)*chunkSize:], chunk)
	}

	return entropy, nil
}

// wordsToChunk inverts chunkToWords. Given indices (w1, w2, w3) produced
// from some original chunk c, recovers c by solving each residue
// modulo N in turn.
func wordsToChunk(w1, w2, w3 int) (uint32, error) {
	nn := uint64(n)

	// w2 = (c/N + w1) mod N  =>  c/N mod N = (w2 - w1) mod N
	d1 := int64(w2) - int64(w1)
	d1 %= int64(nn)
	if d1 < 0 {
		d1 += int64(nn)
	}

	// w3 = (c/N^2 + w2) mod N  =>  c/N^2 mod N = (w3 - w2) mod N
	d2 := int64(w3) - int64(w2)
	d2 %= int64(nn)
	if d2 < 0 {
		d2 += int64(nn)
	}

	c := uint64(w1) + nn*(uint64(d1)+nn*uint64(d2))
	if c > uint64(^uint32(0)) {
		return 0, walleterrors.New("mnemonic.wordsToChunk", walleterrors.InvalidMnemonic,
			"chunk recovery overflowed 32 bits")
	}
	return uint32(c), nil
}

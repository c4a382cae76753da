package mnemonic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripAllByteEntropy(t *testing.T) {
	entropy := make([]byte, 32)
	for i := range entropy {
		entropy[i] = 0x42
	}

	phrase, err := EntropyToMnemonic(entropy)
	require.NoError(t, err)

	words := strings.Fields(phrase)
	require.Len(t, words, WordCount)
	for _, w := range words {
		_, ok := wordIndex[w]
		require.True(t, ok, "word %q must be in the wordlist", w)
	}

	back, err := MnemonicToEntropy(phrase)
	require.NoError(t, err)
	require.Equal(t, entropy, back)
}

func TestRoundTripVariedEntropy(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		entropy := make([]byte, 32)
		for i := range entropy {
			entropy[i] = byte((trial*37 + i*91) % 256)
		}
		phrase, err := EntropyToMnemonic(entropy)
		require.NoError(t, err)
		back, err := MnemonicToEntropy(phrase)
		require.NoError(t, err)
		require.Equal(t, entropy, back)
	}
}

func TestEntropyToMnemonicRejectsWrongLength(t *testing.T) {
	_, err := EntropyToMnemonic(make([]byte, 16))
	require.Error(t, err)
}

func TestMnemonicToEntropyRejectsWrongWordCount(t *testing.T) {
	_, err := MnemonicToEntropy("only a few words")
	require.Error(t, err)
}

func TestMnemonicToEntropyRejectsUnknownWord(t *testing.T) {
	entropy := make([]byte, 32)
	phrase, err := EntropyToMnemonic(entropy)
	require.NoError(t, err)

	words := strings.Fields(phrase)
	words[0] = "notarealword"
	_, err = MnemonicToEntropy(strings.Join(words, " "))
	require.Error(t, err)
}

func TestMnemonicToEntropyRejectsBadChecksum(t *testing.T) {
	entropy := make([]byte, 32)
	entropy[0] = 0x01
	phrase, err := EntropyToMnemonic(entropy)
	require.NoError(t, err)

	words := strings.Fields(phrase)
	// Replace the checksum word with a different, valid wordlist entry.
	for _, w := range englishWords {
		if w != words[24] {
			words[24] = w
			break
		}
	}
	_, err = MnemonicToEntropy(strings.Join(words, " "))
	require.Error(t, err)
}

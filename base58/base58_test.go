package base58

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x01, 0x02, 0x03},
		make([]byte, 32),
		[]byte("0123456789abcdefghijklmnopqrstuvwxyz0123456789AB"),
	}
	for _, c := range cases {
		enc := Encode(c)
		dec, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, c, dec)
	}
}

func TestDecodeRejectsTamperedChecksum(t *testing.T) {
	enc := Encode([]byte("hello world"))
	tampered := []byte(enc)
	// Flip the last character to something else in the alphabet.
	if tampered[len(tampered)-1] == '1' {
		tampered[len(tampered)-1] = '2'
	} else {
		tampered[len(tampered)-1] = '1'
	}
	_, err := Decode(string(tampered))
	require.Error(t, err)
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	_, err := Decode("0OIl")
	require.Error(t, err)
}

func TestDecodeRejectsInvalidLength(t *testing.T) {
	// 4 characters is not a valid partial-block width (valid set is
	// {2,3,5,6,7,9,10,11}).
	_, err := Decode("1111")
	require.Error(t, err)
}

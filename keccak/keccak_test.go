package keccak

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum256Vectors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "abc",
			in:   []byte("abc"),
			want: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
		{
			name: "empty",
			in:   []byte{},
			want: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum256(tt.in)
			require.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}

func TestSumVariadicMatchesConcat(t *testing.T) {
	a := []byte("hello ")
	b := []byte("world")

	got := Sum256(a, b)
	want := Sum256(append(append([]byte{}, a...), b...))
	require.Equal(t, want, got)
}

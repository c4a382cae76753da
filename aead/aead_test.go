package aead

import (
	"testing"

	"github.com/rawblock/xmrwallet/walleterrors"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	nonce, err := NewNonce()
	require.NoError(t, err)

	key := DeriveKey([]byte("correct horse battery staple"), salt)
	plaintext := []byte("the quick brown fox")

	ct, err := Seal(key, nonce, plaintext, []byte("aad"))
	require.NoError(t, err)

	pt, err := Open(key, nonce, ct, []byte("aad"))
	require.NoError(t, err)
	require.Equal(t, plaintext, pt)
}

func TestOpenWithWrongPasswordFails(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	nonce, err := NewNonce()
	require.NoError(t, err)

	key := DeriveKey([]byte("right"), salt)
	wrongKey := DeriveKey([]byte("wrong"), salt)

	ct, err := Seal(key, nonce, []byte("secret"), nil)
	require.NoError(t, err)

	_, err = Open(wrongKey, nonce, ct, nil)
	require.Error(t, err)
	require.True(t, walleterrors.Is(err, walleterrors.AeadAuthFailure))
}

// Package aead provides the password-based encryption primitive the wallet
// file format is built on: Argon2id for password -> key derivation, and
// ChaCha20-Poly1305 as the authenticated cipher, both pulled from
// golang.org/x/crypto — already required elsewhere in this module for its
// own transport-level cryptography.
package aead

import (
	"crypto/rand"

	"github.com/rawblock/xmrwallet/walleterrors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the derived key length in bytes, matching
	// chacha20poly1305's key size.
	KeySize = chacha20poly1305.KeySize

	// SaltSize is the recommended Argon2id salt length.
	SaltSize = 16

	// NonceSize is the ChaCha20-Poly1305 nonce length.
	NonceSize = chacha20poly1305.NonceSize

	// Argon2 tuning parameters. These match the wallet-file format's
	// documented memory/iteration/parallelism budget.
	argon2Memory      = 64 * 1024 // KiB, i.e. 64 MiB
	argon2Iterations  = 3
	argon2Parallelism = 4
)

// DeriveKey runs Argon2id over password and salt with the wallet file
// format's fixed parameters, returning a KeySize-byte key suitable for
// chacha20poly1305.New.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argon2Iterations, argon2Memory, argon2Parallelism, KeySize)
}

// NewSalt returns a fresh random salt suitable for DeriveKey.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, walleterrors.New("aead.NewSalt", walleterrors.Other, err)
	}
	return salt, nil
}

// NewNonce returns a fresh random nonce suitable for Seal/Open.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, walleterrors.New("aead.NewNonce", walleterrors.Other, err)
	}
	return nonce, nil
}

// Seal encrypts plaintext under key and nonce, authenticating
// additionalData, and returns ciphertext with the 16-byte Poly1305 tag
// appended.
func Seal(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, walleterrors.New("aead.Seal", walleterrors.Other, err)
	}
	return aead.Seal(nil, nonce, plaintext, additionalData), nil
}

// Open authenticates and decrypts ciphertext (with its trailing tag) under
// key and nonce. A wrong password or tampered ciphertext surfaces as
// AeadAuthFailure, never as a distinguishable "wrong key" vs "tampered
// data" error — the AEAD construction intentionally does not distinguish
// the two.
func Open(key, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, walleterrors.New("aead.Open", walleterrors.Other, err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, walleterrors.New("aead.Open", walleterrors.AeadAuthFailure, err)
	}
	return plaintext, nil
}

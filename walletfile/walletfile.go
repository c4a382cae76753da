// Package walletfile implements the encrypted wallet file format: a
// magic/version/salt/nonce/ciphertext/tag envelope on top of aead's
// Argon2id-derived ChaCha20-Poly1305 construction, protecting a plaintext
// document of the wallet's keys, accounts, saved outputs, transactions,
// address book, and sync height.
package walletfile

import (
	"encoding/json"
	"os"

	"github.com/rawblock/xmrwallet/aead"
	"github.com/rawblock/xmrwallet/walleterrors"
)

const (
	magic = "MONE"

	// FormatVersion is the single wallet file format version this tree
	// emits and accepts.
	FormatVersion byte = 1

	headerLen = len(magic) + 1 + aead.SaltSize + aead.NonceSize
)

// Save encrypts data under password and writes it to path, overwriting
// any existing file. A fresh salt and nonce are drawn for every call, so
// saving the same Data twice produces different bytes each time.
func Save(path string, password []byte, data Data) error {
	const op = "walletfile.Save"

	plaintext, err := json.Marshal(toDocument(data))
	if err != nil {
		return walleterrors.New(op, walleterrors.Other, err)
	}

	salt, err := aead.NewSalt()
	if err != nil {
		return err
	}
	nonce, err := aead.NewNonce()
	if err != nil {
		return err
	}
	key := aead.DeriveKey(password, salt)

	header := buildHeader(salt, nonce)
	ciphertext, err := aead.Seal(key, nonce, plaintext, header)
	if err != nil {
		return err
	}

	buf := append(header, ciphertext...)
	wfLog.Infof("saving wallet file %s: %d bytes plaintext, %d bytes on disk", path, len(plaintext), len(buf))

	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return walleterrors.New(op, walleterrors.Other, err)
	}
	return nil
}

// Load reads and decrypts the wallet file at path under password. A
// wrong password and a tampered/corrupted file are indistinguishable by
// design (see aead.Open) and both surface as InvalidPassword.
func Load(path string, password []byte) (Data, error) {
	const op = "walletfile.Load"

	buf, err := os.ReadFile(path)
	if err != nil {
		return Data{}, walleterrors.New(op, walleterrors.Other, err)
	}
	if len(buf) < headerLen {
		return Data{}, walleterrors.New(op, walleterrors.InvalidWalletFile, "file too short")
	}

	header := buf[:headerLen]
	ciphertext := buf[headerLen:]

	if string(header[:len(magic)]) != magic {
		return Data{}, walleterrors.New(op, walleterrors.InvalidWalletFile, "bad magic")
	}
	version := header[len(magic)]
	if version != FormatVersion {
		return Data{}, walleterrors.New(op, walleterrors.InvalidWalletFile, "unsupported wallet file version")
	}
	salt := header[len(magic)+1 : len(magic)+1+aead.SaltSize]
	nonce := header[len(magic)+1+aead.SaltSize:]

	key := aead.DeriveKey(password, salt)
	plaintext, err := aead.Open(key, nonce, ciphertext, header)
	if err != nil {
		if walleterrors.Is(err, walleterrors.AeadAuthFailure) {
			return Data{}, walleterrors.New(op, walleterrors.InvalidPassword,
				"wrong password or corrupted wallet file")
		}
		return Data{}, err
	}

	var doc document
	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return Data{}, walleterrors.New(op, walleterrors.InvalidWalletFile, err)
	}

	data, err := fromDocument(doc)
	if err != nil {
		return Data{}, err
	}

	wfLog.Infof("loaded wallet file %s: %d outputs, %d transactions, synced to height %d",
		path, len(data.Outputs), len(data.Transactions), data.SyncHeight)
	return data, nil
}

func buildHeader(salt, nonce []byte) []byte {
	header := make([]byte, 0, headerLen)
	header = append(header, magic...)
	header = append(header, FormatVersion)
	header = append(header, salt...)
	header = append(header, nonce...)
	return header
}

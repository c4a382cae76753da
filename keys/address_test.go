package keys

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawblock/xmrwallet/base58"
	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/walleterrors"
)

func TestAddressRoundTrip(t *testing.T) {
	kp, err := FromSeed(testSeed(0x55))
	require.NoError(t, err)

	for _, network := range []cfg.Network{cfg.Mainnet, cfg.Stagenet, cfg.Testnet} {
		addr := PrimaryAddress(network, kp)
		text, err := addr.Encode()
		require.NoError(t, err)

		decoded, err := DecodeAddress(text)
		require.NoError(t, err)
		require.Equal(t, network, decoded.Network)
		require.Equal(t, StandardAddress, decoded.Type)
		require.True(t, addr.SpendKey.Equal(decoded.SpendKey))
		require.True(t, addr.ViewKey.Equal(decoded.ViewKey))
	}
}

func TestSubaddressRoundTripAndDistinctness(t *testing.T) {
	kp, err := FromSeed(testSeed(0x66))
	require.NoError(t, err)

	primary := SubaddressFor(cfg.Mainnet, kp, SubaddressIndex{0, 0})
	require.Equal(t, StandardAddress, primary.Type)

	sub := SubaddressFor(cfg.Mainnet, kp, SubaddressIndex{0, 1})
	require.Equal(t, SubaddressAddress, sub.Type)

	text, err := sub.Encode()
	require.NoError(t, err)
	decoded, err := DecodeAddress(text)
	require.NoError(t, err)
	require.Equal(t, SubaddressAddress, decoded.Type)
	require.True(t, sub.SpendKey.Equal(decoded.SpendKey))

	require.False(t, sub.SpendKey.Equal(primary.SpendKey))
}

func TestIntegratedAddressRoundTrip(t *testing.T) {
	kp, err := FromSeed(testSeed(0x77))
	require.NoError(t, err)

	var paymentID [PaymentIDSize]byte
	copy(paymentID[:], []byte{1, 2, 3, 4, 5, 6, 7, 8})

	addr := IntegratedAddressFor(cfg.Mainnet, kp, paymentID)
	text, err := addr.Encode()
	require.NoError(t, err)

	decoded, err := DecodeAddress(text)
	require.NoError(t, err)
	require.Equal(t, IntegratedAddress, decoded.Type)
	require.Equal(t, paymentID, decoded.PaymentID)
}

func TestDecodeAddressRejectsUnknownPrefix(t *testing.T) {
	// A checksum-valid payload of the right length whose prefix byte (0x01)
	// belongs to no network/type pair.
	payload := make([]byte, 1+32+32)
	payload[0] = 0x01
	_, err := DecodeAddress(base58.Encode(payload))
	require.Error(t, err)
	require.True(t, walleterrors.Is(err, walleterrors.InvalidPrefix))
}

func TestDecodeAddressRejectsTamperedChecksum(t *testing.T) {
	kp, err := FromSeed(testSeed(0x88))
	require.NoError(t, err)
	addr := PrimaryAddress(cfg.Mainnet, kp)
	text, err := addr.Encode()
	require.NoError(t, err)

	tampered := []byte(text)
	tampered[len(tampered)-1] = tampered[len(tampered)-1] ^ 1
	if tampered[len(tampered)-1] == text[len(text)-1] {
		tampered[len(tampered)-1] = tampered[len(tampered)-2]
	}

	_, err = DecodeAddress(string(tampered))
	require.Error(t, err)
}

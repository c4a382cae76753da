package keys

import (
	"github.com/rawblock/xmrwallet/base58"
	"github.com/rawblock/xmrwallet/cfg"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// AddressType distinguishes the three text-address shapes a (network,
// prefix) pair can select between.
type AddressType uint8

const (
	// StandardAddress encodes a bare (spend, view) public-key pair.
	StandardAddress AddressType = iota

	// IntegratedAddress additionally embeds an 8-byte payment ID.
	IntegratedAddress

	// SubaddressAddress marks the embedded keys as a subaddress's
	// (D, C) pair rather than a primary (spend, view) pair — the wire
	// layout is identical to StandardAddress, only the prefix differs.
	SubaddressAddress
)

// PaymentIDSize is the length in bytes of the short payment ID embedded in
// an integrated address.
const PaymentIDSize = 8

// addressPrefix maps (network, type) to its single-byte Base58 prefix.
var addressPrefix = map[cfg.Network]map[AddressType]byte{
	cfg.Mainnet: {
		StandardAddress:   18,
		IntegratedAddress: 19,
		SubaddressAddress: 42,
	},
	cfg.Stagenet: {
		StandardAddress:   24,
		IntegratedAddress: 25,
		SubaddressAddress: 36,
	},
	cfg.Testnet: {
		StandardAddress:   53,
		IntegratedAddress: 54,
		SubaddressAddress: 63,
	},
}

// prefixLookup is the reverse index built at startup: byte prefix ->
// (network, type).
type prefixEntry struct {
	network cfg.Network
	kind    AddressType
}

var prefixLookup map[byte]prefixEntry

func init() {
	prefixLookup = make(map[byte]prefixEntry)
	for network, byType := range addressPrefix {
		for kind, prefix := range byType {
			prefixLookup[prefix] = prefixEntry{network: network, kind: kind}
		}
	}
}

// Address is a decoded Monero text address: a network and type selector
// plus the (spend, view) public-key pair it names, and an optional
// payment ID for integrated addresses.
type Address struct {
	Network   cfg.Network
	Type      AddressType
	SpendKey  curve.Point
	ViewKey   curve.Point
	PaymentID [PaymentIDSize]byte // only meaningful when Type == IntegratedAddress
}

// Encode renders a into its Base58Check text form.
func (a Address) Encode() (string, error) {
	prefix, ok := addressPrefix[a.Network][a.Type]
	if !ok {
		return "", walleterrors.New("keys.Address.Encode", walleterrors.InvalidPrefix,
			"unknown network/type combination")
	}

	payload := make([]byte, 0, 1+32+32+PaymentIDSize)
	payload = append(payload, prefix)
	payload = append(payload, a.SpendKey.Bytes()...)
	payload = append(payload, a.ViewKey.Bytes()...)
	if a.Type == IntegratedAddress {
		payload = append(payload, a.PaymentID[:]...)
	}

	return base58.Encode(payload), nil
}

// DecodeAddress parses a Base58Check address string, recovering its
// network, type, and embedded keys.
func DecodeAddress(s string) (Address, error) {
	payload, err := base58.Decode(s)
	if err != nil {
		return Address{}, err
	}
	if len(payload) < 1+32+32 {
		return Address{}, walleterrors.New("keys.DecodeAddress", walleterrors.InvalidLength)
	}

	entry, ok := prefixLookup[payload[0]]
	if !ok {
		return Address{}, walleterrors.New("keys.DecodeAddress", walleterrors.InvalidPrefix)
	}

	wantLen := 1 + 32 + 32
	if entry.kind == IntegratedAddress {
		wantLen += PaymentIDSize
	}
	if len(payload) != wantLen {
		return Address{}, walleterrors.New("keys.DecodeAddress", walleterrors.InvalidLength)
	}

	spendKey, err := curve.PointFromBytes(payload[1:33])
	if err != nil {
		return Address{}, err
	}
	viewKey, err := curve.PointFromBytes(payload[33:65])
	if err != nil {
		return Address{}, err
	}

	addr := Address{
		Network:  entry.network,
		Type:     entry.kind,
		SpendKey: spendKey,
		ViewKey:  viewKey,
	}
	if entry.kind == IntegratedAddress {
		copy(addr.PaymentID[:], payload[65:73])
	}
	return addr, nil
}

// PrimaryAddress builds the StandardAddress Address for a wallet's
// (0, 0) index.
func PrimaryAddress(network cfg.Network, kp KeyPair) Address {
	return Address{
		Network:  network,
		Type:     StandardAddress,
		SpendKey: kp.SpendPublic,
		ViewKey:  kp.ViewPublic,
	}
}

// SubaddressFor builds the SubaddressAddress Address for idx. The primary
// index (0, 0) yields PrimaryAddress itself: a StandardAddress carrying the
// wallet's own (spend, view) public keys.
func SubaddressFor(network cfg.Network, kp KeyPair, idx SubaddressIndex) Address {
	if idx.IsPrimary() {
		addr := PrimaryAddress(network, kp)
		return addr
	}
	spendPub, viewPub := kp.DeriveSubaddress(idx)
	return Address{
		Network:  network,
		Type:     SubaddressAddress,
		SpendKey: spendPub,
		ViewKey:  viewPub,
	}
}

// IntegratedAddressFor builds an IntegratedAddress embedding paymentID
// into the wallet's primary address.
func IntegratedAddressFor(network cfg.Network, kp KeyPair, paymentID [PaymentIDSize]byte) Address {
	return Address{
		Network:   network,
		Type:      IntegratedAddress,
		SpendKey:  kp.SpendPublic,
		ViewKey:   kp.ViewPublic,
		PaymentID: paymentID,
	}
}

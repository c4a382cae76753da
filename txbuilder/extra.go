package txbuilder

import (
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keccak"
	"github.com/rawblock/xmrwallet/varint"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// extra field tags, matching the real protocol's tx_extra field layout so
// a daemon reading the prefix recognizes them.
const (
	tagTxPubKey          = 0x01
	tagNonce             = 0x02
	tagAdditionalPubKeys = 0x04

	nonceKindPaymentID         = 0x00
	nonceKindEncryptedPaymentID = 0x01
)

// extraPayload is the decoded content of the extra field, enough for the
// offline-signing round trip to inspect without re-walking the TLV stream.
type extraPayload struct {
	TxPubKey          curve.Point
	AdditionalPubKeys []curve.Point
	EncryptedPaymentID *[8]byte
}

// buildExtra serializes extraPayload into the canonical tx_extra
// tag-length-value stream.
func buildExtra(p extraPayload) []byte {
	var extra []byte

	extra = append(extra, tagTxPubKey)
	extra = append(extra, p.TxPubKey.Bytes()...)

	if len(p.AdditionalPubKeys) > 0 {
		extra = append(extra, tagAdditionalPubKeys)
		extra = varint.Encode(extra, uint64(len(p.AdditionalPubKeys)))
		for _, pk := range p.AdditionalPubKeys {
			extra = append(extra, pk.Bytes()...)
		}
	}

	if p.EncryptedPaymentID != nil {
		extra = append(extra, tagNonce)
		extra = varint.Encode(extra, 1+8)
		extra = append(extra, nonceKindEncryptedPaymentID)
		extra = append(extra, p.EncryptedPaymentID[:]...)
	}

	return extra
}

// parseExtra reverses buildExtra. Within a nonce field it skips nonce
// kinds other than an encrypted payment ID; a top-level tag other than
// tx pubkey, additional pubkeys or nonce is rejected with InvalidLength.
func parseExtra(buf []byte) (extraPayload, error) {
	var out extraPayload
	off := 0

	for off < len(buf) {
		tag := buf[off]
		off++

		switch tag {
		case tagTxPubKey:
			if off+32 > len(buf) {
				return extraPayload{}, walleterrors.New("txbuilder.parseExtra", walleterrors.InvalidLength)
			}
			pk, err := curve.PointFromBytes(buf[off : off+32])
			if err != nil {
				return extraPayload{}, err
			}
			out.TxPubKey = pk
			off += 32

		case tagAdditionalPubKeys:
			n, consumed, err := varint.Decode(buf[off:])
			if err != nil {
				return extraPayload{}, err
			}
			off += consumed
			out.AdditionalPubKeys = make([]curve.Point, n)
			for i := range out.AdditionalPubKeys {
				if off+32 > len(buf) {
					return extraPayload{}, walleterrors.New("txbuilder.parseExtra", walleterrors.InvalidLength)
				}
				pk, err := curve.PointFromBytes(buf[off : off+32])
				if err != nil {
					return extraPayload{}, err
				}
				out.AdditionalPubKeys[i] = pk
				off += 32
			}

		case tagNonce:
			n, consumed, err := varint.Decode(buf[off:])
			if err != nil {
				return extraPayload{}, err
			}
			off += consumed
			if off+int(n) > len(buf) || n == 0 {
				return extraPayload{}, walleterrors.New("txbuilder.parseExtra", walleterrors.InvalidLength)
			}
			kind := buf[off]
			if kind == nonceKindEncryptedPaymentID && n == 9 {
				var id [8]byte
				copy(id[:], buf[off+1:off+9])
				out.EncryptedPaymentID = &id
			}
			off += int(n)

		default:
			// Unknown tag: this core never emits one, and without a
			// length prefix a bare unknown tag can't be skipped safely.
			return extraPayload{}, walleterrors.New("txbuilder.parseExtra", walleterrors.InvalidLength,
				"unrecognized extra tag")
		}
	}

	return out, nil
}

// encryptPaymentID masks an 8-byte payment ID under a keystream derived
// from the first destination's shared secret, the same ECDH-keystream
// idiom commitment.EcdhEncode uses for amounts.
func encryptPaymentID(paymentID [8]byte, sharedSecret curve.Point) [8]byte {
	keystream := keccak.Sum256([]byte("payment_id"), sharedSecret.Bytes())
	var out [8]byte
	for i := range out {
		out[i] = paymentID[i] ^ keystream[i]
	}
	return out
}

// decryptPaymentID reverses encryptPaymentID.
func decryptPaymentID(encrypted [8]byte, sharedSecret curve.Point) [8]byte {
	return encryptPaymentID(encrypted, sharedSecret)
}

package txbuilder

import (
	"encoding/hex"

	"github.com/rawblock/xmrwallet/bulletproof"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keccak"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Unsigned is the output of PrepareUnsigned: a transaction with every
// field except the CLSAG signatures and pseudo-outputs filled in.
type Unsigned struct {
	prep *prepared
}

// PrepareUnsigned runs the pre-signing half of Build: stealth outputs,
// masks, the range proof, key images, and the canonical prefix. p.Inputs
// must carry Ring/RealIndex/Amount/Mask and also OneTimeSecret, from which
// each input's key image in the prefix is computed; it cannot run on
// watch-only material alone.
func PrepareUnsigned(p Params) (*Unsigned, error) {
	prep, err := prepare(p)
	if err != nil {
		return nil, err
	}
	return &Unsigned{prep: prep}, nil
}

// Sign completes an Unsigned transaction: p must describe the same
// transaction PrepareUnsigned (or ImportUnsigned) was called with,
// including each Input's OneTimeSecret, which signs that input's CLSAG.
func (u *Unsigned) Sign(p Params) (*Built, error) {
	return finish(u.prep, p)
}

// OfflineRingMember is one ring entry as carried in an offline-signing
// document.
type OfflineRingMember struct {
	GlobalIndex   uint64 `json:"globalIndex"`
	PublicKeyHex  string `json:"publicKeyHex"`
	CommitmentHex string `json:"commitmentHex"`
}

// OfflineInput is one input's signing material as carried in an
// offline-signing document.
type OfflineInput struct {
	RingMembersHex []OfflineRingMember `json:"ringMembersHex"`
	RealIndex      int                 `json:"realIndex"`
	KeyImageHex    string              `json:"keyImageHex"`
}

// OfflineOutput is one output's mask and amount as carried in an
// offline-signing document, letting a cold signer independently recompute
// out_pk rather than trust a carried commitment.
type OfflineOutput struct {
	MaskHex string `json:"maskHex"`
	Amount  uint64 `json:"amount"`
}

// OfflineDocument is the JSON interchange format an online, watch-only
// wallet hands to an offline signer. Everything in it is either
// independently verifiable against txPrefixHex (ring members, key images)
// or independently recomputable from it (out_pk, via mask and amount).
// ecdhInfoHex is the one exception: it depends on the transaction secret
// r, which this document never carries, so it must be transmitted
// explicitly rather than rederived.
type OfflineDocument struct {
	Version       int             `json:"version"`
	TxPrefixHex   string          `json:"txPrefixHex"`
	Inputs        []OfflineInput  `json:"inputs"`
	Outputs       []OfflineOutput `json:"outputs"`
	EcdhInfoHex   []string        `json:"ecdhInfoHex"`
	Fee           uint64          `json:"fee"`
	ChangeAddress string          `json:"changeAddress"`
}

const offlineDocumentVersion = 1

// Export renders u as an OfflineDocument ready for JSON marshaling.
// changeAddress is carried only for the signer's own display/confirmation
// purposes; it plays no role in reconstructing the transaction.
func Export(u *Unsigned, p Params, changeAddress string) *OfflineDocument {
	doc := &OfflineDocument{
		Version:       offlineDocumentVersion,
		TxPrefixHex:   hex.EncodeToString(u.prep.prefixBytes),
		Fee:           u.prep.tx.Rct.Fee,
		ChangeAddress: changeAddress,
	}

	doc.Inputs = make([]OfflineInput, len(p.Inputs))
	for i, in := range p.Inputs {
		members := make([]OfflineRingMember, len(in.Ring))
		for k, m := range in.Ring {
			members[k] = OfflineRingMember{
				GlobalIndex:   m.GlobalIndex,
				PublicKeyHex:  hex.EncodeToString(m.PublicKey.Bytes()),
				CommitmentHex: hex.EncodeToString(m.Commitment.Bytes()),
			}
		}
		doc.Inputs[i] = OfflineInput{
			RingMembersHex: members,
			RealIndex:      in.RealIndex,
			KeyImageHex:    hex.EncodeToString(u.prep.keyImages[i].Bytes()),
		}
	}

	doc.Outputs = make([]OfflineOutput, len(u.prep.outputMasks))
	for j, mask := range u.prep.outputMasks {
		doc.Outputs[j] = OfflineOutput{
			MaskHex: hex.EncodeToString(mask.Bytes()),
			Amount:  u.prep.outputAmounts[j],
		}
	}

	doc.EcdhInfoHex = make([]string, len(u.prep.tx.Rct.EcdhInfo))
	for j, info := range u.prep.tx.Rct.EcdhInfo {
		doc.EcdhInfoHex[j] = hex.EncodeToString(info[:])
	}

	return doc
}

// ImportUnsigned reconstructs an Unsigned transaction for signing from an
// OfflineDocument. It never recomputes prepare's randomized fields (tx
// secret r, output masks, range proof) to compare against them, since
// those depend on a RandScalar source that is never reproducible —
// neither across two calls in a test nor, in production, when it is
// backed by crypto/rand. Instead it treats txPrefixHex as the document's
// anchor: it parses it directly and cross-checks every other field
// against what the parsed prefix actually contains, recomputing anything
// that's independently derivable (out_pk from mask and amount) rather
// than trusting a carried copy of it.
func ImportUnsigned(doc OfflineDocument, p Params) (*Unsigned, error) {
	const op = "txbuilder.ImportUnsigned"

	if doc.Version != offlineDocumentVersion {
		return nil, walleterrors.New(op, walleterrors.InvalidLength, "unsupported offline document version")
	}
	if len(doc.Inputs) != len(p.Inputs) || len(doc.Outputs) != len(p.Destinations) ||
		len(doc.EcdhInfoHex) != len(p.Destinations) {
		return nil, walleterrors.New(op, walleterrors.InvalidLength, "document shape does not match params")
	}
	if doc.Fee != p.Fee {
		return nil, walleterrors.New(op, walleterrors.BalanceMismatch,
			"document fee does not match the signer's trusted fee; refusing to sign")
	}

	prefixBytes, err := hex.DecodeString(doc.TxPrefixHex)
	if err != nil {
		return nil, walleterrors.New(op, walleterrors.InvalidLength, err)
	}
	tx, _, err := parsePrefix(prefixBytes)
	if err != nil {
		return nil, err
	}
	if len(tx.Vin) != len(p.Inputs) || len(tx.Vout) != len(p.Destinations) {
		return nil, walleterrors.New(op, walleterrors.InvalidLength, "parsed prefix does not match params shape")
	}

	keyImages := make([]curve.Point, len(doc.Inputs))
	for i, in := range doc.Inputs {
		raw, err := hex.DecodeString(in.KeyImageHex)
		if err != nil {
			return nil, walleterrors.New(op, walleterrors.InvalidLength, err)
		}
		keyImage, err := curve.PointFromBytes(raw)
		if err != nil {
			return nil, err
		}
		if !keyImage.Equal(tx.Vin[i].KeyImage) {
			return nil, walleterrors.New(op, walleterrors.BalanceMismatch,
				"document key image does not match the signed prefix; refusing to sign")
		}
		if len(in.RingMembersHex) != len(tx.Vin[i].KeyOffsets) {
			return nil, walleterrors.New(op, walleterrors.RingSizeInvalid)
		}
		for k, m := range in.RingMembersHex {
			if m.GlobalIndex != tx.Vin[i].KeyOffsets[k] {
				return nil, walleterrors.New(op, walleterrors.BalanceMismatch,
					"document ring member does not match the signed prefix; refusing to sign")
			}
		}
		keyImages[i] = keyImage
	}

	outputMasks := make([]curve.Scalar, len(doc.Outputs))
	amounts := make([]uint64, len(doc.Outputs))
	for j, out := range doc.Outputs {
		raw, err := hex.DecodeString(out.MaskHex)
		if err != nil {
			return nil, walleterrors.New(op, walleterrors.InvalidLength, err)
		}
		mask, err := curve.ScalarFromBytes(raw)
		if err != nil {
			return nil, err
		}
		outputMasks[j] = mask
		amounts[j] = out.Amount
	}

	// out_pk is fully recomputable from (mask, amount); no need to carry
	// or trust a copy of it. The range proof need not reproduce the
	// original proof bytes either — any valid proof over the same
	// commitments verifies the same way.
	proof, commitments, err := bulletproof.Prove(amounts, outputMasks, bulletproof.RandomScalarFunc(p.RandScalar))
	if err != nil {
		return nil, err
	}

	ecdhInfo := make([][8]byte, len(doc.EcdhInfoHex))
	for j, s := range doc.EcdhInfoHex {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, walleterrors.New(op, walleterrors.InvalidLength, err)
		}
		if len(raw) != 8 {
			return nil, walleterrors.New(op, walleterrors.InvalidLength, "ecdh_info must be 8 bytes")
		}
		copy(ecdhInfo[j][:], raw)
	}

	tx.Rct = ParsedRctSig{
		Type:              rctTypeBulletproofPlus,
		Fee:               p.Fee,
		EcdhInfo:          ecdhInfo,
		OutPk:             commitments,
		BulletproofProofs: []bulletproof.Proof{proof},
	}

	prefixHash := keccak.Sum256(prefixBytes)

	return &Unsigned{prep: &prepared{
		tx:            tx,
		prefixBytes:   prefixBytes,
		prefixHash:    prefixHash,
		outputMasks:   outputMasks,
		outputAmounts: amounts,
		keyImages:     keyImages,
	}}, nil
}

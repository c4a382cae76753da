package txbuilder

import (
	"encoding/binary"

	"github.com/rawblock/xmrwallet/bulletproof"
	"github.com/rawblock/xmrwallet/clsag"
	"github.com/rawblock/xmrwallet/commitment"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keccak"
	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// maxInputs and maxOutputs are the transaction's own hard shape limits
// (1 ≤ |vin| ≤ 128, 1 ≤ |vout| ≤ 16), independent of any policy cap a
// selector chooses to enforce earlier.
const (
	maxInputs  = 128
	maxOutputs = 16
)

// prepared holds everything Build computes before CLSAG signing: the
// prefix and rct-base fields, the output masks (needed to rebuild
// out_pk/ecdh_info identically), and each input's key image. Splitting
// this out from the final signing loop is what lets PrepareUnsigned
// (offline.go) do the pre-signing half of the pipeline on its own.
type prepared struct {
	tx            ParsedTx
	prefixBytes   []byte
	prefixHash    [32]byte
	outputMasks   []curve.Scalar
	outputAmounts []uint64
	keyImages     []curve.Point
}

func validate(p Params) error {
	const op = "txbuilder.Build"

	numIn := len(p.Inputs)
	numOut := len(p.Destinations)
	if numIn == 0 || numIn > maxInputs {
		return walleterrors.New(op, walleterrors.TooManyInputs)
	}
	if numOut == 0 || numOut > maxOutputs {
		return walleterrors.New(op, walleterrors.TooManyOutputs)
	}
	for _, in := range p.Inputs {
		if len(in.Ring) == 0 || in.RealIndex < 0 || in.RealIndex >= len(in.Ring) {
			return walleterrors.New(op, walleterrors.RingSizeInvalid)
		}
	}

	var totalIn, totalOut uint64
	for _, in := range p.Inputs {
		totalIn += in.Amount
	}
	for _, d := range p.Destinations {
		totalOut += d.Amount
	}
	if totalIn != totalOut+p.Fee {
		return walleterrors.New(op, walleterrors.BalanceMismatch)
	}
	return nil
}

// shuffleDestinations returns a copy of destinations in a uniformly
// random order, Fisher-Yates style, drawing its randomness from the same
// RandomScalarFunc every other randomized step of the build uses — a
// deterministic test source shuffles deterministically, crypto/rand
// shuffles unpredictably. A fixed positional convention (e.g. "the last
// destination is always change") would otherwise leak which output is
// change to anyone observing the transaction.
func shuffleDestinations(destinations []Destination, randScalar RandomScalarFunc) []Destination {
	shuffled := make([]Destination, len(destinations))
	copy(shuffled, destinations)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := randIndex(randScalar(), i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// randIndex reduces a scalar draw to a uniform index in [0, n), n > 0.
func randIndex(s curve.Scalar, n int) int {
	b := s.Bytes()
	v := binary.LittleEndian.Uint64(b[:8])
	return int(v % uint64(n))
}

// prepare derives stealth outputs, masks, the batched range proof, the
// key images, the canonical prefix, and the rct-base fields. Everything
// except the key images depends only on public keys and amounts the wallet
// already scanned; each key image is computed from its input's
// OneTimeSecret.
func prepare(p Params) (*prepared, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	numIn := len(p.Inputs)
	numOut := len(p.Destinations)

	txbLog.Debugf("preparing transaction: %d inputs, %d outputs, fee %d", numIn, numOut, p.Fee)

	// Destinations are shuffled before anything is derived from their
	// order, so a change destination (conventionally appended last by
	// the caller) doesn't land in a fixed, identifiable output position.
	destinations := shuffleDestinations(p.Destinations, p.RandScalar)

	// Output masks: random for all but the last, which is forced so the
	// outputs' commitments balance the inputs' on the G (blinding) axis;
	// on the H (amount) axis they differ by exactly the fee, by validate's
	// check above.
	masks := make([]curve.Scalar, numOut)
	for j := 0; j < numOut-1; j++ {
		masks[j] = p.RandScalar()
	}
	inputMasks := make([]curve.Scalar, numIn)
	for i, in := range p.Inputs {
		inputMasks[i] = in.Mask
	}
	masks[numOut-1] = commitment.BalanceLastMask(inputMasks, masks[:numOut-1])

	amounts := make([]uint64, numOut)
	for j, d := range destinations {
		amounts[j] = d.Amount
	}

	proof, commitments, err := bulletproof.Prove(amounts, masks, bulletproof.RandomScalarFunc(p.RandScalar))
	if err != nil {
		return nil, err
	}

	r := p.RandScalar()
	R := curve.ScalarMultBase(r)

	hasSubaddressDest := false
	for _, d := range destinations {
		if d.Address.Type == keys.SubaddressAddress {
			hasSubaddressDest = true
			break
		}
	}

	// additional_pubkeys aligns one entry per output whenever any
	// destination is a subaddress: r*D for that destination, r*G (same
	// as the global tx pubkey) as a filler for primary/integrated ones.
	// Real Monero's handling of mixed subaddress/primary batches is more
	// involved; this keeps index alignment simple at the cost of
	// publishing a harmless duplicate of R for non-subaddress outputs.
	var additionalPubKeys []curve.Point
	if hasSubaddressDest {
		additionalPubKeys = make([]curve.Point, numOut)
	}

	vout := make([]ParsedVout, numOut)
	ecdhInfo := make([][8]byte, numOut)
	var firstShared curve.Point

	for j, d := range destinations {
		shared := d.Address.ViewKey.ScalarMult(r)
		if j == 0 {
			firstShared = shared
		}
		oneTimePublic := keys.StealthOutputKey(shared, d.Address.SpendKey, uint64(j))
		vout[j] = ParsedVout{
			OneTimePublic: oneTimePublic,
			ViewTag:       keys.ViewTag(shared, uint64(j)),
		}
		ecdhInfo[j] = commitment.EcdhEncode(amounts[j], shared, uint64(j))

		if additionalPubKeys != nil {
			if d.Address.Type == keys.SubaddressAddress {
				additionalPubKeys[j] = d.Address.SpendKey.ScalarMult(r)
			} else {
				additionalPubKeys[j] = R
			}
		}
	}

	var encryptedPaymentID *[8]byte
	if p.PaymentID != nil {
		id := encryptPaymentID(*p.PaymentID, firstShared)
		encryptedPaymentID = &id
	}

	extra := buildExtra(extraPayload{
		TxPubKey:           R,
		AdditionalPubKeys:  additionalPubKeys,
		EncryptedPaymentID: encryptedPaymentID,
	})

	vin := make([]ParsedVin, numIn)
	keyImages := make([]curve.Point, numIn)
	for i, in := range p.Inputs {
		offsets := make([]uint64, len(in.Ring))
		for k, m := range in.Ring {
			offsets[k] = m.GlobalIndex
		}
		keyImages[i] = keys.KeyImage(in.OneTimeSecret, in.OneTimePublic)
		vin[i] = ParsedVin{KeyOffsets: offsets, KeyImage: keyImages[i]}
	}

	tx := ParsedTx{
		Version:    txVersion,
		UnlockTime: p.UnlockTime,
		Vin:        vin,
		Vout:       vout,
		Extra:      extra,
		Rct: ParsedRctSig{
			Type:              rctTypeBulletproofPlus,
			Fee:               p.Fee,
			EcdhInfo:          ecdhInfo,
			OutPk:             commitments,
			BulletproofProofs: []bulletproof.Proof{proof},
		},
	}

	prefixBytes := tx.SerializePrefix()
	prefixHash := keccak.Sum256(prefixBytes)

	return &prepared{
		tx:            tx,
		prefixBytes:   prefixBytes,
		prefixHash:    prefixHash,
		outputMasks:   masks,
		outputAmounts: amounts,
		keyImages:     keyImages,
	}, nil
}

// finish balances pseudo-output masks against prep's output masks, signs
// a CLSAG ring signature per input, and serializes the final blob. This
// is the half of the pipeline that requires each input's one-time secret
// x, so it's what a cold signer runs on its own after importing prep's
// public fields.
func finish(prep *prepared, p Params) (*Built, error) {
	const op = "txbuilder.Build"

	numIn := len(p.Inputs)
	tx := prep.tx

	// Pseudo-output masks: random for all but the last, which is forced
	// so Σ pseudoMask_i = Σ outputMask_j. BalanceLastMask is the same
	// balancing function used for output masks in prepare, with the
	// input/output roles swapped: here the "inputs" side of the sum is
	// the output masks, and the "others" side is the other pseudo-outs.
	pseudoMasks := make([]curve.Scalar, numIn)
	for i := 0; i < numIn-1; i++ {
		pseudoMasks[i] = p.RandScalar()
	}
	pseudoMasks[numIn-1] = commitment.BalanceLastMask(prep.outputMasks, pseudoMasks[:numIn-1])

	pseudoOuts := make([]curve.Point, numIn)
	clsags := make([]ParsedClsag, numIn)
	for i, in := range p.Inputs {
		pseudoOuts[i] = commitment.Commit(pseudoMasks[i], in.Amount)

		// The commitment-difference secret CLSAG needs: C_real -
		// pseudoOut = z*G, since this core's commitments use G as the
		// blinding generator (commitment.Commit(x, amount) = x*G +
		// amount*H). C_real = in.Mask*G + in.Amount*H and pseudoOut =
		// pseudoMasks[i]*G + in.Amount*H, so z is just the mask
		// difference.
		z := in.Mask.Sub(pseudoMasks[i])

		ringP := make([]curve.Point, len(in.Ring))
		ringC := make([]curve.Point, len(in.Ring))
		for k, m := range in.Ring {
			ringP[k] = m.PublicKey
			ringC[k] = m.Commitment
		}

		sig, keyImage, err := clsag.Sign(prep.prefixHash[:], ringP, ringC, pseudoOuts[i], in.RealIndex,
			in.OneTimeSecret, z, clsag.RandomScalarFunc(p.RandScalar))
		if err != nil {
			return nil, err
		}
		if !keyImage.Equal(prep.keyImages[i]) {
			return nil, walleterrors.New(op, walleterrors.Other, "key image mismatch between prefix and signature")
		}
		clsags[i] = clsagSignatureToParsed(sig)
	}

	tx.Rct.Clsags = clsags
	tx.Rct.PseudoOuts = pseudoOuts

	rctBase := tx.SerializeRctBase()
	rctPrunable := tx.SerializeRctPrunable()

	bh := keccak.Sum256(rctBase)
	puh := keccak.Sum256(rctPrunable)
	txHash := keccak.Sum256(prep.prefixHash[:], bh[:], puh[:])

	blob := append(append([]byte{}, prep.prefixBytes...), rctBase...)
	blob = append(blob, rctPrunable...)

	txbLog.Infof("built transaction %x: %d inputs, %d outputs, fee %d", txHash, numIn, len(tx.Vout), p.Fee)

	return &Built{
		TxBlob:     blob,
		TxHash:     txHash,
		PrefixHash: prep.prefixHash,
		Fee:        p.Fee,
	}, nil
}

// Build assembles, balances, and signs a transaction from p: it derives
// stealth outputs and view tags for every destination, proves a batched
// Bulletproofs+ range proof over the output commitments, balances and
// signs a CLSAG ring signature per input, and serializes the result into
// a wire-ready blob.
func Build(p Params) (*Built, error) {
	prep, err := prepare(p)
	if err != nil {
		return nil, err
	}
	return finish(prep, p)
}

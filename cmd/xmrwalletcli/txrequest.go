package main

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/txbuilder"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// txRequest is the JSON shape a caller hands to "tx build": the fully
// resolved set of inputs (ring already selected, change output already
// decided) this binary turns into txbuilder.Params. It mirrors
// txbuilder.OfflineInput/OfflineOutput's hex-string convention rather
// than introducing a new one.
type txRequest struct {
	Inputs       []txRequestInput `json:"inputs"`
	Destinations []txDestination  `json:"destinations"`
	UnlockTime   uint64           `json:"unlockTime"`
	Fee          uint64           `json:"fee"`
	PaymentIDHex string           `json:"paymentIdHex,omitempty"`
}

type txRequestInput struct {
	Ring             []txRingMember `json:"ring"`
	RealIndex        int            `json:"realIndex"`
	Amount           uint64         `json:"amount"`
	MaskHex          string         `json:"maskHex"`
	OneTimePublicHex string         `json:"oneTimePublicHex"`
	OneTimeSecretHex string         `json:"oneTimeSecretHex"`
}

type txRingMember struct {
	GlobalIndex   uint64 `json:"globalIndex"`
	PublicKeyHex  string `json:"publicKeyHex"`
	CommitmentHex string `json:"commitmentHex"`
}

type txDestination struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

func loadTxRequest(path string) (txRequest, error) {
	const op = "loadTxRequest"

	buf, err := os.ReadFile(path)
	if err != nil {
		return txRequest{}, walleterrors.New(op, walleterrors.Other, err)
	}
	var req txRequest
	if err := json.Unmarshal(buf, &req); err != nil {
		return txRequest{}, walleterrors.New(op, walleterrors.Other, err)
	}
	return req, nil
}

// toParams converts req into txbuilder.Params, deriving a fresh
// RandomScalarFunc backed by crypto/rand.
func (req txRequest) toParams() (txbuilder.Params, error) {
	const op = "txRequest.toParams"

	inputs := make([]txbuilder.Input, len(req.Inputs))
	for i, in := range req.Inputs {
		oneTimePublic, err := decodePoint(in.OneTimePublicHex)
		if err != nil {
			return txbuilder.Params{}, err
		}
		var oneTimeSecret curve.Scalar
		if in.OneTimeSecretHex != "" {
			oneTimeSecret, err = decodeScalar(in.OneTimeSecretHex)
			if err != nil {
				return txbuilder.Params{}, err
			}
		}
		mask, err := decodeScalar(in.MaskHex)
		if err != nil {
			return txbuilder.Params{}, err
		}

		ring := make([]txbuilder.RingMember, len(in.Ring))
		for k, m := range in.Ring {
			pub, err := decodePoint(m.PublicKeyHex)
			if err != nil {
				return txbuilder.Params{}, err
			}
			com, err := decodePoint(m.CommitmentHex)
			if err != nil {
				return txbuilder.Params{}, err
			}
			ring[k] = txbuilder.RingMember{GlobalIndex: m.GlobalIndex, PublicKey: pub, Commitment: com}
		}

		inputs[i] = txbuilder.Input{
			OneTimePublic: oneTimePublic,
			OneTimeSecret: oneTimeSecret,
			Amount:        in.Amount,
			Mask:          mask,
			Ring:          ring,
			RealIndex:     in.RealIndex,
		}
	}

	destinations := make([]txbuilder.Destination, len(req.Destinations))
	for j, d := range req.Destinations {
		addr, err := keys.DecodeAddress(d.Address)
		if err != nil {
			return txbuilder.Params{}, err
		}
		destinations[j] = txbuilder.Destination{Address: addr, Amount: d.Amount}
	}

	var paymentID *[8]byte
	if req.PaymentIDHex != "" {
		raw, err := hex.DecodeString(req.PaymentIDHex)
		if err != nil || len(raw) != 8 {
			return txbuilder.Params{}, walleterrors.New(op, walleterrors.InvalidLength, "paymentIdHex must be 8 bytes")
		}
		var id [8]byte
		copy(id[:], raw)
		paymentID = &id
	}

	return txbuilder.Params{
		Inputs:       inputs,
		Destinations: destinations,
		UnlockTime:   req.UnlockTime,
		Fee:          req.Fee,
		RandScalar:   cryptoRandScalar,
		PaymentID:    paymentID,
	}, nil
}

func decodeScalar(s string) (curve.Scalar, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return curve.Scalar{}, walleterrors.New("decodeScalar", walleterrors.InvalidScalar, err)
	}
	return curve.ScalarFromBytes(raw)
}

func decodePoint(s string) (curve.Point, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return curve.Point{}, walleterrors.New("decodePoint", walleterrors.InvalidPoint, err)
	}
	return curve.PointFromBytes(raw)
}

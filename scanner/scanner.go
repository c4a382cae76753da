// Package scanner implements view-key scanning: given a wallet's view
// secret and spend public key, recognize which transaction outputs belong
// to the wallet (either its primary address or one of its subaddresses),
// and recover each owned output's amount and blinding mask.
package scanner

import (
	"github.com/rawblock/xmrwallet/commitment"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Scanner recognizes outputs belonging to a single wallet.
type Scanner struct {
	kp    keys.KeyPair
	table *SubaddressTable
}

// New creates a Scanner over kp, using table to resolve subaddress
// matches. Pass a table already Ensure'd to the lookahead bound the
// caller wants; New does not call Ensure itself.
func New(kp keys.KeyPair, table *SubaddressTable) *Scanner {
	return &Scanner{kp: kp, table: table}
}

// CandidateOutput is everything the scanner needs about one transaction
// output to decide ownership and, if owned, recover its amount.
type CandidateOutput struct {
	TxPubKey         curve.Point
	AdditionalPubKey *curve.Point // non-nil only for subaddress-destined outputs in a multi-destination tx
	OneTimePublic    curve.Point  // P
	Index            uint64       // n, the output's position in the transaction
	ViewTag          *byte        // nil when the transaction predates the view-tag variant
	EcdhAmount       [8]byte
	Commitment       curve.Point
}

// OwnedOutput is the result of a successful match: enough information for
// the storage layer to record a spendable output and, later, for the
// input selector and CLSAG signer to spend it.
type OwnedOutput struct {
	SubaddressIndex keys.SubaddressIndex
	OneTimePublic   curve.Point
	Derivation      curve.Scalar
	Amount          uint64
	Mask            curve.Scalar
}

// Scan decides whether out belongs to the wallet. It returns ok == false
// (with a nil error) for any output that is simply not addressed to this
// wallet; a non-nil error indicates the output claimed to match but its
// ECDH-encoded amount failed to reconcile against its commitment, which
// means either data corruption or a malicious/malformed output.
func (s *Scanner) Scan(out CandidateOutput) (owned OwnedOutput, ok bool, err error) {
	candidates := s.sharedSecretCandidates(out)

	for _, cand := range candidates {
		if out.ViewTag != nil {
			tag := keys.ViewTag(cand, out.Index)
			if tag != *out.ViewTag {
				continue
			}
		}

		derivation := keys.Derivation(cand, out.Index)

		mainCandidate := curve.ScalarMultBase(derivation).Add(s.kp.SpendPublic)
		if mainCandidate.Equal(out.OneTimePublic) {
			return s.finalizeMatch(out, cand, derivation, keys.SubaddressIndex{})
		}

		dPrime := out.OneTimePublic.Sub(curve.ScalarMultBase(derivation))
		if idx, found := s.table.Lookup(dPrime); found {
			return s.finalizeMatch(out, cand, derivation, idx)
		}
	}

	return OwnedOutput{}, false, nil
}

// sharedSecretCandidates returns the one or two shared-secret points worth
// trying: view_secret*R always, and view_secret*R_n when an additional
// public key is present for this output (the case a subaddress
// destination shares a transaction with other destinations and so cannot
// reuse the global tx pubkey).
func (s *Scanner) sharedSecretCandidates(out CandidateOutput) []curve.Point {
	candidates := make([]curve.Point, 0, 2)
	candidates = append(candidates, out.TxPubKey.ScalarMult(s.kp.ViewSecret))
	if out.AdditionalPubKey != nil {
		candidates = append(candidates, out.AdditionalPubKey.ScalarMult(s.kp.ViewSecret))
	}
	return candidates
}

func (s *Scanner) finalizeMatch(out CandidateOutput, sharedSecret curve.Point, derivation curve.Scalar, idx keys.SubaddressIndex) (OwnedOutput, bool, error) {
	amount := commitment.EcdhDecode(out.EcdhAmount, sharedSecret, out.Index)
	mask := commitment.EcdhMask(sharedSecret, out.Index)

	expected := commitment.Commit(mask, amount)
	if !expected.Equal(out.Commitment) {
		return OwnedOutput{}, false, walleterrors.New("scanner.Scan", walleterrors.BalanceMismatch,
			"decoded amount/mask does not reconcile with output commitment")
	}

	scnLog.Debugf("matched output index=%d subaddress=(%d,%d) amount=%d",
		out.Index, idx.Major, idx.Minor, amount)

	return OwnedOutput{
		SubaddressIndex: idx,
		OneTimePublic:   out.OneTimePublic,
		Derivation:      derivation,
		Amount:          amount,
		Mask:            mask,
	}, true, nil
}

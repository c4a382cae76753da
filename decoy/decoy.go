// Package decoy implements Monero's decoy-output selection: sampling
// ring_size-1 plausible-age decoys for a real spent output so that the
// ring the CLSAG signature is built over carries no statistical signal
// about which member is real.
package decoy

import (
	"context"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rawblock/xmrwallet/rpcprovider"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Params parameterizes decoy sampling. Zero values should be replaced
// with cfg.Default()'s Gamma/block-time/ring-size constants by the
// caller before use.
type Params struct {
	RingSize              int
	GammaShape            float64
	GammaScale            float64
	AverageBlockTimeSecs  float64
	ConfirmationsRequired uint64
}

// Selector samples decoys against a daemon's output distribution.
type Selector struct {
	params Params
	dist   rpcprovider.OutputDistributionProvider
	src    rand.Source
}

// New creates a Selector. src supplies the selector's randomness; pass a
// source seeded from crypto/rand in production, or a fixed seed in tests
// for reproducibility.
func New(params Params, dist rpcprovider.OutputDistributionProvider, src rand.Source) *Selector {
	return &Selector{params: params, dist: dist, src: src}
}

// SelectRing samples params.RingSize-1 decoy global indices distinct from
// realGlobalIndex and from each other, then returns the full ring
// (decoys plus the real index) sorted ascending — the position of the
// real index within the sorted ring carries no information, since every
// member was drawn from (or is) the same age distribution.
func (s *Selector) SelectRing(ctx context.Context, realGlobalIndex, chainTipHeight, startHeight uint64) ([]uint64, error) {
	if s.params.RingSize < 2 {
		return nil, walleterrors.New("decoy.SelectRing", walleterrors.RingSizeInvalid,
			"ring size must allow at least one decoy")
	}

	cumulative, err := s.dist.GetOutputDistribution(ctx, startHeight)
	if err != nil {
		return nil, walleterrors.New("decoy.SelectRing", walleterrors.DaemonRpcError, err)
	}
	if len(cumulative) == 0 {
		return nil, walleterrors.New("decoy.SelectRing", walleterrors.DaemonRpcError,
			"empty output distribution")
	}

	maxUsableIndex := s.maxUsableGlobalIndex(cumulative, chainTipHeight)

	gamma := distuv.Gamma{
		Alpha: s.params.GammaShape,
		Beta:  1 / s.params.GammaScale,
		Src:   s.src,
	}

	seen := map[uint64]bool{realGlobalIndex: true}
	ring := make([]uint64, 0, s.params.RingSize)
	ring = append(ring, realGlobalIndex)

	const maxAttemptsPerDecoy = 100
	for len(ring) < s.params.RingSize {
		idx, ok := s.sampleOne(gamma, cumulative, maxUsableIndex, seen, maxAttemptsPerDecoy)
		if !ok {
			return nil, walleterrors.New("decoy.SelectRing", walleterrors.RingSizeInvalid,
				"could not sample enough distinct decoys from the available output distribution")
		}
		seen[idx] = true
		ring = append(ring, idx)
	}

	sort.Slice(ring, func(i, j int) bool { return ring[i] < ring[j] })
	return ring, nil
}

// sampleOne draws one candidate global index, retrying on collision or on
// landing outside the usable range.
func (s *Selector) sampleOne(gamma distuv.Gamma, cumulative []uint64, maxUsableIndex uint64, seen map[uint64]bool, maxAttempts int) (uint64, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		ageSeconds := gamma.Rand()
		blocksAgo := uint64(ageSeconds / s.params.AverageBlockTimeSecs)

		targetBlock := len(cumulative) - 1 - int(blocksAgo)
		if targetBlock < 0 {
			targetBlock = 0
		}
		if targetBlock >= len(cumulative) {
			continue
		}

		lo := uint64(0)
		if targetBlock > 0 {
			lo = cumulative[targetBlock-1]
		}
		hi := cumulative[targetBlock]
		if hi <= lo {
			continue
		}

		candidate := lo + uint64(s.src.Uint64())%(hi-lo)
		if candidate > maxUsableIndex {
			continue
		}
		if seen[candidate] {
			continue
		}
		return candidate, true
	}
	return 0, false
}

// maxUsableGlobalIndex returns the highest global index eligible for
// selection: outputs created within ConfirmationsRequired of the current
// tip are excluded since their ring-membership would immediately signal
// a very recent output.
func (s *Selector) maxUsableGlobalIndex(cumulative []uint64, chainTipHeight uint64) uint64 {
	if chainTipHeight < s.params.ConfirmationsRequired {
		if len(cumulative) > 0 {
			return cumulative[0]
		}
		return 0
	}
	usableHeight := chainTipHeight - s.params.ConfirmationsRequired
	block := int(usableHeight)
	if block >= len(cumulative) {
		block = len(cumulative) - 1
	}
	if block < 0 || cumulative[block] == 0 {
		return 0
	}
	// cumulative[block] counts the outputs through that block, so the last
	// of them has global index one less.
	return cumulative[block] - 1
}

// Package selector implements UTXO selection over a wallet's spendable
// outputs: choosing which owned outputs fund a transaction, honoring lock
// and freeze constraints, and recomputing the fee as the input set grows.
package selector

import (
	"fmt"
	"sort"

	"github.com/rawblock/xmrwallet/keys"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Strategy selects the order candidates are considered in.
type Strategy uint8

const (
	// SmallestFirst consumes the smallest eligible outputs first,
	// consolidating dust at the cost of more inputs (and so more fee)
	// than strictly necessary.
	SmallestFirst Strategy = iota

	// LargestFirst consumes the largest eligible outputs first,
	// minimizing input count.
	LargestFirst

	// ClosestMatch greedily picks, at each step, whichever remaining
	// output's amount is closest to the amount still needed.
	ClosestMatch

	// SweepAll spends every eligible output into a single destination,
	// ignoring the target amount.
	SweepAll
)

// Output is one spendable owned output as the selector sees it: enough to
// evaluate eligibility and weigh it against a target, without needing the
// cryptographic material (one-time secret, key image) a CLSAG signer would
// additionally require.
type Output struct {
	GlobalIndex     uint64
	Amount          uint64
	BlockHeight     uint64
	UnlockTime      uint64
	SubaddressIndex keys.SubaddressIndex
	Frozen          bool
	Spent           bool
}

// Selection is the result of a successful input selection.
type Selection struct {
	Inputs []Output
	Total  uint64
	Fee    uint64
	Change uint64
	Send   uint64
}

// Options parameterizes one selection call.
type Options struct {
	Strategy              Strategy
	Target                uint64
	CurrentHeight         uint64
	ConfirmationsRequired uint64
	RingSize              int
	MaxInputs             int
	FeePerByte            uint64
	PriorityMultiplier    uint64

	// AccountFilter and SubaddressFilter, when non-nil, restrict
	// eligible outputs to the given major/minor index. A nil filter
	// matches every index.
	AccountFilter    *uint32
	SubaddressFilter *uint32
}

// Select runs input selection per opts.Strategy over candidates, returning
// a Selection or a walleterrors.InsufficientFunds/TooManyInputs error.
func Select(candidates []Output, opts Options) (Selection, error) {
	eligible := filterEligible(candidates, opts)

	if opts.Strategy == SweepAll {
		return sweepAll(eligible, opts)
	}

	amtNeeded := opts.Target
	for {
		total, chosen, err := accumulate(opts.Strategy, eligible, amtNeeded, opts.MaxInputs)
		if err != nil {
			return Selection{}, err
		}

		we := NewWeightEstimator(opts.RingSize)
		for range chosen {
			we.AddInput()
		}
		we.AddOutput() // destination
		we.AddOutput() // change
		fee := uint64(we.Weight()) * opts.FeePerByte * multiplierOrOne(opts.PriorityMultiplier)

		overshoot := total - opts.Target
		if overshoot < fee {
			amtNeeded = opts.Target + fee
			if amtNeeded > totalAvailable(eligible) {
				return Selection{}, insufficientFunds(totalAvailable(eligible), amtNeeded)
			}
			continue
		}

		change := overshoot - fee
		slcLog.Debugf("selected %d inputs total=%d fee=%d change=%d", len(chosen), total, fee, change)
		return Selection{
			Inputs: chosen,
			Total:  total,
			Fee:    fee,
			Change: change,
			Send:   opts.Target,
		}, nil
	}
}

func multiplierOrOne(m uint64) uint64 {
	if m == 0 {
		return 1
	}
	return m
}

func filterEligible(candidates []Output, opts Options) []Output {
	out := make([]Output, 0, len(candidates))
	for _, c := range candidates {
		if c.Spent || c.Frozen {
			continue
		}
		requiredConf := opts.ConfirmationsRequired
		if c.UnlockTime > requiredConf {
			requiredConf = c.UnlockTime
		}
		if c.BlockHeight+requiredConf > opts.CurrentHeight {
			continue
		}
		if opts.AccountFilter != nil && c.SubaddressIndex.Major != *opts.AccountFilter {
			continue
		}
		if opts.SubaddressFilter != nil && c.SubaddressIndex.Minor != *opts.SubaddressFilter {
			continue
		}
		out = append(out, c)
	}
	return out
}

func totalAvailable(candidates []Output) uint64 {
	var total uint64
	for _, c := range candidates {
		total += c.Amount
	}
	return total
}

// accumulate selects a subset of pool whose amounts sum to at least
// amtNeeded, in the order strategy prescribes, capped at maxInputs
// members.
func accumulate(strategy Strategy, pool []Output, amtNeeded uint64, maxInputs int) (uint64, []Output, error) {
	var ordered []Output

	switch strategy {
	case SmallestFirst:
		ordered = append(ordered, pool...)
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Amount < ordered[j].Amount })
		return walkPrefix(ordered, amtNeeded, maxInputs)

	case LargestFirst:
		ordered = append(ordered, pool...)
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Amount > ordered[j].Amount })
		return walkPrefix(ordered, amtNeeded, maxInputs)

	case ClosestMatch:
		return walkClosest(pool, amtNeeded, maxInputs)

	default:
		return walkPrefix(pool, amtNeeded, maxInputs)
	}
}

func walkPrefix(ordered []Output, amtNeeded uint64, maxInputs int) (uint64, []Output, error) {
	var total uint64
	chosen := make([]Output, 0, len(ordered))
	for _, o := range ordered {
		if len(chosen) >= maxInputs {
			break
		}
		chosen = append(chosen, o)
		total += o.Amount
		if total >= amtNeeded {
			return total, chosen, nil
		}
	}
	if total < amtNeeded {
		return 0, nil, insufficientFunds(totalAvailable(ordered), amtNeeded)
	}
	return total, chosen, nil
}

// walkClosest picks, at each step, whichever remaining candidate's amount
// is closest to the amount still needed, rather than committing to a
// single static ordering up front.
func walkClosest(pool []Output, amtNeeded uint64, maxInputs int) (uint64, []Output, error) {
	remainingPool := append([]Output(nil), pool...)
	var total uint64
	chosen := make([]Output, 0, len(pool))

	for total < amtNeeded && len(remainingPool) > 0 && len(chosen) < maxInputs {
		need := amtNeeded - total
		bestIdx := closestIndex(remainingPool, need)

		chosen = append(chosen, remainingPool[bestIdx])
		total += remainingPool[bestIdx].Amount
		remainingPool = append(remainingPool[:bestIdx], remainingPool[bestIdx+1:]...)
	}

	if total < amtNeeded {
		return 0, nil, insufficientFunds(totalAvailable(pool), amtNeeded)
	}
	return total, chosen, nil
}

func closestIndex(pool []Output, target uint64) int {
	best := 0
	bestDiff := absDiff(pool[0].Amount, target)
	for i := 1; i < len(pool); i++ {
		d := absDiff(pool[i].Amount, target)
		if d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	return best
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func sweepAll(eligible []Output, opts Options) (Selection, error) {
	if len(eligible) == 0 {
		return Selection{}, insufficientFunds(0, 1)
	}
	if len(eligible) > opts.MaxInputs {
		return Selection{}, walleterrors.New("selector.Select", walleterrors.TooManyInputs,
			"sweep_all requires more inputs than max_inputs permits")
	}

	total := totalAvailable(eligible)

	we := NewWeightEstimator(opts.RingSize)
	for range eligible {
		we.AddInput()
	}
	we.AddOutput() // single destination, no change

	fee := uint64(we.Weight()) * opts.FeePerByte * multiplierOrOne(opts.PriorityMultiplier)
	if total <= fee {
		return Selection{}, insufficientFunds(total, fee+1)
	}

	send := total - fee
	return Selection{
		Inputs: eligible,
		Total:  total,
		Fee:    fee,
		Change: 0,
		Send:   send,
	}, nil
}

func insufficientFunds(available, needed uint64) error {
	return walleterrors.New("selector.Select", walleterrors.InsufficientFunds,
		fmt.Sprintf("available %d, needed %d", available, needed))
}

package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func baseOpts() Options {
	return Options{
		Strategy:              SmallestFirst,
		CurrentHeight:         1000,
		ConfirmationsRequired: 10,
		RingSize:              16,
		MaxInputs:             128,
		FeePerByte:            10,
		PriorityMultiplier:    1,
	}
}

func unlockedOutput(amount uint64) Output {
	return Output{Amount: amount, BlockHeight: 900}
}

func TestSelectSmallestFirstAccumulatesAscending(t *testing.T) {
	candidates := []Output{unlockedOutput(1_000_000_000), unlockedOutput(500_000_000), unlockedOutput(2_000_000_000)}

	opts := baseOpts()
	opts.Target = 1_200_000_000

	sel, err := Select(candidates, opts)
	require.NoError(t, err)
	require.Equal(t, sel.Send, uint64(1_200_000_000))
	require.Equal(t, sel.Total, sel.Send+sel.Fee+sel.Change)
	// smallest-first should have needed the 500M and 1000M outputs before
	// reaching the threshold.
	require.GreaterOrEqual(t, len(sel.Inputs), 2)
}

func TestSelectLargestFirstPrefersFewerInputs(t *testing.T) {
	candidates := []Output{unlockedOutput(1_000_000_000), unlockedOutput(500_000_000), unlockedOutput(5_000_000_000)}

	opts := baseOpts()
	opts.Strategy = LargestFirst
	opts.Target = 1_200_000_000

	sel, err := Select(candidates, opts)
	require.NoError(t, err)
	require.Len(t, sel.Inputs, 1)
	require.Equal(t, uint64(5_000_000_000), sel.Inputs[0].Amount)
}

func TestSelectClosestMatchPrefersNearestAmount(t *testing.T) {
	candidates := []Output{unlockedOutput(100_000_000), unlockedOutput(1_100_000_000), unlockedOutput(9_000_000_000)}

	opts := baseOpts()
	opts.Strategy = ClosestMatch
	opts.Target = 1_000_000_000

	sel, err := Select(candidates, opts)
	require.NoError(t, err)
	require.Len(t, sel.Inputs, 1)
	require.Equal(t, uint64(1_100_000_000), sel.Inputs[0].Amount)
}

func TestSelectRejectsFrozenAndLockedOutputs(t *testing.T) {
	locked := unlockedOutput(1_000_000)
	locked.BlockHeight = 999 // only 1 confirmation, needs 10

	frozen := unlockedOutput(1_000_000)
	frozen.Frozen = true

	spendable := unlockedOutput(50)

	opts := baseOpts()
	opts.Target = 1000

	_, err := Select([]Output{locked, frozen, spendable}, opts)
	require.Error(t, err)
}

func TestSelectFailsWithInsufficientFunds(t *testing.T) {
	candidates := []Output{unlockedOutput(10), unlockedOutput(20)}

	opts := baseOpts()
	opts.Target = 1_000_000

	_, err := Select(candidates, opts)
	require.Error(t, err)
}

func TestSelectRespectsMaxInputs(t *testing.T) {
	candidates := []Output{unlockedOutput(1), unlockedOutput(1), unlockedOutput(1), unlockedOutput(1)}

	opts := baseOpts()
	opts.Target = 3
	opts.MaxInputs = 2

	_, err := Select(candidates, opts)
	require.Error(t, err)
}

func TestSweepAllSpendsEveryEligibleOutputIntoOneDestination(t *testing.T) {
	candidates := []Output{unlockedOutput(2_000_000_000), unlockedOutput(3_000_000_000), unlockedOutput(1_500_000_000)}

	opts := baseOpts()
	opts.Strategy = SweepAll

	sel, err := Select(candidates, opts)
	require.NoError(t, err)
	require.Len(t, sel.Inputs, 3)
	require.Equal(t, uint64(0), sel.Change)
	require.Greater(t, sel.Fee, uint64(0))
	require.Equal(t, sel.Total-sel.Fee, sel.Send)
}

func TestSweepAllFailsWhenNoEligibleOutputs(t *testing.T) {
	opts := baseOpts()
	opts.Strategy = SweepAll

	_, err := Select(nil, opts)
	require.Error(t, err)
}

func TestWeightEstimatorGrowsWithInputsAndOutputs(t *testing.T) {
	base := NewWeightEstimator(16)
	base.AddInput()
	base.AddOutput()
	base.AddOutput()
	baseWeight := base.Weight()

	more := NewWeightEstimator(16)
	more.AddInput()
	more.AddInput()
	more.AddOutput()
	more.AddOutput()

	require.Greater(t, more.Weight(), baseWeight)
}

func TestEstimateFeeScalesWithPriorityMultiplier(t *testing.T) {
	low := EstimateFee(2, 2, 16, 10, 1)
	high := EstimateFee(2, 2, 16, 10, 20)
	require.Equal(t, low*20, high)
}

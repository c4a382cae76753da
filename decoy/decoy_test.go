package decoy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/rawblock/xmrwallet/rpcprovider"
)

type fakeDistribution struct {
	cumulative []uint64
}

func (f fakeDistribution) GetOutputDistribution(ctx context.Context, startHeight uint64) ([]uint64, error) {
	return f.cumulative, nil
}

func buildCumulative(blocks int, perBlock uint64) []uint64 {
	out := make([]uint64, blocks)
	total := uint64(0)
	for i := range out {
		total += perBlock
		out[i] = total
	}
	return out
}

func defaultParams() Params {
	return Params{
		RingSize:              16,
		GammaShape:            19.28,
		GammaScale:            1.61,
		AverageBlockTimeSecs:  120,
		ConfirmationsRequired: 10,
	}
}

func TestSelectRingReturnsSortedDistinctRing(t *testing.T) {
	dist := fakeDistribution{cumulative: buildCumulative(100000, 20)}
	sel := New(defaultParams(), dist, rand.NewSource(1))

	const real = uint64(500000)
	ring, err := sel.SelectRing(context.Background(), real, 99999, 0)
	require.NoError(t, err)
	require.Len(t, ring, 16)

	seen := make(map[uint64]bool)
	foundReal := false
	for i, idx := range ring {
		require.False(t, seen[idx], "ring must not contain duplicates")
		seen[idx] = true
		if idx == real {
			foundReal = true
		}
		if i > 0 {
			require.LessOrEqual(t, ring[i-1], ring[i])
		}
	}
	require.True(t, foundReal)
}

func TestSelectRingRejectsTooSmallRingSize(t *testing.T) {
	dist := fakeDistribution{cumulative: buildCumulative(100, 20)}
	params := defaultParams()
	params.RingSize = 1
	sel := New(params, dist, rand.NewSource(1))

	_, err := sel.SelectRing(context.Background(), 10, 99, 0)
	require.Error(t, err)
}

func TestSelectRingFailsOnEmptyDistribution(t *testing.T) {
	dist := fakeDistribution{cumulative: nil}
	sel := New(defaultParams(), dist, rand.NewSource(1))

	_, err := sel.SelectRing(context.Background(), 10, 99, 0)
	require.Error(t, err)
}

func TestSelectRingIsDeterministicForFixedSeed(t *testing.T) {
	dist := fakeDistribution{cumulative: buildCumulative(100000, 20)}

	sel1 := New(defaultParams(), dist, rand.NewSource(42))
	ring1, err := sel1.SelectRing(context.Background(), 500000, 99999, 0)
	require.NoError(t, err)

	sel2 := New(defaultParams(), dist, rand.NewSource(42))
	ring2, err := sel2.SelectRing(context.Background(), 500000, 99999, 0)
	require.NoError(t, err)

	require.Equal(t, ring1, ring2)
}

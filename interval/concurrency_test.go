package interval_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/rangeval/intervals/interval"
)

// TestIndependentComputationsDoNotShareState runs many independent Float
// computations concurrently and checks each one is unaffected by the
// others. This module's values are designed for single-threaded,
// synchronous use (no internal locking), but nothing prevents a caller
// from running independent computations, each with its own values, on
// separate goroutines — this only breaks if some hidden global mutable
// state leaks across them.
func TestIndependentComputationsDoNotShareState(t *testing.T) {
	const n = 64
	g, _ := errgroup.WithContext(context.Background())
	results := make([]interval.Float[float64], n)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			x := interval.NewFloat(float64(i), float64(i)+1)
			results[i] = interval.Mul(x, x)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < n; i++ {
		want := interval.Mul(interval.NewFloat(float64(i), float64(i)+1), interval.NewFloat(float64(i), float64(i)+1))
		require.Equal(t, want.LowerUnchecked(), results[i].LowerUnchecked())
		require.Equal(t, want.UpperUnchecked(), results[i].UpperUnchecked())
	}
}

package rangealgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/rangealgo"
)

func TestLowerBoundOrdinaryValue(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	require.Equal(t, 2, rangealgo.LowerBound(xs, 3.0))
	require.Equal(t, 0, rangealgo.LowerBound(xs, 0.5))
	require.Equal(t, 4, rangealgo.LowerBound(xs, 9.0))
}

func TestLowerBoundUncertainNarrowsWithQueryWidth(t *testing.T) {
	xs := []float64{1, 2, 4, 8}

	_, certain := rangealgo.LowerBoundUncertain(xs, interval.Singleton(3.0))
	require.Equal(t, 2, certain.LowerUnchecked())
	require.Equal(t, 2, certain.UpperUnchecked())

	_, uncertain := rangealgo.LowerBoundUncertain(xs, interval.NewFloat(1.5, 5.0))
	require.True(t, uncertain.LowerUnchecked() <= uncertain.UpperUnchecked())
	require.True(t, uncertain.UpperUnchecked() >= certain.UpperUnchecked())
}

func TestPartitioningConstraintNarrowsIndexInterval(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	constraintInfo, pos := rangealgo.LowerBoundUncertain(xs, interval.NewFloat(1.5, 5.0))
	wide := interval.NewInteger(0, len(xs))
	narrowed := constraintInfo.Constrain(wide)
	require.Equal(t, pos.LowerUnchecked(), narrowed.LowerUnchecked())
	require.Equal(t, pos.UpperUnchecked(), narrowed.UpperUnchecked())
}

func TestAtUncertainGathersCandidateValues(t *testing.T) {
	ys := []bool{false, true, false, true}
	s := rangealgo.AtUncertain(ys, interval.NewInteger(1, 2))
	require.True(t, s.Contains(true))
	require.True(t, s.Contains(false))
}

func TestEnumerateInterval(t *testing.T) {
	values := rangealgo.EnumerateInterval(interval.NewInteger(2, 5))
	require.Equal(t, []int{2, 3, 4, 5}, values)
}

package branch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangeval/intervals/branch"
	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
)

func TestFloatTakesOnlyTrueBranch(t *testing.T) {
	result := branch.FloatValue(logic.FromBool(true),
		func() float64 { return 1.0 },
		func() float64 { return 2.0 },
	)
	require.Equal(t, 1.0, result.LowerUnchecked())
	require.Equal(t, 1.0, result.UpperUnchecked())
}

func TestFloatMergesContingentBranches(t *testing.T) {
	result := branch.FloatValue(logic.Contingent,
		func() float64 { return 1.0 },
		func() float64 { return 2.0 },
	)
	require.Equal(t, 1.0, result.LowerUnchecked())
	require.Equal(t, 2.0, result.UpperUnchecked())
}

func TestFloatMergesIntervalBranches(t *testing.T) {
	result := branch.Float(logic.Contingent,
		func() interval.Float[float64] { return interval.NewFloat(0.0, 1.0) },
		func() interval.Float[float64] { return interval.NewFloat(5.0, 9.0) },
	)
	require.Equal(t, 0.0, result.LowerUnchecked())
	require.Equal(t, 9.0, result.UpperUnchecked())
}

func TestBoolValueMergesDisagreeingBranches(t *testing.T) {
	result := branch.BoolValue(logic.Contingent,
		func() bool { return true },
		func() bool { return false },
	)
	require.Equal(t, logic.Both, result.State())
}

func TestIntegerTakesOnlyElseBranch(t *testing.T) {
	result := branch.Integer(logic.FromBool(false),
		func() interval.Integer[int] { return interval.NewInteger(0, 1) },
		func() interval.Integer[int] { return interval.NewInteger(7, 9) },
	)
	require.Equal(t, 7, result.LowerUnchecked())
	require.Equal(t, 9, result.UpperUnchecked())
}

func TestAssignPartialFloatAccumulatesAcrossCalls(t *testing.T) {
	result := interval.Empty[float64]()
	branch.AssignPartialFloatValue(&result, 2.0)
	branch.AssignPartialFloatValue(&result, 5.0)
	require.Equal(t, 2.0, result.LowerUnchecked())
	require.Equal(t, 5.0, result.UpperUnchecked())
}

func TestAssignFloatValueRejectsNonEmptyDestination(t *testing.T) {
	result := interval.Empty[float64]()
	branch.AssignFloatValue(&result, 2.0)
	require.Equal(t, 2.0, result.LowerUnchecked())
	require.Equal(t, 2.0, result.UpperUnchecked())

	require.Panics(t, func() {
		branch.AssignFloatValue(&result, 5.0)
	})
}

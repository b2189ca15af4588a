package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangeval/intervals/constraint"
	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
)

func TestIConstrainLessShrinksByOneUnit(t *testing.T) {
	x := interval.NewInteger(0, 10)
	c := constraint.ILTValue(x, 5)

	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 4, narrowed.Value().UpperUnchecked())
}

func TestIConstrainNotEqualShrinksMatchingEndpoint(t *testing.T) {
	x := interval.NewInteger(0, 10)
	c := constraint.INEQValue(x, 0)

	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 1, narrowed.Value().LowerUnchecked())
	require.Equal(t, 10, narrowed.Value().UpperUnchecked())
}

func TestIConstrainNotEqualIsNoOpAwayFromEndpoints(t *testing.T) {
	x := interval.NewInteger(0, 10)
	c := constraint.INEQValue(x, 5)

	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 10, narrowed.Value().UpperUnchecked())
}

func TestIConstrainEqualIntersectsBounds(t *testing.T) {
	x := interval.NewInteger(0, 10)
	y := interval.NewInteger(3, 5)
	c := constraint.IEQ(x, y)

	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 3, narrowed.Value().LowerUnchecked())
	require.Equal(t, 5, narrowed.Value().UpperUnchecked())
}

func TestIConstrainConjunctionIntersectsBothSides(t *testing.T) {
	x := interval.NewInteger(0, 10)
	c := constraint.IConjunction[int](constraint.ILEValue(x, 8), constraint.IValueLE(2, x))

	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 2, narrowed.Value().LowerUnchecked())
	require.Equal(t, 8, narrowed.Value().UpperUnchecked())
}

func TestIConstrainDisjunctionUnionsBothBranches(t *testing.T) {
	x := interval.NewInteger(-10, 10)
	c := constraint.IDisjunction[int](constraint.ILEValue(x, -5), constraint.IValueLE(5, x))

	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.Equal(t, -10, narrowed.Value().LowerUnchecked())
	require.Equal(t, 10, narrowed.Value().UpperUnchecked())
}

func TestINegateFlipsRelationalOperator(t *testing.T) {
	x := interval.NewInteger(0, 10)
	y := interval.NewInteger(0, 10)
	c := constraint.ILE(x, y)
	notC := constraint.INegate[int](c)
	require.Equal(t, logic.Not(c.Value()).State(), notC.Value().State())
	require.IsType(t, constraint.ILess[int]{}, notC)
}

func TestIConstrainedMatchesIdentity(t *testing.T) {
	x := interval.NewInteger(0, 10)
	c := constraint.ILEValue(x, 4)
	narrowed, err := constraint.IConstrain(x, c)
	require.NoError(t, err)
	require.True(t, narrowed.MatchesIdentity(x))

	y := interval.NewInteger(0, 10)
	require.False(t, narrowed.MatchesIdentity(y))
}

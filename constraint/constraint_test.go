package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangeval/intervals/constraint"
	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
)

func TestConstrainLessEqualNarrowsUpperBound(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	c := constraint.LEValue(x, 4.0)

	narrowed, err := constraint.Constrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 0.0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 4.0, narrowed.Value().UpperUnchecked())
}

func TestConstrainLessEqualNarrowsLowerBoundOnRhs(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	c := constraint.ValueLE(6.0, x)

	narrowed, err := constraint.Constrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 6.0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 10.0, narrowed.Value().UpperUnchecked())
}

func TestConstrainNotMentioningTargetIsError(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	y := interval.NewFloat(0.0, 10.0)
	c := constraint.LEValue(y, 4.0)

	_, err := constraint.Constrain(x, c)
	require.ErrorIs(t, err, constraint.ErrConstraintNotConsidered)
}

func TestConstrainEqualIntersectsBounds(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	y := interval.NewFloat(3.0, 5.0)
	c := constraint.EQ(x, y)

	narrowed, err := constraint.Constrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 3.0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 5.0, narrowed.Value().UpperUnchecked())
}

func TestConstrainConjunctionIntersectsBothSides(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	c := constraint.Conjunction[float64](constraint.LEValue(x, 8.0), constraint.ValueLE(2.0, x))

	narrowed, err := constraint.Constrain(x, c)
	require.NoError(t, err)
	require.Equal(t, 2.0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 8.0, narrowed.Value().UpperUnchecked())
}

func TestConstrainDisjunctionUnionsBothBranches(t *testing.T) {
	x := interval.NewFloat(-10.0, 10.0)
	c := constraint.Disjunction[float64](constraint.LEValue(x, -5.0), constraint.ValueLE(5.0, x))

	narrowed, err := constraint.Constrain(x, c)
	require.NoError(t, err)
	require.Equal(t, -10.0, narrowed.Value().LowerUnchecked())
	require.Equal(t, 10.0, narrowed.Value().UpperUnchecked())
}

func TestNegateFlipsRelationalOperator(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	y := interval.NewFloat(0.0, 10.0)
	c := constraint.LE(x, y)
	notC := constraint.Negate[float64](c)
	require.Equal(t, logic.Not(c.Value()).State(), notC.Value().State())
	require.IsType(t, constraint.Less[float64]{}, notC)
}

func TestConstrainedMatchesIdentity(t *testing.T) {
	x := interval.NewFloat(0.0, 10.0)
	c := constraint.LEValue(x, 4.0)
	narrowed, err := constraint.Constrain(x, c)
	require.NoError(t, err)
	require.True(t, narrowed.MatchesIdentity(x))

	y := interval.NewFloat(0.0, 10.0)
	require.False(t, narrowed.MatchesIdentity(y))
}

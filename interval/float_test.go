package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/sign"
)

func bounds(x interval.Float[float64]) (float64, float64) {
	return x.LowerUnchecked(), x.UpperUnchecked()
}

func TestSquareEnclosesStraddlingZero(t *testing.T) {
	x := interval.NewFloat(-1.0, 2.0)
	sq := interval.Square(x)
	require.Equal(t, 0.0, sq.Lower())
	require.Equal(t, 4.0, sq.Upper())
}

func TestAddInfMinusInfIsNaNSentinel(t *testing.T) {
	a := interval.NewFloat(math.Inf(-1), 3.0)
	b := interval.NewFloat(5.0, math.Inf(1))
	sum := interval.Add(a, b)
	require.True(t, math.IsNaN(sum.LowerUnchecked()))
	require.True(t, math.IsNaN(sum.UpperUnchecked()))
}

func TestMulZeroTimesInfIsNaNSentinel(t *testing.T) {
	a := interval.NewFloat(0.0, 5.0)
	b := interval.NewFloat(2.0, math.Inf(1))
	product := interval.Mul(a, b)
	require.True(t, math.IsNaN(product.LowerUnchecked()))
}

func TestDivZeroOverZeroIsNaNSentinel(t *testing.T) {
	a := interval.NewFloat(-1.0, 1.0)
	b := interval.NewFloat(-2.0, 2.0)
	q := interval.Div(a, b)
	require.True(t, math.IsNaN(q.LowerUnchecked()))
}

func TestDivByZeroStraddleGivesFullLine(t *testing.T) {
	a := interval.NewFloat(1.0, 2.0)
	b := interval.NewFloat(-3.0, 4.0)
	q := interval.Div(a, b)
	require.Equal(t, math.Inf(-1), q.LowerUnchecked())
	require.Equal(t, math.Inf(1), q.UpperUnchecked())
}

func TestAbsThreeWaySplit(t *testing.T) {
	lo, hi := bounds(interval.Abs(interval.NewFloat(-2.0, 3.0)))
	require.Equal(t, 0.0, lo)
	require.Equal(t, 3.0, hi)

	lo, hi = bounds(interval.Abs(interval.NewFloat(-5.0, -2.0)))
	require.Equal(t, 2.0, lo)
	require.Equal(t, 5.0, hi)

	lo, hi = bounds(interval.Abs(interval.NewFloat(2.0, 5.0)))
	require.Equal(t, 2.0, lo)
	require.Equal(t, 5.0, hi)
}

func TestAtan2BranchCutIsNaNSentinel(t *testing.T) {
	y := interval.NewFloat(-3.0, 0.0)
	x := interval.NewFloat(-5.0, 2.0)
	result := interval.Atan2(y, x)
	require.True(t, logic.IsContingent(interval.IsNaN(result)))
}

func TestLtOverlapIsContingent(t *testing.T) {
	a := interval.NewFloat(1.0, 5.0)
	b := interval.NewFloat(3.0, 8.0)
	require.Equal(t, logic.Both, interval.Lt(a, b).State())
}

func TestPowNegativeBaseEvenExponent(t *testing.T) {
	x := interval.Singleton(-2.0)
	y := interval.Singleton(2.0)
	result := interval.Pow(x, y)
	require.InDelta(t, 4.0, result.Value(), 1e-9)
}

func TestSgnStraddlingZero(t *testing.T) {
	x := interval.NewFloat(-1.0, 1.0)
	s := interval.Sgn(x)
	require.True(t, s.Contains(sign.Positive))
	require.True(t, s.Contains(sign.Negative))
	require.True(t, s.Contains(sign.Zero))
}

func TestIdentityPreservedAcrossCopy(t *testing.T) {
	x := interval.NewFloat(1.0, 2.0)
	y := x
	require.Equal(t, x.Identity(), y.Identity())

	z := interval.Add(x, interval.Singleton(1.0))
	require.NotEqual(t, x.Identity(), z.Identity())
}

package interval_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rangeval/intervals/interval"
)

func genBoundedFloat() gopter.Gen {
	return gen.Float64Range(-1000, 1000)
}

// pairToInterval turns two arbitrary floats into a well-formed interval by
// sorting them, the same normalization gopter-driven property tests for
// bounded types commonly perform on raw generated pairs.
func pairToInterval(a, b float64) interval.Float[float64] {
	if a > b {
		a, b = b, a
	}
	return interval.NewFloat(a, b)
}

func TestAddEnclosesCorrectness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Add encloses every pointwise sum", prop.ForAll(
		func(a1, a2, b1, b2, x, y float64) bool {
			a := pairToInterval(a1, a2)
			b := pairToInterval(b1, b2)
			if !a.Contains(x) || !b.Contains(y) {
				return true
			}
			sum := interval.Add(a, b)
			if math.IsNaN(sum.LowerUnchecked()) {
				return true // NaN sentinel encloses everything trivially
			}
			return sum.Contains(x + y)
		},
		genBoundedFloat(), genBoundedFloat(), genBoundedFloat(), genBoundedFloat(), genBoundedFloat(), genBoundedFloat(),
	))

	properties.Property("Mul encloses every pointwise product", prop.ForAll(
		func(a1, a2, b1, b2, x, y float64) bool {
			a := pairToInterval(a1, a2)
			b := pairToInterval(b1, b2)
			if !a.Contains(x) || !b.Contains(y) {
				return true
			}
			product := interval.Mul(a, b)
			if math.IsNaN(product.LowerUnchecked()) {
				return true
			}
			return product.Contains(x * y)
		},
		genBoundedFloat(), genBoundedFloat(), genBoundedFloat(), genBoundedFloat(), genBoundedFloat(), genBoundedFloat(),
	))

	properties.Property("assignment only ever widens the interval", prop.ForAll(
		func(a1, a2, v float64) bool {
			a := pairToInterval(a1, a2)
			before := a
			a.AssignValue(v)
			return a.LowerUnchecked() <= before.LowerUnchecked() && a.UpperUnchecked() >= before.UpperUnchecked()
		},
		genBoundedFloat(), genBoundedFloat(), genBoundedFloat(),
	))

	properties.TestingRun(t)
}

package constraint_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rangeval/intervals/constraint"
	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
)

func genOrderedPair() gopter.Gen {
	return gen.Float64Range(-1000, 1000)
}

func TestConstrainNarrowingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("constraining x <= bound never widens x", prop.ForAll(
		func(lo, hi, bound float64) bool {
			if lo > hi {
				lo, hi = hi, lo
			}
			x := interval.NewFloat(lo, hi)
			c := constraint.LEValue(x, bound)
			if !logic.Possibly(c.Value()) {
				return true // a constraint that cannot hold is a precondition violation
			}
			narrowed, err := constraint.Constrain(x, c)
			if err != nil {
				return true
			}
			return narrowed.Value().LowerUnchecked() >= x.LowerUnchecked() &&
				narrowed.Value().UpperUnchecked() <= x.UpperUnchecked()
		},
		genOrderedPair(), genOrderedPair(), genOrderedPair(),
	))

	properties.Property("constraining preserves every value still consistent with the bound", prop.ForAll(
		func(lo, hi, bound float64) bool {
			if lo > hi {
				lo, hi = hi, lo
			}
			x := interval.NewFloat(lo, hi)
			c := constraint.LEValue(x, bound)
			if !logic.Possibly(c.Value()) {
				return true // a constraint that cannot hold is a precondition violation
			}
			narrowed, err := constraint.Constrain(x, c)
			if err != nil {
				return true
			}
			if lo <= bound {
				return narrowed.Value().Contains(lo)
			}
			return true
		},
		genOrderedPair(), genOrderedPair(), genOrderedPair(),
	))

	properties.TestingRun(t)
}

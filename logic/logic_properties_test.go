package logic_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rangeval/intervals/logic"
)

func genState() gopter.Gen {
	return gen.OneConstOf(logic.Bottom, logic.False, logic.True, logic.Both)
}

func TestFourValuedLogicClosure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("And is commutative", prop.ForAll(
		func(a, b logic.State) bool {
			return logic.And(logic.FromState(a), logic.FromState(b)) ==
				logic.And(logic.FromState(b), logic.FromState(a))
		},
		genState(), genState(),
	))

	properties.Property("Or is commutative", prop.ForAll(
		func(a, b logic.State) bool {
			return logic.Or(logic.FromState(a), logic.FromState(b)) ==
				logic.Or(logic.FromState(b), logic.FromState(a))
		},
		genState(), genState(),
	))

	properties.Property("De Morgan: not(a and b) == not(a) or not(b)", prop.ForAll(
		func(a, b logic.State) bool {
			av, bv := logic.FromState(a), logic.FromState(b)
			lhs := logic.Not(logic.And(av, bv))
			rhs := logic.Or(logic.Not(av), logic.Not(bv))
			return lhs == rhs
		},
		genState(), genState(),
	))

	properties.Property("double negation is identity", prop.ForAll(
		func(a logic.State) bool {
			av := logic.FromState(a)
			return logic.Not(logic.Not(av)) == av
		},
		genState(),
	))

	properties.Property("Bottom is infectious under And", prop.ForAll(
		func(b logic.State) bool {
			return logic.And(logic.Zero, logic.FromState(b)).State() == logic.Bottom
		},
		genState(),
	))

	properties.TestingRun(t)
}

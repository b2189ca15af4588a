// Package branch implements the branch-merge operators assign,
// assign_partial, reset and if_else: the primitives that let code written
// against plain bool conditionals run unmodified against four-valued and
// interval-valued conditions, merging the outcomes of both branches
// whenever the condition is contingent.
package branch

import (
	"golang.org/x/exp/constraints"

	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/precond"
	"github.com/rangeval/intervals/set"
)

// BoolValue evaluates one of two branches chosen by a four-valued
// condition and merges their results as a bool's possible outcomes: if
// cond is contingent, both branches are taken and the merge is logical OR
// over "this outcome is possible", i.e. the result is Both whenever the
// branches disagree.
func BoolValue(cond logic.B, thenFn, elseFn func() bool) logic.B {
	precond.Expects(cond.Assigned(), "branch.BoolValue: condition is uninitialized")
	var result logic.B
	if logic.Possibly(cond) {
		result.Assign(thenFn())
	}
	if logic.PossiblyNot(cond) {
		result.Assign(elseFn())
	}
	return result
}

// Bool is the four-valued analogue of BoolValue for branches that already
// produce a four-valued outcome (e.g. a nested conditional).
func Bool(cond logic.B, thenFn, elseFn func() logic.B) logic.B {
	precond.Expects(cond.Assigned(), "branch.Bool: condition is uninitialized")
	var out logic.B
	taken := false
	if logic.Possibly(cond) {
		v := thenFn()
		if logic.Possibly(v) {
			out.Assign(true)
		}
		if logic.PossiblyNot(v) {
			out.Assign(false)
		}
		taken = true
	}
	if logic.PossiblyNot(cond) {
		v := elseFn()
		if logic.Possibly(v) {
			out.Assign(true)
		}
		if logic.PossiblyNot(v) {
			out.Assign(false)
		}
		taken = true
	}
	precond.ExpectsDebug(taken, "branch.Bool: condition excludes both outcomes")
	return out
}

// Float evaluates one of two branches chosen by cond and merges their
// interval results by enclosure: if cond is contingent, the result
// encloses both branches' outcomes.
func Float[T constraints.Float](cond logic.B, thenFn, elseFn func() interval.Float[T]) interval.Float[T] {
	precond.Expects(cond.Assigned(), "branch.Float: condition is uninitialized")
	result := interval.Empty[T]()
	if logic.Possibly(cond) {
		result.Assign(thenFn())
	}
	if logic.PossiblyNot(cond) {
		result.Assign(elseFn())
	}
	return result
}

// FloatValue is Float specialized to branches that each produce a single
// certain value rather than an interval.
func FloatValue[T constraints.Float](cond logic.B, thenFn, elseFn func() T) interval.Float[T] {
	result := interval.Empty[T]()
	if logic.Possibly(cond) {
		result.AssignValue(thenFn())
	}
	if logic.PossiblyNot(cond) {
		result.AssignValue(elseFn())
	}
	return result
}

// Integer is Float's discrete-kind counterpart.
func Integer[T constraints.Integer](cond logic.B, thenFn, elseFn func() interval.Integer[T]) interval.Integer[T] {
	precond.Expects(cond.Assigned(), "branch.Integer: condition is uninitialized")
	var result interval.Integer[T]
	if logic.Possibly(cond) {
		result.Assign(thenFn())
	}
	if logic.PossiblyNot(cond) {
		result.Assign(elseFn())
	}
	return result
}

// Set evaluates one of two branches chosen by cond and merges their set
// results by union, the set-valued counterpart of Float/Integer.
func Set[T comparable](cond logic.B, thenFn, elseFn func() set.S[T]) set.S[T] {
	precond.Expects(cond.Assigned(), "branch.Set: condition is uninitialized")
	var result set.S[T]
	if logic.Possibly(cond) {
		result.Assign(thenFn())
	}
	if logic.PossiblyNot(cond) {
		result.Assign(elseFn())
	}
	return result
}

// SetValue is Set specialized to branches that each produce a single
// certain value.
func SetValue[T comparable](cond logic.B, thenFn, elseFn func() T) set.S[T] {
	var result set.S[T]
	if logic.Possibly(cond) {
		result.AssignValue(thenFn())
	}
	if logic.PossiblyNot(cond) {
		result.AssignValue(elseFn())
	}
	return result
}

// AssignFloat is the strict assign(out, v) primitive: like AssignPartialFloat,
// but requires result to start empty. Use it where the algebra's contract is
// that an accumulator is written exactly once (e.g. the single taken branch
// of an if_else over a plain bool condition); AssignPartialFloat is for
// accumulators that may legitimately receive more than one contribution.
func AssignFloat[T constraints.Float](result *interval.Float[T], v interval.Float[T]) {
	precond.Expects(!result.Assigned(), "branch.AssignFloat: destination is not empty")
	result.Assign(v)
}

// AssignFloatValue is AssignFloat for a single certain value.
func AssignFloatValue[T constraints.Float](result *interval.Float[T], v T) {
	precond.Expects(!result.Assigned(), "branch.AssignFloatValue: destination is not empty")
	result.AssignValue(v)
}

// AssignSetValue is the strict assign(out, v) primitive for set accumulators.
func AssignSetValue[T comparable](result *set.S[T], v T) {
	precond.Expects(!result.Assigned(), "branch.AssignSetValue: destination is not empty")
	result.AssignValue(v)
}

// AssignPartialFloat merges a single possible outcome v into result,
// the free-function assign_partial(result, value) primitive specialized
// to Float accumulators (e.g. inside a loop enumerating candidate
// indices, as interpolation and lookup algorithms do).
func AssignPartialFloat[T constraints.Float](result *interval.Float[T], v interval.Float[T]) {
	result.Assign(v)
}

// AssignPartialFloatValue is AssignPartialFloat for a single certain value.
func AssignPartialFloatValue[T constraints.Float](result *interval.Float[T], v T) {
	result.AssignValue(v)
}

// AssignPartialSetValue merges a single possible outcome v into result.
func AssignPartialSetValue[T comparable](result *set.S[T], v T) {
	result.AssignValue(v)
}

// ResetFloat clears dst and then unions src into it (the free-function
// reset(dst, src) of the branch-merge algebra), as opposed to Assign,
// which unions src into whatever dst already held.
func ResetFloat[T constraints.Float](dst *interval.Float[T], src interval.Float[T]) {
	dst.ResetTo(src)
}

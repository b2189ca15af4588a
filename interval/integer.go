package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/precond"
)

// Integer is an interval scalar over a discrete kind T (signed/unsigned
// integers, or a random-access position such as a range index). Unlike
// Float, there is no IEEE-754 infinity to encode "empty" with, so Integer
// carries an explicit assigned flag.
type Integer[T constraints.Integer] struct {
	lower, upper T
	assignedFlag bool
	id           uint64
}

// EmptyInteger returns the empty interval.
func EmptyInteger[T constraints.Integer]() Integer[T] {
	return Integer[T]{id: nextID()}
}

// SingletonInteger returns the degenerate interval [value, value].
func SingletonInteger[T constraints.Integer](value T) Integer[T] {
	return Integer[T]{lower: value, upper: value, assignedFlag: true, id: nextID()}
}

// NewInteger returns the interval [lower, upper]. It panics if
// lower > upper.
func NewInteger[T constraints.Integer](lower, upper T) Integer[T] {
	precond.Expects(lower <= upper, "interval.NewInteger: lower=%v > upper=%v", lower, upper)
	return Integer[T]{lower: lower, upper: upper, assignedFlag: true, id: nextID()}
}

// Identity returns the stable, process-unique identity used by the
// constraint package for identity-based narrowing.
func (x Integer[T]) Identity() uint64 { return x.id }

// Assigned reports whether x currently encloses at least one value.
func (x Integer[T]) Assigned() bool { return x.assignedFlag }

// Assign unions rhs into x.
func (x *Integer[T]) Assign(rhs Integer[T]) {
	precond.ExpectsDebug(rhs.Assigned(), "interval.Assign: rhs is unassigned")
	if !x.assignedFlag {
		x.lower, x.upper = rhs.lower, rhs.upper
	} else {
		x.lower = imin(x.lower, rhs.lower)
		x.upper = imax(x.upper, rhs.upper)
	}
	x.assignedFlag = true
}

// AssignValue unions a single scalar value into x.
func (x *Integer[T]) AssignValue(value T) {
	if !x.assignedFlag {
		x.lower, x.upper = value, value
	} else {
		x.lower = imin(x.lower, value)
		x.upper = imax(x.upper, value)
	}
	x.assignedFlag = true
}

// Reset clears x back to empty.
func (x *Integer[T]) Reset() {
	x.assignedFlag = false
	x.lower, x.upper = 0, 0
}

// ResetTo replaces x's bounds with rhs's, preserving identity.
func (x *Integer[T]) ResetTo(rhs Integer[T]) {
	x.lower, x.upper, x.assignedFlag = rhs.lower, rhs.upper, rhs.assignedFlag
}

func (x Integer[T]) Lower() T {
	precond.ExpectsDebug(x.Assigned(), "interval.Lower: unassigned")
	return x.lower
}
func (x Integer[T]) Upper() T {
	precond.ExpectsDebug(x.Assigned(), "interval.Upper: unassigned")
	return x.upper
}
func (x Integer[T]) LowerUnchecked() T { return x.lower }
func (x Integer[T]) UpperUnchecked() T { return x.upper }

// Value returns the unique value x encloses. It panics if x is not a
// singleton.
func (x Integer[T]) Value() T {
	if !x.assignedFlag || x.lower != x.upper {
		panic(fmt.Sprintf("interval.Value: %s is not a singleton", x.String()))
	}
	return x.lower
}

func (x Integer[T]) Contains(value T) bool {
	return x.assignedFlag && x.lower <= value && value <= x.upper
}
func (x Integer[T]) ContainsInterval(rhs Integer[T]) bool {
	return x.assignedFlag && rhs.assignedFlag && rhs.lower >= x.lower && rhs.upper <= x.upper
}
func (x Integer[T]) Matches(value T) bool {
	return x.assignedFlag && x.lower == value && x.upper == value
}
func (x Integer[T]) MatchesInterval(rhs Integer[T]) bool {
	return x.assignedFlag == rhs.assignedFlag && x.lower == rhs.lower && x.upper == rhs.upper
}

// Equal reports structural equality of bounds, ignoring identity, giving
// github.com/google/go-cmp a value-semantics notion of equality.
func (x Integer[T]) Equal(rhs Integer[T]) bool { return x.MatchesInterval(rhs) }

func (x Integer[T]) String() string {
	if !x.assignedFlag {
		return "{}"
	}
	if x.lower == x.upper {
		return fmt.Sprintf("%v", x.lower)
	}
	return fmt.Sprintf("[%v, %v]", x.lower, x.upper)
}

func imin[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
func imax[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Pred and Succ return the predecessor/successor of x, the discrete-kind
// adjustment the constraint package's strict-inequality narrowing uses in
// place of the no-op it is for floating kinds.
func Pred[T constraints.Integer](x T) T { return x - 1 }
func Succ[T constraints.Integer](x T) T { return x + 1 }

// IEq, ILt, etc. implement four-valued comparisons between two Integer
// intervals, mirroring Float's Eq/Lt/Le exactly (integers have no NaN, so
// the assigned-overlap logic carries over unchanged).

func IEq[T constraints.Integer](lhs, rhs Integer[T]) logic.B {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.IEq: unassigned operand")
	switch {
	case lhs.MatchesInterval(rhs):
		return logic.FromBool(true)
	case rhs.upper >= lhs.lower && rhs.lower <= lhs.upper:
		return logic.Contingent
	default:
		return logic.FromBool(false)
	}
}
func INeq[T constraints.Integer](lhs, rhs Integer[T]) logic.B { return logic.Not(IEq(lhs, rhs)) }

func ILt[T constraints.Integer](lhs, rhs Integer[T]) logic.B {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.ILt: unassigned operand")
	var result logic.B
	if lhs.lower < rhs.upper {
		result.Assign(true)
	}
	if lhs.upper >= rhs.lower {
		result.Assign(false)
	}
	return result
}
func IGt[T constraints.Integer](lhs, rhs Integer[T]) logic.B { return ILt(rhs, lhs) }

func ILe[T constraints.Integer](lhs, rhs Integer[T]) logic.B {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.ILe: unassigned operand")
	var result logic.B
	if lhs.lower <= rhs.upper {
		result.Assign(true)
	}
	if lhs.upper > rhs.lower {
		result.Assign(false)
	}
	return result
}
func IGe[T constraints.Integer](lhs, rhs Integer[T]) logic.B { return ILe(rhs, lhs) }

// IMin, IMax return the componentwise min/max of two integer intervals.
func IMin[T constraints.Integer](lhs, rhs Integer[T]) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.IMin: unassigned operand")
	return NewInteger(imin(lhs.lower, rhs.lower), imin(lhs.upper, rhs.upper))
}
func IMax[T constraints.Integer](lhs, rhs Integer[T]) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.IMax: unassigned operand")
	return NewInteger(imax(lhs.lower, rhs.lower), imax(lhs.upper, rhs.upper))
}

// INeg, IAdd, ISub, IMul implement the arithmetic subset meaningful over a
// discrete kind. Overflow is the caller's responsibility: these operators
// do not saturate or check for wraparound, matching plain T arithmetic.
func INeg[T constraints.Integer](x Integer[T]) Integer[T] {
	precond.ExpectsDebug(x.Assigned(), "interval.INeg: unassigned operand")
	return NewInteger(-x.upper, -x.lower)
}
func IAdd[T constraints.Integer](lhs, rhs Integer[T]) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.IAdd: unassigned operand")
	return NewInteger(lhs.lower+rhs.lower, lhs.upper+rhs.upper)
}
func IAddValue[T constraints.Integer](lhs Integer[T], rhs T) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned(), "interval.IAddValue: unassigned operand")
	return NewInteger(lhs.lower+rhs, lhs.upper+rhs)
}
func ISub[T constraints.Integer](lhs, rhs Integer[T]) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.ISub: unassigned operand")
	return NewInteger(lhs.lower-rhs.upper, lhs.upper-rhs.lower)
}
func ISubValue[T constraints.Integer](lhs Integer[T], rhs T) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned(), "interval.ISubValue: unassigned operand")
	return NewInteger(lhs.lower-rhs, lhs.upper-rhs)
}
func IMul[T constraints.Integer](lhs, rhs Integer[T]) Integer[T] {
	precond.ExpectsDebug(lhs.Assigned() && rhs.Assigned(), "interval.IMul: unassigned operand")
	v1 := lhs.lower * rhs.lower
	v2 := lhs.lower * rhs.upper
	v3 := lhs.upper * rhs.lower
	v4 := lhs.upper * rhs.upper
	return NewInteger(imin(imin(v1, v2), imin(v3, v4)), imax(imax(v1, v2), imax(v3, v4)))
}

// IAbs returns |x|.
func IAbs[T constraints.Integer](x Integer[T]) Integer[T] {
	precond.ExpectsDebug(x.Assigned(), "interval.IAbs: unassigned operand")
	switch {
	case x.lower <= 0 && x.upper >= 0:
		return NewInteger(0, imax(-x.lower, x.upper))
	case x.lower < 0:
		return NewInteger(-x.upper, -x.lower)
	default:
		return x
	}
}

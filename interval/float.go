// Package interval implements I[T], the bounded-scalar type this module
// verifies computations over: Float[T] for floating-point kinds (with the
// full Hickey et al. (2001) interval arithmetic, including IEEE-754 edge
// cases), and Integer[T] for discrete kinds.
package interval

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/precond"
	"github.com/rangeval/intervals/sign"
)

// Float is an interval scalar over a floating-point kind T: the enclosure
// of an uncertain real-valued quantity by a closed bound [lower, upper].
// The zero value is NOT a valid empty interval: it is the singleton [0, 0]
// with no identity, so Assign into it would union 0 in. Construct
// explicitly via NewFloat/Singleton/Empty, and start accumulators from Empty.
type Float[T constraints.Float] struct {
	lower, upper T
	id           uint64
}

func inf[T constraints.Float]() T  { return T(math.Inf(1)) }
func ninf[T constraints.Float]() T { return T(math.Inf(-1)) }
func nanT[T constraints.Float]() T { return T(math.NaN()) }

// Empty returns the empty interval (no assigned value), the Float
// analogue of a freshly default-constructed C++ interval.
func Empty[T constraints.Float]() Float[T] {
	return Float[T]{lower: inf[T](), upper: ninf[T](), id: nextID()}
}

// Singleton returns the degenerate interval [value, value].
func Singleton[T constraints.Float](value T) Float[T] {
	return Float[T]{lower: value, upper: value, id: nextID()}
}

// NewFloat returns the interval [lower, upper]. It panics if lower > upper
// (NaN bounds do not trigger the check, matching the host comparison's
// behavior on NaN).
func NewFloat[T constraints.Float](lower, upper T) Float[T] {
	precond.Expects(!(lower > upper), "interval.NewFloat: lower=%v > upper=%v", lower, upper)
	return Float[T]{lower: lower, upper: upper, id: nextID()}
}

// nanInterval constructs the NaN sentinel result used by the handful of
// operators that hit a genuinely indeterminate form.
func nanInterval[T constraints.Float]() Float[T] {
	n := nanT[T]()
	return Float[T]{lower: n, upper: n, id: nextID()}
}

// Identity returns the stable, process-unique identity used by the
// constraint package to recognize whether a constraint's operand is
// literally this interval rather than some arithmetic derivative of it.
func (x Float[T]) Identity() uint64 { return x.id }

func (x Float[T]) assigned() bool { return !(x.lower > x.upper) }

// Assigned reports whether x currently encloses at least one value.
func (x Float[T]) Assigned() bool { return x.assigned() }

// Assign unions rhs into x (componentwise min/max of the bounds), the
// mutating counterpart used by the branch-merge algebra. The identity is
// preserved: Assign never changes which variable x is.
func (x *Float[T]) Assign(rhs Float[T]) {
	precond.ExpectsDebug(rhs.assigned(), "interval.Assign: rhs is unassigned")
	x.lower = min2(x.lower, rhs.lower)
	x.upper = max2(x.upper, rhs.upper)
}

// AssignValue unions a single scalar value into x.
func (x *Float[T]) AssignValue(value T) {
	x.lower = min2(x.lower, value)
	x.upper = max2(x.upper, value)
}

// Reset clears x back to empty.
func (x *Float[T]) Reset() {
	x.lower = inf[T]()
	x.upper = ninf[T]()
}

// ResetTo replaces x's bounds with rhs's, preserving x's identity (unlike
// assignment through NewFloat, which would create a new variable).
func (x *Float[T]) ResetTo(rhs Float[T]) {
	x.lower = rhs.lower
	x.upper = rhs.upper
}

// LowerUnchecked and UpperUnchecked return the bounds without asserting
// that x is assigned.
func (x Float[T]) LowerUnchecked() T { return x.lower }
func (x Float[T]) UpperUnchecked() T { return x.upper }

// Lower and Upper return the bounds, asserting x is assigned in debug
// builds.
func (x Float[T]) Lower() T {
	precond.ExpectsDebug(x.assigned(), "interval.Lower: unassigned")
	return x.lower
}
func (x Float[T]) Upper() T {
	precond.ExpectsDebug(x.assigned(), "interval.Upper: unassigned")
	return x.upper
}

// Value returns the unique value x encloses. It panics if x is not a
// singleton.
func (x Float[T]) Value() T {
	if x.lower != x.upper {
		panic(fmt.Sprintf("interval.Value: %s is not a singleton", x.String()))
	}
	return x.lower
}

// Contains reports whether value lies within x's closed bounds.
func (x Float[T]) Contains(value T) bool {
	return x.lower <= value && value <= x.upper
}

// ContainsInterval reports whether x fully encloses rhs.
func (x Float[T]) ContainsInterval(rhs Float[T]) bool {
	return x.assigned() && rhs.lower >= x.lower && rhs.upper <= x.upper
}

// Encloses reports whether value lies strictly within x's bounds.
func (x Float[T]) Encloses(value T) bool {
	return x.lower < value && value < x.upper
}

// Matches reports whether x is exactly the singleton {value}.
func (x Float[T]) Matches(value T) bool {
	return x.lower == value && x.upper == value
}

// MatchesInterval reports whether x and rhs have identical bounds.
func (x Float[T]) MatchesInterval(rhs Float[T]) bool {
	return x.lower == rhs.lower && x.upper == rhs.upper
}

// Equal reports structural equality of bounds, ignoring identity. It gives
// github.com/google/go-cmp a value-semantics notion of equality for Float
// so tests can compare computed intervals without tripping over the
// unexported, always-unique id field.
func (x Float[T]) Equal(rhs Float[T]) bool { return x.MatchesInterval(rhs) }

func (x Float[T]) String() string {
	if x.lower == x.upper {
		return fmt.Sprintf("%v", x.lower)
	}
	return fmt.Sprintf("[%v, %v]", x.lower, x.upper)
}

func min2[T constraints.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}
func max2[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Eq, Neq, Lt, Le, Gt, Ge implement the four-valued comparison operators
// between two intervals, grounded on the overlap/disjoint logic of the
// reference implementation.

func Eq[T constraints.Float](lhs, rhs Float[T]) logic.B {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Eq: unassigned operand")
	switch {
	case lhs.MatchesInterval(rhs):
		return logic.FromBool(true)
	case rhs.upper >= lhs.lower && rhs.lower <= lhs.upper:
		return logic.Contingent
	default:
		return logic.FromBool(false)
	}
}

func EqValue[T constraints.Float](lhs Float[T], rhs T) logic.B {
	precond.ExpectsDebug(lhs.assigned(), "interval.EqValue: unassigned operand")
	switch {
	case lhs.Matches(rhs):
		return logic.FromBool(true)
	case lhs.Contains(rhs):
		return logic.Contingent
	default:
		return logic.FromBool(false)
	}
}

func Neq[T constraints.Float](lhs, rhs Float[T]) logic.B { return logic.Not(Eq(lhs, rhs)) }
func NeqValue[T constraints.Float](lhs Float[T], rhs T) logic.B { return logic.Not(EqValue(lhs, rhs)) }

func Lt[T constraints.Float](lhs, rhs Float[T]) logic.B {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Lt: unassigned operand")
	var result logic.B
	if lhs.lower < rhs.upper {
		result.Assign(true)
	}
	if lhs.upper >= rhs.lower {
		result.Assign(false)
	}
	return result
}

func LtValue[T constraints.Float](lhs Float[T], rhs T) logic.B { return Lt(lhs, Singleton(rhs)) }
func ValueLt[T constraints.Float](lhs T, rhs Float[T]) logic.B { return Lt(Singleton(lhs), rhs) }

func Gt[T constraints.Float](lhs, rhs Float[T]) logic.B { return Lt(rhs, lhs) }
func GtValue[T constraints.Float](lhs Float[T], rhs T) logic.B { return Lt(Singleton(rhs), lhs) }
func ValueGt[T constraints.Float](lhs T, rhs Float[T]) logic.B { return Lt(rhs, Singleton(lhs)) }

func Le[T constraints.Float](lhs, rhs Float[T]) logic.B {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Le: unassigned operand")
	var result logic.B
	if lhs.lower <= rhs.upper {
		result.Assign(true)
	}
	if lhs.upper > rhs.lower {
		result.Assign(false)
	}
	return result
}

func LeValue[T constraints.Float](lhs Float[T], rhs T) logic.B { return Le(lhs, Singleton(rhs)) }
func ValueLe[T constraints.Float](lhs T, rhs Float[T]) logic.B { return Le(Singleton(lhs), rhs) }

func Ge[T constraints.Float](lhs, rhs Float[T]) logic.B { return Le(rhs, lhs) }
func GeValue[T constraints.Float](lhs Float[T], rhs T) logic.B { return Le(Singleton(rhs), lhs) }
func ValueGe[T constraints.Float](lhs T, rhs Float[T]) logic.B { return Le(rhs, Singleton(lhs)) }

// Min and Max return the componentwise min/max of two intervals.
func Min[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Min: unassigned operand")
	return NewFloat(min2(lhs.lower, rhs.lower), min2(lhs.upper, rhs.upper))
}
func Max[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Max: unassigned operand")
	return NewFloat(max2(lhs.lower, rhs.lower), max2(lhs.upper, rhs.upper))
}
func MinValue[T constraints.Float](lhs Float[T], rhs T) Float[T] {
	precond.ExpectsDebug(lhs.assigned(), "interval.MinValue: unassigned operand")
	return NewFloat(min2(lhs.lower, rhs), min2(lhs.upper, rhs))
}
func MaxValue[T constraints.Float](lhs Float[T], rhs T) Float[T] {
	precond.ExpectsDebug(lhs.assigned(), "interval.MaxValue: unassigned operand")
	return NewFloat(max2(lhs.lower, rhs), max2(lhs.upper, rhs))
}

// Neg returns -x.
func Neg[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Neg: unassigned operand")
	return NewFloat(-x.upper, -x.lower)
}

// Add returns lhs+rhs, NaN-sentineling the (-∞)+∞ indeterminate form.
func Add[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Add: unassigned operand")
	if (lhs.lower == ninf[T]() && rhs.upper == inf[T]()) || (rhs.lower == ninf[T]() && lhs.upper == inf[T]()) {
		return nanInterval[T]()
	}
	return NewFloat(lhs.lower+rhs.lower, lhs.upper+rhs.upper)
}
func AddValue[T constraints.Float](lhs Float[T], rhs T) Float[T] { return Add(lhs, Singleton(rhs)) }
func ValueAdd[T constraints.Float](lhs T, rhs Float[T]) Float[T] { return Add(Singleton(lhs), rhs) }

// Sub returns lhs-rhs, NaN-sentineling the ∞-∞ indeterminate form.
func Sub[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Sub: unassigned operand")
	if (lhs.lower == ninf[T]() && rhs.lower == ninf[T]()) || (lhs.upper == inf[T]() && rhs.upper == inf[T]()) {
		return nanInterval[T]()
	}
	return NewFloat(lhs.lower-rhs.upper, lhs.upper-rhs.lower)
}
func SubValue[T constraints.Float](lhs Float[T], rhs T) Float[T] {
	precond.ExpectsDebug(lhs.assigned(), "interval.SubValue: unassigned operand")
	return NewFloat(lhs.lower-rhs, lhs.upper-rhs)
}
func ValueSub[T constraints.Float](lhs T, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(rhs.assigned(), "interval.ValueSub: unassigned operand")
	return NewFloat(lhs-rhs.upper, lhs-rhs.lower)
}

// Mul returns lhs*rhs, NaN-sentineling the ∞⋅0 indeterminate form.
func Mul[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Mul: unassigned operand")
	if ((lhs.lower == ninf[T]() || lhs.upper == inf[T]()) && rhs.Contains(0)) ||
		(lhs.Contains(0) && (rhs.lower == ninf[T]() || rhs.upper == inf[T]())) {
		return nanInterval[T]()
	}
	v1 := lhs.lower * rhs.lower
	v2 := lhs.lower * rhs.upper
	v3 := lhs.upper * rhs.lower
	v4 := lhs.upper * rhs.upper
	return NewFloat(min2(min2(v1, v2), min2(v3, v4)), max2(max2(v1, v2), max2(v3, v4)))
}

func MulValue[T constraints.Float](lhs Float[T], rhs T) Float[T] { return ValueMul(rhs, lhs) }

func ValueMul[T constraints.Float](lhs T, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(rhs.assigned(), "interval.ValueMul: unassigned operand")
	if ((lhs == ninf[T]() || lhs == inf[T]()) && rhs.Contains(0)) ||
		(lhs == T(0) && (rhs.lower == ninf[T]() || rhs.upper == inf[T]())) {
		return nanInterval[T]()
	}
	v1 := lhs * rhs.lower
	v2 := lhs * rhs.upper
	return NewFloat(min2(v1, v2), max2(v1, v2))
}

// MulSign scales rhs by a definite sign.
func MulSign[T constraints.Float](lhs sign.Sign, rhs Float[T]) Float[T] {
	return ValueMul(T(lhs), rhs)
}

// MulSignSet scales rhs by an uncertain sign, unioning the branches the
// set's members imply.
func MulSignSet[T constraints.Float](lhs sign.SetValue, rhs Float[T]) Float[T] {
	result := Empty[T]()
	if lhs.Contains(sign.Positive) {
		result.Assign(rhs)
	}
	if lhs.Contains(sign.Negative) {
		result.Assign(Neg(rhs))
	}
	if lhs.Contains(sign.Zero) {
		result.AssignValue(0)
	}
	return result
}

// Div returns lhs/rhs, implementing the Hickey et al. (2001) edge cases
// for the ∞/∞, 0/0, and [a,b]/0 indeterminate and singular forms.
func Div[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(lhs.assigned() && rhs.assigned(), "interval.Div: unassigned operand")
	if (lhs.lower == ninf[T]() || lhs.upper == inf[T]()) && (rhs.lower == ninf[T]() || rhs.upper == inf[T]()) {
		return nanInterval[T]()
	}
	if lhs.lower <= 0 && 0 <= lhs.upper && rhs.lower <= 0 && 0 <= rhs.upper {
		return nanInterval[T]()
	}
	if (0 < lhs.lower || lhs.upper < 0) && rhs.lower < 0 && 0 < rhs.upper {
		return NewFloat(ninf[T](), inf[T]())
	}
	v1 := lhs.lower / rhs.lower
	v2 := lhs.lower / rhs.upper
	v3 := lhs.upper / rhs.lower
	v4 := lhs.upper / rhs.upper
	return NewFloat(min2(min2(v1, v2), min2(v3, v4)), max2(max2(v1, v2), max2(v3, v4)))
}

func ValueDiv[T constraints.Float](lhs T, rhs Float[T]) Float[T] {
	precond.ExpectsDebug(rhs.assigned(), "interval.ValueDiv: unassigned operand")
	if math.IsInf(float64(lhs), 0) && (rhs.lower == ninf[T]() || rhs.upper == inf[T]()) {
		return nanInterval[T]()
	}
	if lhs == 0 && rhs.lower <= 0 && 0 <= rhs.upper {
		return nanInterval[T]()
	}
	if lhs != 0 && rhs.lower < 0 && 0 < rhs.upper {
		return NewFloat(ninf[T](), inf[T]())
	}
	v1 := lhs / rhs.lower
	v2 := lhs / rhs.upper
	return NewFloat(min2(v1, v2), max2(v1, v2))
}

func DivValue[T constraints.Float](lhs Float[T], rhs T) Float[T] {
	precond.ExpectsDebug(lhs.assigned(), "interval.DivValue: unassigned operand")
	if (lhs.lower == ninf[T]() || lhs.upper == inf[T]()) && math.IsInf(float64(rhs), 0) {
		return nanInterval[T]()
	}
	if lhs.lower <= 0 && 0 <= lhs.upper && rhs == 0 {
		return nanInterval[T]()
	}
	v1 := lhs.lower / rhs
	v2 := lhs.upper / rhs
	return NewFloat(min2(v1, v2), max2(v1, v2))
}

// Square returns x*x, tightened to a lower bound of 0 whenever x encloses
// zero.
func Square[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Square: unassigned operand")
	ll := x.lower * x.lower
	uu := x.upper * x.upper
	lower := min2(ll, uu)
	if x.lower <= 0 && x.upper >= 0 {
		lower = 0
	}
	return NewFloat(lower, max2(ll, uu))
}

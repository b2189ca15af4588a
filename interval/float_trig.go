package interval

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/mathshim"
	"github.com/rangeval/intervals/precond"
	"github.com/rangeval/intervals/sign"
)

func f64[T constraints.Float](x T) float64 { return float64(x) }

// Sqrt, Cbrt, Log, Exp apply the corresponding monotone transcendental
// function to both bounds.
func Sqrt[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Sqrt: unassigned operand")
	return NewFloat(T(mathshim.Sqrt(f64(x.lower))), T(mathshim.Sqrt(f64(x.upper))))
}
func Cbrt[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Cbrt: unassigned operand")
	return NewFloat(T(mathshim.Cbrt(f64(x.lower))), T(mathshim.Cbrt(f64(x.upper))))
}
func Log[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Log: unassigned operand")
	return NewFloat(T(mathshim.Log(f64(x.lower))), T(mathshim.Log(f64(x.upper))))
}
func Exp[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Exp: unassigned operand")
	return NewFloat(T(mathshim.Exp(f64(x.lower))), T(mathshim.Exp(f64(x.upper))))
}

// multiply0 computes x*y but imposes 0*∞ := 0, the convention Pow relies
// on internally (distinct from Mul's general NaN-sentinel behavior).
func multiply0[T constraints.Float](x, y T) T {
	result := x * y
	if math.IsNaN(f64(result)) && ((math.IsInf(f64(x), 0) && y == 0) || (math.IsInf(f64(y), 0) && x == 0)) {
		return 0
	}
	return result
}

func multiply0Interval[T constraints.Float](lhs, rhs Float[T]) Float[T] {
	v1 := multiply0(lhs.lower, rhs.lower)
	v2 := multiply0(lhs.lower, rhs.upper)
	v3 := multiply0(lhs.upper, rhs.lower)
	v4 := multiply0(lhs.upper, rhs.upper)
	return NewFloat(min2(min2(v1, v2), min2(v3, v4)), max2(max2(v1, v2), max2(v3, v4)))
}

func multiply0ValueInterval[T constraints.Float](lhs T, rhs Float[T]) Float[T] {
	v1 := multiply0(lhs, rhs.lower)
	v2 := multiply0(lhs, rhs.upper)
	return NewFloat(min2(v1, v2), max2(v1, v2))
}

// Pow returns x^y. For x possibly negative, the result is defined only
// when y is a singleton integer (odd/even parity determines the sign of
// the result); otherwise the negative-x branch contributes the NaN
// sentinel.
func Pow[T constraints.Float](x, y Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned() && y.assigned(), "interval.Pow: unassigned operand")
	result := Empty[T]()
	if logic.Possibly(Ge(x, Singleton[T](0))) {
		result.Assign(Exp(multiply0Interval(y, Log(MaxValue(x, 0)))))
	}
	if logic.Possibly(Lt(x, Singleton[T](0))) {
		if y.lower == y.upper && isIntegral(y.lower) {
			yi := int64(y.lower)
			parity := T(1)
			if yi%2 != 0 {
				parity = -1
			}
			result.Assign(ValueMul(parity, Exp(multiply0ValueInterval(y.lower, Log(MaxValue(Neg(x), 0))))))
		} else {
			return nanInterval[T]()
		}
	}
	return result
}

// PowValue raises x to the fixed scalar power y.
func PowValue[T constraints.Float](x Float[T], y T) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.PowValue: unassigned operand")
	result := Empty[T]()
	if logic.Possibly(Ge(x, Singleton[T](0))) {
		result.Assign(Exp(multiply0ValueInterval(y, Log(MaxValue(x, 0)))))
	}
	if logic.Possibly(Lt(x, Singleton[T](0))) {
		if isIntegral(y) {
			yi := int64(y)
			parity := T(1)
			if yi%2 != 0 {
				parity = -1
			}
			result.Assign(ValueMul(parity, Exp(multiply0ValueInterval(y, Log(MaxValue(Neg(x), 0))))))
		} else {
			return nanInterval[T]()
		}
	}
	return result
}

// ValuePow raises the fixed scalar x to interval power y. For x == 0 and
// negative y the result is +Inf, as math.Pow gives for +0, rather than a NaN
// sentinel; a negative zero x is treated like +0, so it also gives +Inf.
func ValuePow[T constraints.Float](x T, y Float[T]) Float[T] {
	precond.ExpectsDebug(y.assigned(), "interval.ValuePow: unassigned operand")
	if x >= 0 {
		return Exp(multiply0ValueInterval(T(mathshim.Log(f64(max2(T(0), x)))), y))
	}
	if y.lower == y.upper && isIntegral(y.lower) {
		yi := int64(y.lower)
		parity := T(1)
		if yi%2 != 0 {
			parity = -1
		}
		logMagnitude := T(mathshim.Log(f64(max2(T(0), -x))))
		magnitude := T(mathshim.Exp(f64(multiply0(y.lower, logMagnitude))))
		return Singleton(parity * magnitude)
	}
	return nanInterval[T]()
}

func isIntegral[T constraints.Float](y T) bool {
	return T(int64(y)) == y
}

// Cos, Sin, Tan implement trigonometric range reduction exactly as the
// scalar functions, widened across the bounds.
func Cos[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Cos: unassigned operand")
	pi := T(math.Pi)
	lo := T(mathshim.Wraparound(f64(x.lower), f64(-pi), f64(pi)))
	delta := lo - x.lower
	hi := x.upper + delta
	switch {
	case lo <= 0 && hi <= 0:
		return NewFloat(T(mathshim.Cos(f64(lo))), T(mathshim.Cos(f64(hi))))
	case lo <= 0 && hi <= pi:
		return NewFloat(min2(T(mathshim.Cos(f64(lo))), T(mathshim.Cos(f64(hi)))), 1)
	case lo > 0 && hi <= pi:
		return NewFloat(T(mathshim.Cos(f64(hi))), T(mathshim.Cos(f64(lo))))
	case lo > 0 && hi <= 2*pi:
		return NewFloat(-1, max2(T(mathshim.Cos(f64(lo))), T(mathshim.Cos(f64(hi)))))
	default:
		return NewFloat(-1, 1)
	}
}

func Sin[T constraints.Float](x Float[T]) Float[T] {
	return Cos(SubValue(x, T(math.Pi/2)))
}

func Tan[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Tan: unassigned operand")
	half := T(math.Pi / 2)
	lo := T(mathshim.Wraparound(f64(x.lower), f64(-half), f64(half)))
	delta := lo - x.lower
	hi := x.upper + delta
	if hi-lo >= T(math.Pi) {
		return NewFloat(ninf[T](), inf[T]())
	}
	return NewFloat(T(mathshim.Tan(f64(lo))), T(mathshim.Tan(f64(hi))))
}

func Acos[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Acos: unassigned operand")
	return NewFloat(T(mathshim.Acos(f64(x.upper))), T(mathshim.Acos(f64(x.lower))))
}
func Asin[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Asin: unassigned operand")
	return NewFloat(T(mathshim.Asin(f64(x.lower))), T(mathshim.Asin(f64(x.upper))))
}
func Atan[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Atan: unassigned operand")
	return NewFloat(T(mathshim.Atan(f64(x.lower))), T(mathshim.Atan(f64(x.upper))))
}

// Atan2 returns atan2(y, x) over the branch cut at x<=0, y∋0, where the
// result is NaN-sentineled because the angle is genuinely undetermined.
func Atan2[T constraints.Float](y, x Float[T]) Float[T] {
	precond.ExpectsDebug(y.assigned() && x.assigned(), "interval.Atan2: unassigned operand")
	if x.lower <= 0 && y.Contains(0) {
		return nanInterval[T]()
	}
	v1 := mathshim.Atan2(f64(y.lower), f64(x.lower))
	v2 := mathshim.Atan2(f64(y.lower), f64(x.upper))
	v3 := mathshim.Atan2(f64(y.upper), f64(x.lower))
	v4 := mathshim.Atan2(f64(y.upper), f64(x.upper))
	return NewFloat(T(minf(minf(v1, v2), minf(v3, v4))), T(maxf(maxf(v1, v2), maxf(v3, v4))))
}

func Atan2Value[T constraints.Float](y Float[T], x T) Float[T] {
	precond.ExpectsDebug(y.assigned(), "interval.Atan2Value: unassigned operand")
	if x <= 0 && y.Contains(0) {
		return nanInterval[T]()
	}
	v1 := mathshim.Atan2(f64(y.lower), f64(x))
	v2 := mathshim.Atan2(f64(y.upper), f64(x))
	return NewFloat(T(minf(v1, v2)), T(maxf(v1, v2)))
}

func ValueAtan2[T constraints.Float](y T, x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.ValueAtan2: unassigned operand")
	if x.lower <= 0 && y == 0 {
		return nanInterval[T]()
	}
	v1 := mathshim.Atan2(f64(y), f64(x.lower))
	v2 := mathshim.Atan2(f64(y), f64(x.upper))
	return NewFloat(T(minf(v1, v2)), T(maxf(v1, v2)))
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Floor, Ceil apply the corresponding monotone function to both bounds.
func Floor[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Floor: unassigned operand")
	return NewFloat(T(mathshim.Floor(f64(x.lower))), T(mathshim.Floor(f64(x.upper))))
}
func Ceil[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Ceil: unassigned operand")
	return NewFloat(T(mathshim.Ceil(f64(x.lower))), T(mathshim.Ceil(f64(x.upper))))
}

// Frac returns the fractional part of x, widening to [0, 1] whenever the
// bounds straddle an integer.
func Frac[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Frac: unassigned operand")
	lfloor := T(mathshim.Floor(f64(x.lower)))
	ufloor := T(mathshim.Floor(f64(x.upper)))
	if lfloor != ufloor {
		return NewFloat(0, 1)
	}
	return NewFloat(x.lower-lfloor, x.upper-ufloor)
}

// FractionalWeights returns the pair of cross-bound blending weights
// a/(a+b), b/(a+b), tightened across a and b's bounds. Both a and b must
// be non-negative with a non-degenerate sum.
func FractionalWeights[T constraints.Float](a, b Float[T]) (Float[T], Float[T]) {
	precond.ExpectsDebug(a.assigned() && b.assigned(), "interval.FractionalWeights: unassigned operand")
	precond.ExpectsDebug(logic.Always(Ge(a, Singleton[T](0))), "interval.FractionalWeights: a must be >= 0")
	precond.ExpectsDebug(logic.Always(Ge(b, Singleton[T](0))), "interval.FractionalWeights: b must be >= 0")
	precond.ExpectsDebug(logic.Always(Gt(Add(a, b), Singleton[T](0))), "interval.FractionalWeights: a+b must be > 0")
	wa := NewFloat(a.lower/(a.lower+b.upper), a.upper/(a.upper+b.lower))
	wb := NewFloat(b.lower/(a.upper+b.lower), b.upper/(a.lower+b.upper))
	return wa, wb
}

// Abs returns |x|.
func Abs[T constraints.Float](x Float[T]) Float[T] {
	precond.ExpectsDebug(x.assigned(), "interval.Abs: unassigned operand")
	switch {
	case x.lower <= 0 && x.upper >= 0:
		return NewFloat(0, max2(-x.lower, x.upper))
	case x.lower < 0:
		return NewFloat(-x.upper, -x.lower)
	default:
		return x
	}
}

// Sgn returns the set of signs x could possibly have.
func Sgn[T constraints.Float](x Float[T]) sign.SetValue {
	precond.ExpectsDebug(x.assigned(), "interval.Sgn: unassigned operand")
	var result sign.SetValue
	if logic.Possibly(Gt(x, Singleton[T](0))) {
		result.AssignValue(sign.Positive)
	}
	if logic.Possibly(Lt(x, Singleton[T](0))) {
		result.AssignValue(sign.Negative)
	}
	if logic.Possibly(Eq(x, Singleton[T](0))) {
		result.AssignValue(sign.Zero)
	}
	return result
}

// IsInf, IsFinite, IsNaN report four-valued versions of the corresponding
// math predicates.
func IsInf[T constraints.Float](x Float[T]) logic.B {
	precond.ExpectsDebug(x.assigned(), "interval.IsInf: unassigned operand")
	var result logic.B
	if math.IsInf(f64(x.lower), 0) || math.IsInf(f64(x.upper), 0) {
		result.Assign(true)
	}
	if x.lower < x.upper || (x.lower == x.upper && !math.IsInf(f64(x.lower), 0)) {
		result.Assign(false)
	}
	return result
}
func IsFinite[T constraints.Float](x Float[T]) logic.B { return logic.Not(IsInf(x)) }
func IsNaN[T constraints.Float](x Float[T]) logic.B {
	precond.ExpectsDebug(x.assigned(), "interval.IsNaN: unassigned operand")
	if math.IsNaN(f64(x.lower)) || math.IsNaN(f64(x.upper)) {
		return logic.Contingent
	}
	return logic.FromBool(false)
}

// Package mathshim wraps the host math library with the domain
// preconditions interval.Float's transcendental functions rely on, and
// provides the trigonometric range-reduction helper those functions share.
// interval calls its transcendental and rounding functions through this
// seam, so it never needs its own copy of these checks; it still uses
// math.Inf, math.NaN, math.IsInf, math.IsNaN and math.Pi directly.
package mathshim

import (
	"math"

	"github.com/rangeval/intervals/precond"
)

// Sqrt returns math.Sqrt(x), requiring x >= 0 in debug builds.
func Sqrt(x float64) float64 {
	precond.ExpectsDebug(x >= 0, "sqrt domain: x=%v", x)
	return math.Sqrt(x)
}

// Cbrt returns math.Cbrt(x); cube root is defined for all reals.
func Cbrt(x float64) float64 { return math.Cbrt(x) }

// Log returns math.Log(x), requiring x >= 0 in debug builds (x == 0 yields
// -Inf, matching the host library).
func Log(x float64) float64 {
	precond.ExpectsDebug(x >= 0, "log domain: x=%v", x)
	return math.Log(x)
}

// Exp returns math.Exp(x).
func Exp(x float64) float64 { return math.Exp(x) }

// Pow returns math.Pow(x, y).
func Pow(x, y float64) float64 { return math.Pow(x, y) }

// Sin, Cos, Tan return the corresponding trig functions.
func Sin(x float64) float64 { return math.Sin(x) }
func Cos(x float64) float64 { return math.Cos(x) }
func Tan(x float64) float64 { return math.Tan(x) }

// Asin, Acos require x in [-1, 1] in debug builds.
func Asin(x float64) float64 {
	precond.ExpectsDebug(x >= -1 && x <= 1, "asin domain: x=%v", x)
	return math.Asin(x)
}

func Acos(x float64) float64 {
	precond.ExpectsDebug(x >= -1 && x <= 1, "acos domain: x=%v", x)
	return math.Acos(x)
}

func Atan(x float64) float64 { return math.Atan(x) }

// Atan2 requires y != 0 or x > 0 in debug builds (avoids the (0,0) and
// pure-negative-x-axis branch-cut degeneracies).
func Atan2(y, x float64) float64 {
	precond.ExpectsDebug(y != 0 || x > 0, "atan2 domain: y=%v x=%v", y, x)
	return math.Atan2(y, x)
}

func Floor(x float64) float64 { return math.Floor(x) }
func Ceil(x float64) float64  { return math.Ceil(x) }
func Fmod(x, y float64) float64 { return math.Mod(x, y) }

func IsInf(x float64) bool { return math.IsInf(x, 0) }
func IsNaN(x float64) bool { return math.IsNaN(x) }

// Wraparound reduces x into [min, min+range) where range = max-min, the
// helper trig range reduction shares.
func Wraparound(x, min, max float64) float64 {
	r := max - min
	precond.ExpectsDebug(r > 0, "wraparound domain: min=%v max=%v", min, max)
	return min + math.Mod(math.Mod(x-min, r)+r, r)
}

// FractionalWeights returns the pair of cross-bound blending weights used
// by linear interpolation: a/(a+b) and b/(a+b), guarding against the
// degenerate a+b == 0 case the precondition rules out.
func FractionalWeights(a, b float64) (float64, float64) {
	precond.ExpectsDebug(a >= 0 && b >= 0 && a+b > 0, "fractional_weights domain: a=%v b=%v", a, b)
	return a / (a + b), b / (a + b)
}

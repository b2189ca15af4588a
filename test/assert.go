// Package test provides assertion helpers for verifying interval- and
// set-valued computations against a reference scalar implementation: the
// "evaluate both ways, assert the interval result encloses the scalar
// result" pattern. No package in this module imports it.
package test

import (
	"testing"

	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/set"
	"golang.org/x/exp/constraints"
)

// Assert wraps *testing.T with enclosure-checking helpers, in the thin
// Assert-around-T wrapper idiom.
type Assert struct {
	t *testing.T
}

// New returns an Assert for t.
func New(t *testing.T) *Assert {
	t.Helper()
	return &Assert{t: t}
}

// Run runs fn as a subtest, threading a fresh Assert through.
func (a *Assert) Run(name string, fn func(a *Assert)) {
	a.t.Run(name, func(t *testing.T) {
		fn(New(t))
	})
}

// EnclosesFloat asserts that result.Contains(scalar).
func (a *Assert) EnclosesFloat(result interval.Float[float64], scalar float64) {
	a.t.Helper()
	if !result.Contains(scalar) {
		a.t.Errorf("interval result %s does not enclose reference scalar %v", result, scalar)
	}
}

// EnclosesFloatAll asserts that result encloses every scalar produced by
// evaluating reference over every value in domain — a way to cross-check
// an interval-valued implementation against a plain one: enumerate a finite sample of concrete inputs, compute both ways,
// and require enclosure for each.
func EnclosesFloatAll[In any](t *testing.T, result interval.Float[float64], domain []In, reference func(In) float64) {
	t.Helper()
	for _, v := range domain {
		scalar := reference(v)
		if !result.Contains(scalar) {
			t.Errorf("interval result %s does not enclose reference scalar %v (input %v)", result, scalar, v)
		}
	}
}

// EnclosesInteger is EnclosesFloat's discrete-kind counterpart.
func (a *Assert) EnclosesInteger(result interval.Integer[int], scalar int) {
	a.t.Helper()
	if !result.Contains(scalar) {
		a.t.Errorf("integer interval result %s does not enclose reference scalar %d", result, scalar)
	}
}

// ConsistentWithBool asserts that a four-valued outcome is consistent with
// a plain reference boolean: a definite True/False must match exactly, and
// Both must be willing to explain either polarity.
func (a *Assert) ConsistentWithBool(result logic.B, scalar bool) {
	a.t.Helper()
	switch result.State() {
	case logic.True:
		if !scalar {
			a.t.Errorf("four-valued result was definitely true but reference scalar was false")
		}
	case logic.False:
		if scalar {
			a.t.Errorf("four-valued result was definitely false but reference scalar was true")
		}
	case logic.Both:
		// Both explains either polarity; nothing to check.
	case logic.Bottom:
		a.t.Errorf("four-valued result was uninitialized (Bottom)")
	}
}

// ContainsValue asserts s contains value.
func ContainsValue[T comparable](t *testing.T, s set.S[T], value T) {
	t.Helper()
	if !s.Contains(value) {
		t.Errorf("set %s does not contain expected value %v", s, value)
	}
}

// Monotone asserts that narrower never widens: applied to a family of
// narrowing operators (constrain, partition-point refinement, set
// intersection), this is the generic "tightening reduces uncertainty"
// property shared across this module's Testable Properties.
func Monotone[T constraints.Float](t *testing.T, before, after interval.Float[T]) {
	t.Helper()
	if after.LowerUnchecked() < before.LowerUnchecked() || after.UpperUnchecked() > before.UpperUnchecked() {
		t.Errorf("narrowing widened the interval: before=%s after=%s", before, after)
	}
}

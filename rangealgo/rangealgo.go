// Package rangealgo implements range algorithms over random-access slices
// whose query arguments may be uncertain: partition_point, lower_bound,
// upper_bound, at and enumerate, generalizing their standard-library
// counterparts to accept interval- and set-valued predicates and queries.
package rangealgo

import (
	"golang.org/x/exp/constraints"

	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/precond"
	"github.com/rangeval/intervals/set"
)

// PartitionPoint returns the index of the first element for which
// predicate returns false, assuming elements is partitioned by predicate
// (every true element precedes every false one).
func PartitionPoint[T any](elements []T, predicate func(T) bool) int {
	lo, hi := 0, len(elements)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if predicate(elements[mid]) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Partitioning remembers the range and predicate a partition point was
// computed from, so a later narrowing can re-validate the boundary.
type Partitioning[T any] struct {
	elements  []T
	predicate func(T) logic.B
}

// PartitioningConstraint pairs a Partitioning with the index interval its
// partition point was found to lie in. Constrain re-validates and narrows
// an index interval against it.
type PartitioningConstraint[T any] struct {
	partitioning Partitioning[T]
	index        interval.Integer[int]
}

// Constrain narrows x to the intersection of x and the partition point
// interval, asserting (in debug builds) that the boundary elements are
// consistent with the predicate that produced this constraint.
func (c PartitioningConstraint[T]) Constrain(x interval.Integer[int]) interval.Integer[int] {
	elements, predicate := c.partitioning.elements, c.partitioning.predicate
	if len(elements) == 0 {
		return x
	}
	ilo, ihi := c.index.LowerUnchecked(), c.index.UpperUnchecked()
	if ilo > 0 {
		precond.ExpectsDebug(logic.Always(predicate(elements[ilo-1])), "rangealgo: element before partition point does not satisfy the predicate")
	}
	if ihi < len(elements) {
		precond.ExpectsDebug(!logic.Always(predicate(elements[ihi])), "rangealgo: element at partition point satisfies the predicate")
	}
	lo := imax(x.LowerUnchecked(), ilo)
	hi := imin(x.UpperUnchecked(), ihi)
	precond.ExpectsDebug(lo <= hi, "rangealgo: partitioning constraint narrowing produced an empty interval")
	return interval.NewInteger(lo, hi)
}

// PartitionPointUncertain partitions elements by a four-valued predicate.
// The returned interval's lower bound is the partition point assuming the
// predicate is definitely true everywhere it can be; its upper bound is
// the partition point assuming the predicate could possibly be true.
// Together they bound every partition point consistent with predicate's
// uncertainty.
func PartitionPointUncertain[T any](elements []T, predicate func(T) logic.B) (PartitioningConstraint[T], interval.Integer[int]) {
	lo := PartitionPoint(elements, func(v T) bool { return logic.Always(predicate(v)) })
	hi := PartitionPoint(elements, func(v T) bool { return logic.Possibly(predicate(v)) })
	idx := interval.NewInteger(lo, hi)
	return PartitioningConstraint[T]{partitioning: Partitioning[T]{elements: elements, predicate: predicate}, index: idx}, idx
}

// LowerBound returns the index of the first element not less than value.
func LowerBound[T constraints.Ordered](elements []T, value T) int {
	return PartitionPoint(elements, func(e T) bool { return e < value })
}

// UpperBound returns the index of the first element greater than value.
func UpperBound[T constraints.Ordered](elements []T, value T) int {
	return PartitionPoint(elements, func(e T) bool { return !(value < e) })
}

// LowerBoundUncertain is LowerBound generalized to an interval-valued
// query against a range of exact floating-point elements.
func LowerBoundUncertain[T constraints.Float](elements []T, value interval.Float[T]) (PartitioningConstraint[T], interval.Integer[int]) {
	return PartitionPointUncertain(elements, func(e T) logic.B {
		return interval.ValueLt(e, value)
	})
}

// UpperBoundUncertain is UpperBound generalized to an interval-valued query.
func UpperBoundUncertain[T constraints.Float](elements []T, value interval.Float[T]) (PartitioningConstraint[T], interval.Integer[int]) {
	return PartitionPointUncertain(elements, func(e T) logic.B {
		return logic.Not(interval.LtValue(value, e))
	})
}

// At returns elements[index], asserting index is in range.
func At[T any](elements []T, index int) T {
	precond.Expects(index >= 0 && index < len(elements), "rangealgo.At: index %d out of range [0,%d)", index, len(elements))
	return elements[index]
}

// AtUncertain gathers every element whose index falls within indexInterval
// into a set, the discrete analogue of evaluating at() with an uncertain
// index.
func AtUncertain[T comparable](elements []T, indexInterval interval.Integer[int]) set.S[T] {
	precond.Expects(indexInterval.Assigned(), "rangealgo.AtUncertain: index interval is unassigned")
	lo, hi := indexInterval.LowerUnchecked(), indexInterval.UpperUnchecked()
	precond.Expects(lo >= 0 && hi < len(elements), "rangealgo.AtUncertain: index interval %v out of range [0,%d)", indexInterval, len(elements))
	var result set.S[T]
	for i := lo; i <= hi; i++ {
		result.AssignValue(elements[i])
	}
	return result
}

// Enumerate returns the single value value enumerates to.
func Enumerate[T comparable](value T) []T { return []T{value} }

// EnumerateSet returns every value a set can possibly hold.
func EnumerateSet[T comparable](value set.S[T]) []T { return value.Values() }

// EnumerateInterval returns every discrete value an assigned interval
// encloses.
func EnumerateInterval[T constraints.Integer](value interval.Integer[T]) []T {
	precond.Expects(value.Assigned(), "rangealgo.EnumerateInterval: unassigned interval")
	lo, hi := value.LowerUnchecked(), value.UpperUnchecked()
	result := make([]T, 0, int(hi-lo)+1)
	for v := lo; v <= hi; v++ {
		result = append(result, v)
	}
	return result
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package set

import (
	"fmt"
	"reflect"
	"sync"
)

// domain holds the fixed, ordered list of values a type T can take, plus
// the reverse index used to map a value to its bit position.
type domain[T comparable] struct {
	values []T
	index  map[T]int
}

var registries sync.Map // reflect.Type -> *domain[T] (boxed as any)

// Register fixes the enumeration of values S[T] bitsets are indexed
// against. It must be called once for T before any S[T] is constructed;
// typically from an init() function near T's definition. Registering the
// same type twice replaces the previous domain.
func Register[T comparable](values ...T) {
	d := &domain[T]{
		values: append([]T(nil), values...),
		index:  make(map[T]int, len(values)),
	}
	for i, v := range values {
		d.index[v] = i
	}
	var zero T
	registries.Store(reflect.TypeOf(&zero).Elem(), d)
}

func domainOf[T comparable]() *domain[T] {
	var zero T
	v, ok := registries.Load(reflect.TypeOf(&zero).Elem())
	if !ok {
		panic(fmt.Sprintf("set: no registered domain for %T; call set.Register[%T](...) first", zero, zero))
	}
	return v.(*domain[T])
}

func (d *domain[T]) indexOf(v T) (int, bool) {
	i, ok := d.index[v]
	return i, ok
}

func (d *domain[T]) size() int { return len(d.values) }

func init() {
	Register(false, true)
}

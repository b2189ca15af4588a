package interval

import "sync/atomic"

var idCounter uint64

// nextID issues a fresh, process-unique identity used by the constraint
// package to recognize "the same variable" across narrowing steps. Every
// freshly constructed interval gets a new identity; copying an interval
// value (assignment, passing by value) carries the identity along, exactly
// as copying a named C++ variable preserves its address.
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

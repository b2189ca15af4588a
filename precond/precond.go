// Package precond implements the three-level precondition facility used
// throughout this module: Expects (always-on), ExpectsDebug (compiled out
// unless built with -tags intervals_debug) and ExpectsAudit (always
// compiled, but only evaluated when auditing has been turned on at
// runtime).
//
// All three report violations the same way: log a structured event via
// internal/diagnostics, then panic with a *Violation.
package precond

import (
	"fmt"

	"github.com/rangeval/intervals/internal/diagnostics"
)

// Violation is the error value carried by panics raised from this package.
type Violation struct {
	Level   string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("intervals: %s precondition violated: %s", v.Level, v.Message)
}

func fail(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	diagnostics.Log().Error().Str("level", level).Msg(msg)
	panic(&Violation{Level: level, Message: msg})
}

// Expects checks an always-on precondition. It panics with a *Violation if
// cond is false.
func Expects(cond bool, format string, args ...any) {
	if !cond {
		fail("Expects", format, args...)
	}
}

// ExpectsAudit checks an optional, runtime-toggleable precondition. It is a
// no-op unless SetAuditEnabled(true) has been called.
func ExpectsAudit(cond bool, format string, args ...any) {
	if !auditEnabled.Load() {
		return
	}
	if !cond {
		fail("ExpectsAudit", format, args...)
	}
}

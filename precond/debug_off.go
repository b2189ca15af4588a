//go:build !intervals_debug

package precond

// ExpectsDebug is a no-op unless built with -tags intervals_debug.
func ExpectsDebug(cond bool, format string, args ...any) {
	_ = cond
}

// DebugEnabled reports whether ExpectsDebug checks are compiled in.
func DebugEnabled() bool { return false }

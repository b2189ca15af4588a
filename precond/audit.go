package precond

import "sync/atomic"

var auditEnabled atomic.Bool

// SetAuditEnabled turns ExpectsAudit checks on or off process-wide. Off by
// default, since audit-level checks are typically too expensive to run
// outside targeted diagnostic sessions.
func SetAuditEnabled(enabled bool) {
	auditEnabled.Store(enabled)
}

// AuditEnabled reports whether ExpectsAudit checks currently run.
func AuditEnabled() bool {
	return auditEnabled.Load()
}

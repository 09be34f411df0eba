package remediation

import "context"

// Auditor persists remediation outcomes.
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry) error
}

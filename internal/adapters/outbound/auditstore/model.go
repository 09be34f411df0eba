package auditstore

import (
	"time"

	"github.com/skillcoder/kguard/internal/logic/remediation"
)

// auditRecord is the persisted form of a remediation.AuditEntry.
type auditRecord struct {
	ID        string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"index"`
	Principal string    `gorm:"size:255"`
	Action    string    `gorm:"size:32;index"`
	Namespace string    `gorm:"size:253"`
	Target    string    `gorm:"size:253"`
	Workload  string    `gorm:"size:253"`
	Value     string
	Status    string `gorm:"size:16"`
	Message   string
}

func (auditRecord) TableName() string {
	return "remediation_audit"
}

func toRecord(entry *remediation.AuditEntry) auditRecord {
	return auditRecord{
		ID:        entry.ID,
		CreatedAt: entry.Time,
		Principal: entry.Principal,
		Action:    string(entry.Action),
		Namespace: entry.Namespace,
		Target:    entry.Target,
		Workload:  entry.Workload,
		Value:     entry.Value,
		Status:    entry.Status,
		Message:   entry.Message,
	}
}

func (r *auditRecord) toEntry() remediation.AuditEntry {
	return remediation.AuditEntry{
		ID:        r.ID,
		Time:      r.CreatedAt,
		Principal: r.Principal,
		Action:    remediation.Action(r.Action),
		Namespace: r.Namespace,
		Target:    r.Target,
		Workload:  r.Workload,
		Value:     r.Value,
		Status:    r.Status,
		Message:   r.Message,
	}
}

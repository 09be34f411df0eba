package remediation

import "time"

// Action names a remediation operation in logs, metrics and the audit trail.
type Action string

const (
	ActionRestart    Action = "restart"
	ActionScaleDown  Action = "scale_down"
	ActionPatchImage Action = "patch_image"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Result is the outcome of a remediation command.
type Result struct {
	Status   string `json:"status" yaml:"status"`
	Message  string `json:"message" yaml:"message"`
	Workload string `json:"workload,omitempty" yaml:"workload,omitempty"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty"`
	Replicas *int32 `json:"replicas,omitempty" yaml:"replicas,omitempty"`
}

// AuditEntry is one remediation outcome as persisted by an Auditor.
type AuditEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Time      time.Time `json:"time" yaml:"time"`
	Principal string    `json:"principal" yaml:"principal"`
	Action    Action    `json:"action" yaml:"action"`
	Namespace string    `json:"namespace" yaml:"namespace"`
	Target    string    `json:"target" yaml:"target"`
	Workload  string    `json:"workload,omitempty" yaml:"workload,omitempty"`
	Value     string    `json:"value,omitempty" yaml:"value,omitempty"`
	Status    string    `json:"status" yaml:"status"`
	Message   string    `json:"message" yaml:"message"`
}

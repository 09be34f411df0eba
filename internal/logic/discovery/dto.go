package discovery

import "time"

// Status is the health classification shown to operators.
type Status string

const (
	StatusSecure      Status = "SECURE"
	StatusStabilizing Status = "STABILIZING"
	StatusAlert       Status = "ALERT"
)

const (
	// KindPod tags records that describe a real pod.
	KindPod = "k3s Pod"

	// KindAdapterError tags the synthetic record returned when the cluster cannot be listed.
	KindAdapterError = "adapter-error"

	// NoIP is shown when a pod has no IP assigned yet.
	NoIP = "N/A"

	// WorkloadActive is the status reported for every discovered Deployment.
	WorkloadActive = "Active"
)

// HealthRecord is the classified view of one pod.
type HealthRecord struct {
	DisplayName string     `json:"name" yaml:"name"`
	Pod         string     `json:"pod_name" yaml:"pod_name"`
	Namespace   string     `json:"namespace" yaml:"namespace"`
	Status      Status     `json:"status" yaml:"status"`
	IP          string     `json:"ip" yaml:"ip"`
	Kind        string     `json:"type" yaml:"type"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Restarts    int32      `json:"restarts" yaml:"restarts"`
	Message     string     `json:"message,omitempty" yaml:"message,omitempty"`
}

// WorkloadSummary is the discovery view of one Deployment.
type WorkloadSummary struct {
	UID       string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Image     string `json:"image" yaml:"image"`
	Status    string `json:"status" yaml:"status"`
}

// Quota is the reference capacity used to derive usage percentages.
// A zero field disables the matching percentage.
type Quota struct {
	CPUMillicores int64
	MemoryMiB     int64
}

// MetricSample is the normalized usage of one pod summed over its containers.
type MetricSample struct {
	Pod           string   `json:"pod_name" yaml:"pod_name"`
	CPUMillicores int64    `json:"cpu_millicores" yaml:"cpu_millicores"`
	MemoryMiB     int64    `json:"memory_mib" yaml:"memory_mib"`
	CPUPercent    *float64 `json:"cpu_percent,omitempty" yaml:"cpu_percent,omitempty"`
	MemoryPercent *float64 `json:"memory_percent,omitempty" yaml:"memory_percent,omitempty"`
}

// NodeCapacity is the size of the first node.
type NodeCapacity struct {
	CPUCores int64 `json:"cpu_cores" yaml:"cpu_cores"`
	MemoryKi int64 `json:"memory_total_ki" yaml:"memory_total_ki"`
	// Fallback is set when the values are defaults rather than observed.
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// Quota converts the capacity into a percentage reference.
func (c NodeCapacity) Quota() Quota {
	return Quota{
		CPUMillicores: c.CPUCores * 1000,
		MemoryMiB:     c.MemoryKi / 1024,
	}
}

// ClusterStatus summarizes the API server and the first node.
type ClusterStatus struct {
	Version    string `json:"cluster_version" yaml:"cluster_version"`
	OS         string `json:"os" yaml:"os"`
	UptimeDays int    `json:"uptime_days" yaml:"uptime_days"`
	State      string `json:"status" yaml:"status"`
}

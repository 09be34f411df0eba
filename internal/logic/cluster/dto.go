package cluster

import "time"

// Phase is the pod lifecycle phase as reported by the API server.
type Phase string

const (
	PhasePending   Phase = "Pending"
	PhaseRunning   Phase = "Running"
	PhaseSucceeded Phase = "Succeeded"
	PhaseFailed    Phase = "Failed"
	PhaseUnknown   Phase = "Unknown"
)

// KindReplicaSet is the owner kind that sits between a pod and its Deployment.
const KindReplicaSet = "ReplicaSet"

// OwnerReference is a backward pointer from a pod to the controller that created it.
type OwnerReference struct {
	Kind string
	Name string
}

// Container represents a container of a pod or a pod template.
type Container struct {
	Name         string
	Image        string
	RestartCount int32
}

// Instance represents a running pod in the domain layer.
type Instance struct {
	Name       string
	Namespace  string
	Phase      Phase
	PodIP      string
	Containers []Container
	// Owners is ordered, the first entry is the canonical owner.
	Owners    []OwnerReference
	Labels    map[string]string
	CreatedAt time.Time
}

// RestartCount returns the sum of restart counts over all containers.
func (i Instance) RestartCount() int32 {
	var total int32
	for _, c := range i.Containers {
		total += c.RestartCount
	}

	return total
}

// Workload represents a Deployment in the domain layer.
type Workload struct {
	UID            string
	Name           string
	Namespace      string
	Replicas       int32
	Containers     []Container
	TemplateLabels map[string]string
}

// WorkloadRef identifies the workload a remediation mutates.
type WorkloadRef struct {
	Kind      string
	Name      string
	Namespace string
}

// ContainerUsage holds raw metrics-server usage strings for one container.
type ContainerUsage struct {
	Name   string
	CPU    string
	Memory string
}

// PodUsage holds raw usage for all containers of a pod.
type PodUsage struct {
	Name       string
	Namespace  string
	Containers []ContainerUsage
}

// Event is an orchestrator-emitted event.
type Event struct {
	ObjectKind string
	ObjectName string
	Reason     string
	Message    string
	Time       time.Time
}

// NodeCapacity is the allocatable size of a node.
type NodeCapacity struct {
	CPUCores int64
	MemoryKi int64
}

// Status describes the API server and the first node.
type Status struct {
	GitVersion    string
	OSImage       string
	KernelVersion string
	NodeCreatedAt time.Time
	NodeReady     bool
}

package cluster

import "context"

// Repository is the port interface for cluster operations.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	ListPodsQuery(ctx context.Context) ([]Instance, error)

	ListDeploymentsQuery(ctx context.Context) ([]Workload, error)

	GetPodQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*Instance, error)

	GetDeploymentQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*Workload, error)

	// PatchDeploymentCommand applies a strategic merge patch to a Deployment.
	PatchDeploymentCommand(
		ctx context.Context,
		namespace,
		name string,
		patch []byte,
	) error

	// PatchDeploymentScaleCommand sets spec.replicas through the scale subresource.
	PatchDeploymentScaleCommand(
		ctx context.Context,
		namespace,
		name string,
		replicas int32,
	) error

	DeletePodCommand(
		ctx context.Context,
		namespace,
		name string,
		graceSeconds int64,
	) error

	GetPodLogsQuery(
		ctx context.Context,
		namespace,
		name,
		container string,
		tailLines int64,
	) (string, error)

	// ListEventsQuery returns namespace events ordered oldest to newest.
	ListEventsQuery(
		ctx context.Context,
		namespace string,
	) ([]Event, error)

	ListPodMetricsQuery(
		ctx context.Context,
		namespace string,
	) ([]PodUsage, error)

	GetNodeCapacityQuery(ctx context.Context) (*NodeCapacity, error)

	GetStatusQuery(ctx context.Context) (*Status, error)

	Ping(ctx context.Context) error
}

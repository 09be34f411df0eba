package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skillcoder/kguard/internal/infra/metrics"
	"github.com/skillcoder/kguard/internal/logic/cluster"
	"github.com/skillcoder/kguard/internal/logic/units"
)

const (
	// DefaultLogTailLines is how many log lines PodLogsQuery returns when not configured.
	DefaultLogTailLines = 100

	fallbackCPUCores = 1
	fallbackMemoryKi = 8000000
	hoursPerDay      = 24
)

// preferredContainerHints are matched against container names when a pod has several.
var preferredContainerHints = []string{"backend", "app", "api", "server"}

// Service answers the read-only questions about the cluster.
// Read paths degrade to empty or placeholder answers instead of failing.
type Service struct {
	logger       *slog.Logger
	repo         cluster.Repository
	policy       NamespacePolicy
	logTailLines int64
}

// New creates a new discovery service.
func New(
	logger *slog.Logger,
	repo cluster.Repository,
	policy NamespacePolicy,
	logTailLines int64,
) *Service {
	if logTailLines <= 0 {
		logTailLines = DefaultLogTailLines
	}

	return &Service{
		logger:       logger,
		repo:         repo,
		policy:       policy,
		logTailLines: logTailLines,
	}
}

// ListInstancesQuery returns a health record for every visible pod.
// When the cluster cannot be listed it returns a single synthetic ALERT record.
func (s *Service) ListInstancesQuery(ctx context.Context) []HealthRecord {
	instances, err := s.repo.ListPodsQuery(ctx)
	if err != nil {
		metrics.RecordDiscoveryFailure("instances")
		s.logger.ErrorContext(ctx, "list pods failed", "reason", err)

		return []HealthRecord{{
			DisplayName: "cluster",
			Status:      StatusAlert,
			IP:          NoIP,
			Kind:        KindAdapterError,
			Message:     err.Error(),
		}}
	}

	records := make([]HealthRecord, 0, len(instances))

	for i := range instances {
		instance := &instances[i]
		if !s.policy.Allows(instance.Namespace) {
			continue
		}

		records = append(records, toHealthRecord(instance))
	}

	return records
}

func toHealthRecord(instance *cluster.Instance) HealthRecord {
	ip := instance.PodIP
	if ip == "" {
		ip = NoIP
	}

	record := HealthRecord{
		DisplayName: DisplayName(instance.Name, instance.Labels),
		Pod:         instance.Name,
		Namespace:   instance.Namespace,
		Status:      Classify(instance.Phase),
		IP:          ip,
		Kind:        KindPod,
		Restarts:    instance.RestartCount(),
	}

	if !instance.CreatedAt.IsZero() {
		createdAt := instance.CreatedAt
		record.CreatedAt = &createdAt
	}

	return record
}

// ListWorkloadsQuery returns a summary of every visible Deployment.
// Only the first container image is reported.
func (s *Service) ListWorkloadsQuery(ctx context.Context) []WorkloadSummary {
	workloads, err := s.repo.ListDeploymentsQuery(ctx)
	if err != nil {
		metrics.RecordDiscoveryFailure("workloads")
		s.logger.ErrorContext(ctx, "list deployments failed", "reason", err)

		return []WorkloadSummary{}
	}

	summaries := make([]WorkloadSummary, 0, len(workloads))

	for i := range workloads {
		workload := &workloads[i]
		if !s.policy.Allows(workload.Namespace) {
			continue
		}

		var image string
		if len(workload.Containers) > 0 {
			image = workload.Containers[0].Image
		}

		summaries = append(summaries, WorkloadSummary{
			UID:       workload.UID,
			Name:      workload.Name,
			Namespace: workload.Namespace,
			Image:     image,
			Status:    WorkloadActive,
		})
	}

	return summaries
}

// PodMetricsQuery returns normalized usage for every pod in namespace.
// Percentages are derived only when quota is given.
func (s *Service) PodMetricsQuery(ctx context.Context, namespace string, quota *Quota) []MetricSample {
	logger := s.logger.With("namespace", namespace)

	usages, err := s.repo.ListPodMetricsQuery(ctx, namespace)
	if err != nil {
		metrics.RecordDiscoveryFailure("metrics")
		logger.ErrorContext(ctx, "list pod metrics failed", "reason", err)

		return []MetricSample{}
	}

	samples := make([]MetricSample, 0, len(usages))

	for i := range usages {
		sample, err := normalizeUsage(&usages[i])
		if err != nil {
			logger.WarnContext(ctx, "dropping metrics sample",
				"pod", usages[i].Name,
				"reason", err,
			)

			continue
		}

		if quota != nil {
			sample.CPUPercent = percentOf(sample.CPUMillicores, quota.CPUMillicores)
			sample.MemoryPercent = percentOf(sample.MemoryMiB, quota.MemoryMiB)
		}

		samples = append(samples, sample)
	}

	return samples
}

func normalizeUsage(usage *cluster.PodUsage) (MetricSample, error) {
	sample := MetricSample{Pod: usage.Name}

	for _, c := range usage.Containers {
		cpu, err := units.ParseCPU(c.CPU)
		if err != nil {
			metrics.RecordUnitParseError("cpu")

			return MetricSample{}, fmt.Errorf("container %s cpu: %w", c.Name, err)
		}

		memory, err := units.ParseMemory(c.Memory)
		if err != nil {
			metrics.RecordUnitParseError("memory")

			return MetricSample{}, fmt.Errorf("container %s memory: %w", c.Name, err)
		}

		sample.CPUMillicores += cpu
		sample.MemoryMiB += memory
	}

	return sample, nil
}

func percentOf(value, quota int64) *float64 {
	pct, err := units.Percent(value, quota)
	if err != nil {
		return nil
	}

	return &pct
}

// NodeCapacityQuery returns the size of the first node, or a fixed fallback
// flagged as such when it cannot be read.
func (s *Service) NodeCapacityQuery(ctx context.Context) NodeCapacity {
	capacity, err := s.repo.GetNodeCapacityQuery(ctx)
	if err != nil {
		metrics.RecordDiscoveryFailure("node_capacity")
		s.logger.WarnContext(ctx, "node capacity unavailable, using fallback", "reason", err)

		return NodeCapacity{
			CPUCores: fallbackCPUCores,
			MemoryKi: fallbackMemoryKi,
			Fallback: true,
		}
	}

	return NodeCapacity{
		CPUCores: capacity.CPUCores,
		MemoryKi: capacity.MemoryKi,
	}
}

// ClusterStatusQuery returns version and node information. Errors are surfaced.
func (s *Service) ClusterStatusQuery(ctx context.Context) (ClusterStatus, error) {
	status, err := s.repo.GetStatusQuery(ctx)
	if err != nil {
		return ClusterStatus{}, fmt.Errorf("get cluster status: %w", cluster.DomainError(err))
	}

	state := "NotReady"
	if status.NodeReady {
		state = "Ready"
	}

	var uptimeDays int
	if !status.NodeCreatedAt.IsZero() {
		uptimeDays = int(time.Since(status.NodeCreatedAt).Hours() / hoursPerDay)
	}

	return ClusterStatus{
		Version:    status.GitVersion,
		OS:         fmt.Sprintf("%s (%s)", status.OSImage, status.KernelVersion),
		UptimeDays: uptimeDays,
		State:      state,
	}, nil
}

// PodLogsQuery returns the tail of a pod's logs. When container is empty a
// container is picked by name. Failures are returned as an "ERROR: " placeholder.
func (s *Service) PodLogsQuery(ctx context.Context, namespace, pod, container string) string {
	logger := s.logger.With("namespace", namespace, "pod", pod)

	if container == "" {
		instance, err := s.repo.GetPodQuery(ctx, namespace, pod)
		if err != nil {
			logger.WarnContext(ctx, "get pod for logs failed", "reason", err)

			return "ERROR: " + err.Error()
		}

		container = PickContainer(instance.Containers)
	}

	logs, err := s.repo.GetPodLogsQuery(ctx, namespace, pod, container, s.logTailLines)
	if err != nil {
		logger.WarnContext(ctx, "get pod logs failed", "container", container, "reason", err)

		return "ERROR: " + err.Error()
	}

	return logs
}

// PickContainer returns the first container whose name looks like the main
// application, or the first container. It returns "" for an empty list.
func PickContainer(containers []cluster.Container) string {
	if len(containers) == 0 {
		return ""
	}

	if len(containers) > 1 {
		for _, c := range containers {
			name := strings.ToLower(c.Name)
			for _, hint := range preferredContainerHints {
				if strings.Contains(name, hint) {
					return c.Name
				}
			}
		}
	}

	return containers[0].Name
}

// Ping checks that the cluster API is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping cluster: %w", cluster.DomainError(err))
	}

	return nil
}

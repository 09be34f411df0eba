package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/kguard/internal/infra/appstate"
	"github.com/skillcoder/kguard/internal/infra/pinger"
	"github.com/skillcoder/kguard/internal/logic/discovery"
	"github.com/skillcoder/kguard/internal/logic/remediation"
	"github.com/skillcoder/kguard/internal/logic/scan"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

type discoverer interface {
	ListInstancesQuery(ctx context.Context) []discovery.HealthRecord
	ListWorkloadsQuery(ctx context.Context) []discovery.WorkloadSummary
	PodMetricsQuery(ctx context.Context, namespace string, quota *discovery.Quota) []discovery.MetricSample
	NodeCapacityQuery(ctx context.Context) discovery.NodeCapacity
	ClusterStatusQuery(ctx context.Context) (discovery.ClusterStatus, error)
	PodLogsQuery(ctx context.Context, namespace, pod, container string) string
}

type remediator interface {
	ForceRestartCommand(ctx context.Context, namespace, pod string) (remediation.Result, error)
	ScaleDownCommand(ctx context.Context, namespace, pod string, replicas int32) (remediation.Result, error)
	PatchImageCommand(ctx context.Context, namespace, workload, image string) (remediation.Result, error)
	RecentEventsQuery(ctx context.Context, namespace, workload string) string
}

type imageScanner interface {
	ScanImageCommand(ctx context.Context, image string) (*scan.Report, error)
}

type auditLister interface {
	ListRecent(ctx context.Context, limit int) ([]remediation.AuditEntry, error)
}

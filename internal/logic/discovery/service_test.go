package discovery_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kguard/internal/logic/cluster"
	"github.com/skillcoder/kguard/internal/logic/cluster/mocks"
	"github.com/skillcoder/kguard/internal/logic/discovery"
)

type testUnavailableError struct{}

func (testUnavailableError) Error() string  { return "connection refused" }
func (testUnavailableError) IsUnavailable() {}

func newService(t *testing.T, repo cluster.Repository) *discovery.Service {
	t.Helper()

	return discovery.New(slog.Default(), repo, discovery.NewNamespacePolicy(nil, nil), 0)
}

func TestService_ListInstancesQuery(t *testing.T) {
	t.Parallel()

	t.Run("classifies and filters", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		repo.EXPECT().
			ListPodsQuery(mock.Anything).
			Return([]cluster.Instance{
				{
					Name:      "web-7f9c-xk2p1",
					Namespace: "team",
					Phase:     cluster.PhaseRunning,
					PodIP:     "10.0.0.5",
					Labels:    map[string]string{"app": "web"},
					CreatedAt: created,
					Containers: []cluster.Container{
						{Name: "web", RestartCount: 2},
						{Name: "sidecar", RestartCount: 1},
					},
				},
				{Name: "coredns-abc", Namespace: "kube-system", Phase: cluster.PhaseRunning},
				{Name: "job-xyz", Namespace: "team", Phase: cluster.PhasePending},
			}, nil).
			Once()

		got := svc.ListInstancesQuery(t.Context())
		require.Len(t, got, 2)

		assert.Equal(t, discovery.HealthRecord{
			DisplayName: "web",
			Pod:         "web-7f9c-xk2p1",
			Namespace:   "team",
			Status:      discovery.StatusSecure,
			IP:          "10.0.0.5",
			Kind:        discovery.KindPod,
			CreatedAt:   &created,
			Restarts:    3,
		}, got[0])

		assert.Equal(t, "job", got[1].DisplayName)
		assert.Equal(t, discovery.StatusStabilizing, got[1].Status)
		assert.Equal(t, discovery.NoIP, got[1].IP)
		assert.Nil(t, got[1].CreatedAt)
	})

	t.Run("adapter failure yields synthetic alert", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			ListPodsQuery(mock.Anything).
			Return(nil, testUnavailableError{}).
			Once()

		got := svc.ListInstancesQuery(t.Context())
		require.Len(t, got, 1)
		assert.Equal(t, "cluster", got[0].DisplayName)
		assert.Equal(t, discovery.StatusAlert, got[0].Status)
		assert.Equal(t, discovery.KindAdapterError, got[0].Kind)
		assert.Equal(t, discovery.NoIP, got[0].IP)
		assert.Equal(t, "connection refused", got[0].Message)
	})
}

func TestService_ListWorkloadsQuery(t *testing.T) {
	t.Parallel()

	t.Run("first image only", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			ListDeploymentsQuery(mock.Anything).
			Return([]cluster.Workload{
				{
					UID:       "uid-1",
					Name:      "web",
					Namespace: "team",
					Containers: []cluster.Container{
						{Name: "web", Image: "nginx:1.27"},
						{Name: "proxy", Image: "envoy:1.30"},
					},
				},
				{UID: "uid-2", Name: "traefik", Namespace: "kube-system"},
				{UID: "uid-3", Name: "empty", Namespace: "team"},
			}, nil).
			Once()

		got := svc.ListWorkloadsQuery(t.Context())
		assert.Equal(t, []discovery.WorkloadSummary{
			{UID: "uid-1", Name: "web", Namespace: "team", Image: "nginx:1.27", Status: discovery.WorkloadActive},
			{UID: "uid-3", Name: "empty", Namespace: "team", Status: discovery.WorkloadActive},
		}, got)
	})

	t.Run("failure degrades to empty", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			ListDeploymentsQuery(mock.Anything).
			Return(nil, errors.New("boom")).
			Once()

		got := svc.ListWorkloadsQuery(t.Context())
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestService_PodMetricsQuery(t *testing.T) {
	t.Parallel()

	usages := []cluster.PodUsage{
		{
			Name: "web-1",
			Containers: []cluster.ContainerUsage{
				{Name: "web", CPU: "250m", Memory: "256Mi"},
				{Name: "sidecar", CPU: "5000000n", Memory: "2048Ki"},
			},
		},
		{
			Name:       "broken",
			Containers: []cluster.ContainerUsage{{Name: "x", CPU: "1u", Memory: "1Mi"}},
		},
		{
			Name:       "db-0",
			Containers: []cluster.ContainerUsage{{Name: "db", CPU: "1", Memory: "1Gi"}},
		},
	}

	t.Run("without quota", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			ListPodMetricsQuery(mock.Anything, "team").
			Return(usages, nil).
			Once()

		got := svc.PodMetricsQuery(t.Context(), "team", nil)
		assert.Equal(t, []discovery.MetricSample{
			{Pod: "web-1", CPUMillicores: 255, MemoryMiB: 258},
			{Pod: "db-0", CPUMillicores: 1000, MemoryMiB: 1024},
		}, got)
	})

	t.Run("with quota", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			ListPodMetricsQuery(mock.Anything, "team").
			Return(usages, nil).
			Once()

		got := svc.PodMetricsQuery(t.Context(), "team", &discovery.Quota{CPUMillicores: 2000, MemoryMiB: 0})
		require.Len(t, got, 2)
		require.NotNil(t, got[1].CPUPercent)
		assert.InDelta(t, 50.0, *got[1].CPUPercent, 0.0001)
		assert.Nil(t, got[1].MemoryPercent)
	})

	t.Run("failure degrades to empty", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			ListPodMetricsQuery(mock.Anything, "team").
			Return(nil, testUnavailableError{}).
			Once()

		assert.Empty(t, svc.PodMetricsQuery(t.Context(), "team", nil))
	})
}

func TestService_NodeCapacityQuery(t *testing.T) {
	t.Parallel()

	t.Run("observed", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			GetNodeCapacityQuery(mock.Anything).
			Return(&cluster.NodeCapacity{CPUCores: 4, MemoryKi: 16384000}, nil).
			Once()

		got := svc.NodeCapacityQuery(t.Context())
		assert.Equal(t, discovery.NodeCapacity{CPUCores: 4, MemoryKi: 16384000}, got)
		assert.Equal(t, discovery.Quota{CPUMillicores: 4000, MemoryMiB: 16000}, got.Quota())
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			GetNodeCapacityQuery(mock.Anything).
			Return(nil, errors.New("no nodes")).
			Once()

		got := svc.NodeCapacityQuery(t.Context())
		assert.Equal(t, discovery.NodeCapacity{CPUCores: 1, MemoryKi: 8000000, Fallback: true}, got)
	})
}

func TestService_ClusterStatusQuery(t *testing.T) {
	t.Parallel()

	t.Run("ready node", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			GetStatusQuery(mock.Anything).
			Return(&cluster.Status{
				GitVersion:    "v1.33.1+k3s1",
				OSImage:       "Ubuntu 24.04",
				KernelVersion: "6.8.0",
				NodeCreatedAt: time.Now().Add(-50 * time.Hour),
				NodeReady:     true,
			}, nil).
			Once()

		got, err := svc.ClusterStatusQuery(t.Context())
		require.NoError(t, err)
		assert.Equal(t, discovery.ClusterStatus{
			Version:    "v1.33.1+k3s1",
			OS:         "Ubuntu 24.04 (6.8.0)",
			UptimeDays: 2,
			State:      "Ready",
		}, got)
	})

	t.Run("error surfaced", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			GetStatusQuery(mock.Anything).
			Return(nil, testUnavailableError{}).
			Once()

		_, err := svc.ClusterStatusQuery(t.Context())
		require.ErrorIs(t, err, cluster.ErrAdapterUnavailable)
	})
}

func TestService_PodLogsQuery(t *testing.T) {
	t.Parallel()

	t.Run("picks container and tails", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			GetPodQuery(mock.Anything, "team", "web-1").
			Return(&cluster.Instance{
				Name:       "web-1",
				Namespace:  "team",
				Containers: []cluster.Container{{Name: "istio-proxy"}, {Name: "web-server"}},
			}, nil).
			Once()
		repo.EXPECT().
			GetPodLogsQuery(mock.Anything, "team", "web-1", "web-server", int64(discovery.DefaultLogTailLines)).
			Return("line1\nline2", nil).
			Once()

		assert.Equal(t, "line1\nline2", svc.PodLogsQuery(t.Context(), "team", "web-1", ""))
	})

	t.Run("explicit container skips pod lookup", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := discovery.New(slog.Default(), repo, discovery.NewNamespacePolicy(nil, nil), 20)

		repo.EXPECT().
			GetPodLogsQuery(mock.Anything, "team", "web-1", "sidecar", int64(20)).
			Return("ok", nil).
			Once()

		assert.Equal(t, "ok", svc.PodLogsQuery(t.Context(), "team", "web-1", "sidecar"))
	})

	t.Run("failure placeholder", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)
		svc := newService(t, repo)

		repo.EXPECT().
			GetPodQuery(mock.Anything, "team", "gone").
			Return(nil, errors.New("pods \"gone\" not found")).
			Once()

		got := svc.PodLogsQuery(t.Context(), "team", "gone", "")
		assert.Equal(t, "ERROR: pods \"gone\" not found", got)
	})
}

package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/kguard/internal/infra/kubeclient"
	"github.com/skillcoder/kguard/internal/logic/cluster"
)

const scaleSubresource = "scale"

type adapter struct {
	logger   *slog.Logger
	provider *kubeclient.Provider
}

// New creates a new K8s adapter. Clients are obtained from provider on every call.
func New(
	logger *slog.Logger,
	provider *kubeclient.Provider,
) cluster.Repository {
	return &adapter{
		logger:   logger,
		provider: provider,
	}
}

var _ cluster.Repository = (*adapter)(nil)

func (a *adapter) clients(op string) (*kubeclient.Clients, error) {
	clients, err := a.provider.Get()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &UnavailableError{err: err})
	}

	return clients, nil
}

func (a *adapter) ListPodsQuery(ctx context.Context) ([]cluster.Instance, error) {
	clients, err := a.clients("list pods")
	if err != nil {
		return nil, err
	}

	podList, err := clients.Core.CoreV1().Pods("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", classify(err))
	}

	instances := make([]cluster.Instance, 0, len(podList.Items))
	for i := range podList.Items {
		instances = append(instances, toDomainInstance(&podList.Items[i]))
	}

	return instances, nil
}

func (a *adapter) ListDeploymentsQuery(ctx context.Context) ([]cluster.Workload, error) {
	clients, err := a.clients("list deployments")
	if err != nil {
		return nil, err
	}

	deploymentList, err := clients.Core.AppsV1().Deployments("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list deployments: %w", classify(err))
	}

	workloads := make([]cluster.Workload, 0, len(deploymentList.Items))
	for i := range deploymentList.Items {
		workloads = append(workloads, toDomainWorkload(&deploymentList.Items[i]))
	}

	return workloads, nil
}

func (a *adapter) GetPodQuery(
	ctx context.Context,
	namespace,
	name string,
) (*cluster.Instance, error) {
	clients, err := a.clients("get pod")
	if err != nil {
		return nil, err
	}

	pod, err := clients.Core.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get pod: %w", classify(err))
	}

	instance := toDomainInstance(pod)

	return &instance, nil
}

func (a *adapter) GetDeploymentQuery(
	ctx context.Context,
	namespace,
	name string,
) (*cluster.Workload, error) {
	clients, err := a.clients("get deployment")
	if err != nil {
		return nil, err
	}

	deployment, err := clients.Core.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get deployment: %w", classify(err))
	}

	workload := toDomainWorkload(deployment)

	return &workload, nil
}

func (a *adapter) PatchDeploymentCommand(
	ctx context.Context,
	namespace,
	name string,
	patch []byte,
) error {
	clients, err := a.clients("patch deployment")
	if err != nil {
		return err
	}

	_, err = clients.Core.AppsV1().Deployments(namespace).Patch(
		ctx,
		name,
		types.StrategicMergePatchType,
		patch,
		metav1.PatchOptions{},
	)
	if err != nil {
		return fmt.Errorf("patch deployment: %w", classify(err))
	}

	a.logger.DebugContext(ctx, "deployment patched", "namespace", namespace, "deployment", name)

	return nil
}

func (a *adapter) PatchDeploymentScaleCommand(
	ctx context.Context,
	namespace,
	name string,
	replicas int32,
) error {
	clients, err := a.clients("scale deployment")
	if err != nil {
		return err
	}

	patch := fmt.Appendf(nil, `{"spec":{"replicas":%d}}`, replicas)

	_, err = clients.Core.AppsV1().Deployments(namespace).Patch(
		ctx,
		name,
		types.MergePatchType,
		patch,
		metav1.PatchOptions{},
		scaleSubresource,
	)
	if err != nil {
		return fmt.Errorf("scale deployment: %w", classify(err))
	}

	a.logger.DebugContext(ctx, "deployment scaled",
		"namespace", namespace,
		"deployment", name,
		"replicas", replicas,
	)

	return nil
}

func (a *adapter) DeletePodCommand(
	ctx context.Context,
	namespace,
	name string,
	graceSeconds int64,
) error {
	clients, err := a.clients("delete pod")
	if err != nil {
		return err
	}

	err = clients.Core.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{
		GracePeriodSeconds: ptr.To(graceSeconds),
	})
	if err != nil {
		return fmt.Errorf("delete pod: %w", classify(err))
	}

	return nil
}

func (a *adapter) GetPodLogsQuery(
	ctx context.Context,
	namespace,
	name,
	container string,
	tailLines int64,
) (string, error) {
	clients, err := a.clients("get pod logs")
	if err != nil {
		return "", err
	}

	opts := &corev1.PodLogOptions{
		Container: container,
	}
	if tailLines > 0 {
		opts.TailLines = ptr.To(tailLines)
	}

	raw, err := clients.Core.CoreV1().Pods(namespace).GetLogs(name, opts).DoRaw(ctx)
	if err != nil {
		return "", fmt.Errorf("get pod logs: %w", classify(err))
	}

	return string(raw), nil
}

func (a *adapter) ListEventsQuery(
	ctx context.Context,
	namespace string,
) ([]cluster.Event, error) {
	clients, err := a.clients("list events")
	if err != nil {
		return nil, err
	}

	eventList, err := clients.Core.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", classify(err))
	}

	events := make([]cluster.Event, 0, len(eventList.Items))
	for i := range eventList.Items {
		events = append(events, toDomainEvent(&eventList.Items[i]))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})

	return events, nil
}

func (a *adapter) ListPodMetricsQuery(
	ctx context.Context,
	namespace string,
) ([]cluster.PodUsage, error) {
	clients, err := a.clients("list pod metrics")
	if err != nil {
		return nil, err
	}

	metricsList, err := clients.Metrics.MetricsV1beta1().PodMetricses(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pod metrics: %w", classify(err))
	}

	usages := make([]cluster.PodUsage, 0, len(metricsList.Items))
	for i := range metricsList.Items {
		usages = append(usages, toDomainPodUsage(&metricsList.Items[i]))
	}

	return usages, nil
}

func (a *adapter) GetNodeCapacityQuery(ctx context.Context) (*cluster.NodeCapacity, error) {
	node, err := a.firstNode(ctx, "get node capacity")
	if err != nil {
		return nil, err
	}

	return toDomainNodeCapacity(node), nil
}

func (a *adapter) GetStatusQuery(ctx context.Context) (*cluster.Status, error) {
	clients, err := a.clients("get cluster status")
	if err != nil {
		return nil, err
	}

	version, err := clients.Core.Discovery().ServerVersion()
	if err != nil {
		return nil, fmt.Errorf("get server version: %w", classify(err))
	}

	node, err := a.firstNode(ctx, "get cluster status")
	if err != nil {
		return nil, err
	}

	return &cluster.Status{
		GitVersion:    version.GitVersion,
		OSImage:       node.Status.NodeInfo.OSImage,
		KernelVersion: node.Status.NodeInfo.KernelVersion,
		NodeCreatedAt: node.CreationTimestamp.Time,
		NodeReady:     isNodeReady(node),
	}, nil
}

func (a *adapter) firstNode(ctx context.Context, op string) (*corev1.Node, error) {
	clients, err := a.clients(op)
	if err != nil {
		return nil, err
	}

	nodeList, err := clients.Core.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: list nodes: %w", op, classify(err))
	}

	if len(nodeList.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, &NotFoundError{err: errNoNodes})
	}

	return &nodeList.Items[0], nil
}

// Ping checks that the API server answers a version request.
func (a *adapter) Ping(ctx context.Context) error {
	clients, err := a.clients("ping")
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	if _, err := clients.Core.Discovery().ServerVersion(); err != nil {
		return fmt.Errorf("ping: %w", classify(err))
	}

	return nil
}

package k8s

import (
	"fmt"
	"strconv"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/kguard/internal/logic/cluster"
)

func toDomainInstance(pod *corev1.Pod) cluster.Instance {
	restarts := make(map[string]int32, len(pod.Status.ContainerStatuses))
	for i := range pod.Status.ContainerStatuses {
		status := &pod.Status.ContainerStatuses[i]
		restarts[status.Name] = status.RestartCount
	}

	containers := make([]cluster.Container, 0, len(pod.Spec.Containers))
	for i := range pod.Spec.Containers {
		c := &pod.Spec.Containers[i]
		containers = append(containers, cluster.Container{
			Name:         c.Name,
			Image:        c.Image,
			RestartCount: restarts[c.Name],
		})
	}

	owners := make([]cluster.OwnerReference, 0, len(pod.OwnerReferences))
	for _, ref := range pod.OwnerReferences {
		owners = append(owners, cluster.OwnerReference{
			Kind: ref.Kind,
			Name: ref.Name,
		})
	}

	return cluster.Instance{
		Name:       pod.Name,
		Namespace:  pod.Namespace,
		Phase:      cluster.Phase(pod.Status.Phase),
		PodIP:      pod.Status.PodIP,
		Containers: containers,
		Owners:     owners,
		Labels:     pod.Labels,
		CreatedAt:  pod.CreationTimestamp.Time,
	}
}

func toDomainWorkload(deployment *appsv1.Deployment) cluster.Workload {
	var replicas int32 = 1
	if deployment.Spec.Replicas != nil {
		replicas = *deployment.Spec.Replicas
	}

	containers := make([]cluster.Container, 0, len(deployment.Spec.Template.Spec.Containers))
	for i := range deployment.Spec.Template.Spec.Containers {
		c := &deployment.Spec.Template.Spec.Containers[i]
		containers = append(containers, cluster.Container{
			Name:  c.Name,
			Image: c.Image,
		})
	}

	return cluster.Workload{
		UID:            string(deployment.UID),
		Name:           deployment.Name,
		Namespace:      deployment.Namespace,
		Replicas:       replicas,
		Containers:     containers,
		TemplateLabels: deployment.Spec.Template.Labels,
	}
}

func toDomainEvent(event *corev1.Event) cluster.Event {
	return cluster.Event{
		ObjectKind: event.InvolvedObject.Kind,
		ObjectName: event.InvolvedObject.Name,
		Reason:     event.Reason,
		Message:    event.Message,
		Time:       eventTime(event),
	}
}

// eventTime picks the most specific timestamp an event carries.
func eventTime(event *corev1.Event) time.Time {
	switch {
	case !event.LastTimestamp.IsZero():
		return event.LastTimestamp.Time
	case !event.EventTime.IsZero():
		return event.EventTime.Time
	case !event.FirstTimestamp.IsZero():
		return event.FirstTimestamp.Time
	}

	return event.CreationTimestamp.Time
}

// Usage strings use only nanocores and plain bytes. Quantity.String picks
// its own canonical suffix (u, Ti, ...) which the unit normalizer rejects.
func cpuNanos(q *resource.Quantity) string {
	return fmt.Sprintf("%dn", q.ScaledValue(resource.Nano))
}

func memoryBytes(q *resource.Quantity) string {
	return strconv.FormatInt(q.Value(), 10)
}

func toDomainPodUsage(podMetrics *metricsv1beta1.PodMetrics) cluster.PodUsage {
	containers := make([]cluster.ContainerUsage, 0, len(podMetrics.Containers))

	for i := range podMetrics.Containers {
		c := &podMetrics.Containers[i]
		containers = append(containers, cluster.ContainerUsage{
			Name:   c.Name,
			CPU:    cpuNanos(c.Usage.Cpu()),
			Memory: memoryBytes(c.Usage.Memory()),
		})
	}

	return cluster.PodUsage{
		Name:       podMetrics.Name,
		Namespace:  podMetrics.Namespace,
		Containers: containers,
	}
}

func toDomainNodeCapacity(node *corev1.Node) *cluster.NodeCapacity {
	return &cluster.NodeCapacity{
		CPUCores: node.Status.Capacity.Cpu().Value(),
		MemoryKi: node.Status.Capacity.Memory().Value() / 1024,
	}
}

func isNodeReady(node *corev1.Node) bool {
	for _, condition := range node.Status.Conditions {
		if condition.Type == corev1.NodeReady {
			return condition.Status == corev1.ConditionTrue
		}
	}

	return false
}

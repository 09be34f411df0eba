package discovery

import (
	"strings"

	"github.com/skillcoder/kguard/internal/logic/cluster"
)

// DefaultDeniedNamespaces hides cluster plumbing from discovery.
var DefaultDeniedNamespaces = []string{
	"kube-system",
	"kube-public",
	"kube-node-lease",
	"local-path-storage",
	"cert-manager",
	"ingress-nginx",
}

// NamespacePolicy decides which namespaces are visible to discovery.
type NamespacePolicy struct {
	allow map[string]struct{}
	deny  map[string]struct{}
}

// NewNamespacePolicy builds a policy. A non-empty allow list takes precedence
// and the deny list is ignored; an empty deny list falls back to DefaultDeniedNamespaces.
func NewNamespacePolicy(allow, deny []string) NamespacePolicy {
	if set := toSet(allow); len(set) > 0 {
		return NamespacePolicy{allow: set}
	}

	set := toSet(deny)
	if len(set) == 0 {
		set = toSet(DefaultDeniedNamespaces)
	}

	return NamespacePolicy{deny: set}
}

// Allows reports whether namespace is visible.
func (p NamespacePolicy) Allows(namespace string) bool {
	if p.allow != nil {
		_, ok := p.allow[namespace]

		return ok
	}

	_, denied := p.deny[namespace]

	return !denied
}

func toSet(items []string) map[string]struct{} {
	var set map[string]struct{}

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		if set == nil {
			set = make(map[string]struct{}, len(items))
		}

		set[item] = struct{}{}
	}

	return set
}

// DisplayName picks a human-friendly name for a pod. It is not unique.
func DisplayName(podName string, labels map[string]string) string {
	if name := labels["app"]; name != "" {
		return name
	}

	if name := labels["app.kubernetes.io/name"]; name != "" {
		return name
	}

	name, _, _ := strings.Cut(podName, "-")

	return name
}

// Classify maps a pod phase to a health status.
func Classify(phase cluster.Phase) Status {
	switch phase {
	case cluster.PhaseRunning:
		return StatusSecure
	case cluster.PhasePending:
		return StatusStabilizing
	default:
		return StatusAlert
	}
}

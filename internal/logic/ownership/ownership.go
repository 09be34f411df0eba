// Package ownership resolves the Deployment that manages a pod.
//
// The chain is pod -> ReplicaSet -> Deployment. A ReplicaSet created by a
// Deployment is named "<deployment>-<pod-template-hash>", so the workload name
// is the owner name with its last dash segment removed. Deriving the name from
// the owner instead of the pod avoids guessing how many segments the pod name
// adds on top.
package ownership

import (
	"fmt"
	"strings"

	"github.com/skillcoder/kguard/internal/logic/cluster"
)

// KindDeployment is the kind of every workload resolved by this package.
const KindDeployment = "Deployment"

// ResolveWorkloadFor returns the Deployment that manages instance.
// It fails with cluster.ErrNoOwner when the first owner is missing, is not a
// ReplicaSet, or has a name that cannot be reduced to a workload name.
func ResolveWorkloadFor(instance cluster.Instance) (cluster.WorkloadRef, error) {
	if len(instance.Owners) == 0 {
		return cluster.WorkloadRef{}, fmt.Errorf(
			"%w: pod %s/%s has no owner references",
			cluster.ErrNoOwner, instance.Namespace, instance.Name,
		)
	}

	owner := instance.Owners[0]
	if owner.Kind != cluster.KindReplicaSet {
		return cluster.WorkloadRef{}, fmt.Errorf(
			"%w: pod %s/%s is owned by %s %q, only ReplicaSet owners are supported",
			cluster.ErrNoOwner, instance.Namespace, instance.Name, owner.Kind, owner.Name,
		)
	}

	name, ok := StripGeneratedSuffix(owner.Name)
	if !ok {
		return cluster.WorkloadRef{}, fmt.Errorf(
			"%w: owner %q of pod %s/%s has no generated suffix",
			cluster.ErrNoOwner, owner.Name, instance.Namespace, instance.Name,
		)
	}

	return cluster.WorkloadRef{
		Kind:      KindDeployment,
		Name:      name,
		Namespace: instance.Namespace,
	}, nil
}

// StripGeneratedSuffix drops the last dash-separated segment of name.
// It reports false when nothing would remain on either side of the dash.
func StripGeneratedSuffix(name string) (string, bool) {
	idx := strings.LastIndex(name, "-")
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}

	return name[:idx], true
}

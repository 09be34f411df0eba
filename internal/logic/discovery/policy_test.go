package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillcoder/kguard/internal/logic/cluster"
	"github.com/skillcoder/kguard/internal/logic/discovery"
)

func TestNamespacePolicy_Allows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveAllow []string
		giveDeny  []string
		giveNS    string
		want      bool
	}{
		{name: "default deny hides kube-system", giveNS: "kube-system", want: false},
		{name: "default deny hides ingress-nginx", giveNS: "ingress-nginx", want: false},
		{name: "default deny shows user namespace", giveNS: "team", want: true},
		{
			name:      "allow list wins over deny list",
			giveAllow: []string{"default"},
			giveDeny:  []string{"other"},
			giveNS:    "kube-system",
			want:      false,
		},
		{name: "allow list admits listed", giveAllow: []string{"default"}, giveNS: "default", want: true},
		{name: "custom deny replaces defaults", giveDeny: []string{"secret"}, giveNS: "kube-system", want: true},
		{name: "custom deny hides listed", giveDeny: []string{"secret"}, giveNS: "secret", want: false},
		{name: "blank allow entries ignored", giveAllow: []string{" ", ""}, giveNS: "kube-system", want: false},
		{name: "allow entries trimmed", giveAllow: []string{" team "}, giveNS: "team", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			policy := discovery.NewNamespacePolicy(tt.giveAllow, tt.giveDeny)
			assert.Equal(t, tt.want, policy.Allows(tt.giveNS))
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		givePod    string
		giveLabels map[string]string
		want       string
	}{
		{name: "app label", givePod: "web-7f9c-xk2p1", giveLabels: map[string]string{"app": "frontend"}, want: "frontend"},
		{
			name:       "recommended label",
			givePod:    "web-7f9c-xk2p1",
			giveLabels: map[string]string{"app.kubernetes.io/name": "shop"},
			want:       "shop",
		},
		{
			name:    "app label preferred",
			givePod: "web-7f9c-xk2p1",
			giveLabels: map[string]string{
				"app":                    "frontend",
				"app.kubernetes.io/name": "shop",
			},
			want: "frontend",
		},
		{name: "first segment", givePod: "api-gateway-5d8f-abcde", want: "api"},
		{name: "no dash", givePod: "standalone", want: "standalone"},
		{name: "empty app label ignored", givePod: "db-0", giveLabels: map[string]string{"app": ""}, want: "db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, discovery.DisplayName(tt.givePod, tt.giveLabels))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give cluster.Phase
		want discovery.Status
	}{
		{give: cluster.PhaseRunning, want: discovery.StatusSecure},
		{give: cluster.PhasePending, want: discovery.StatusStabilizing},
		{give: cluster.PhaseSucceeded, want: discovery.StatusAlert},
		{give: cluster.PhaseFailed, want: discovery.StatusAlert},
		{give: cluster.PhaseUnknown, want: discovery.StatusAlert},
		{give: "", want: discovery.StatusAlert},
	}

	for _, tt := range tests {
		t.Run(string(tt.give), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, discovery.Classify(tt.give))
		})
	}
}

func TestPickContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give []cluster.Container
		want string
	}{
		{name: "empty", want: ""},
		{name: "single", give: []cluster.Container{{Name: "istio-proxy"}}, want: "istio-proxy"},
		{
			name: "prefers backend-like name",
			give: []cluster.Container{{Name: "istio-proxy"}, {Name: "payments-api"}},
			want: "payments-api",
		},
		{
			name: "case insensitive",
			give: []cluster.Container{{Name: "sidecar"}, {Name: "MainServer"}},
			want: "MainServer",
		},
		{
			name: "falls back to first",
			give: []cluster.Container{{Name: "sidecar"}, {Name: "worker"}},
			want: "sidecar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, discovery.PickContainer(tt.give))
		})
	}
}

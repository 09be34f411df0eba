// Package kubeclient builds Kubernetes clients lazily and shares them.
package kubeclient

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
)

// Clients holds the typed clientsets used by the cluster adapter.
type Clients struct {
	Core    kubernetes.Interface
	Metrics metricsv.Interface
}

// Provider builds Clients on first use and reuses them afterwards.
// A failed build is not cached, so the next Get retries.
type Provider struct {
	logger      *slog.Logger
	build       func() (*Clients, error)
	mu          sync.Mutex
	initialized bool
	clients     *Clients
}

// New creates a provider that loads credentials from kubeConfig and kubeMaster,
// falling back to the in-cluster service account and then the default kubeconfig.
func New(logger *slog.Logger, kubeConfig, kubeMaster string) *Provider {
	return &Provider{
		logger: logger,
		build: func() (*Clients, error) {
			restConfig, err := BuildRestConfig(kubeConfig, kubeMaster)
			if err != nil {
				return nil, err
			}

			return NewClients(restConfig)
		},
	}
}

// NewStatic creates a provider that always returns the given clientsets.
func NewStatic(core kubernetes.Interface, metrics metricsv.Interface) *Provider {
	return &Provider{
		logger:      slog.Default(),
		initialized: true,
		clients: &Clients{
			Core:    core,
			Metrics: metrics,
		},
	}
}

// Get returns the shared clients, building them if needed.
func (p *Provider) Get() (*Clients, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return p.clients, nil
	}

	clients, err := p.build()
	if err != nil {
		p.logger.Warn("kubernetes client init failed", "reason", err)

		return nil, fmt.Errorf("init kubernetes client: %w", err)
	}

	p.clients = clients
	p.initialized = true

	p.logger.Info("kubernetes client initialized")

	return p.clients, nil
}

// BuildRestConfig resolves the API server connection settings.
func BuildRestConfig(kubeConfig, kubeMaster string) (*rest.Config, error) {
	if kubeConfig != "" || kubeMaster != "" {
		restConfig, err := clientcmd.BuildConfigFromFlags(kubeMaster, kubeConfig)
		if err != nil {
			return nil, fmt.Errorf("build k8s config: %w", err)
		}

		return restConfig, nil
	}

	restConfig, err := rest.InClusterConfig()
	if err == nil {
		return restConfig, nil
	}

	if !errors.Is(err, rest.ErrNotInCluster) {
		return nil, fmt.Errorf("build in-cluster config: %w", err)
	}

	restConfig, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load default kubeconfig: %w", err)
	}

	return restConfig, nil
}

// NewClients creates the typed clientsets for restConfig.
func NewClients(restConfig *rest.Config) (*Clients, error) {
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	return &Clients{
		Core:    clientset,
		Metrics: metricsClientset,
	}, nil
}

package app

import (
	"fmt"
	"log/slog"

	"github.com/skillcoder/kguard/internal/adapters/outbound/auditstore"
	"github.com/skillcoder/kguard/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kguard/internal/adapters/outbound/trivy"
	"github.com/skillcoder/kguard/internal/config"
	"github.com/skillcoder/kguard/internal/infra/kubeclient"
	"github.com/skillcoder/kguard/internal/logic/discovery"
	"github.com/skillcoder/kguard/internal/logic/remediation"
	"github.com/skillcoder/kguard/internal/logic/scan"
)

// Engine holds the domain services wired to their adapters.
// The cluster is not contacted until the first query.
type Engine struct {
	Discovery   *discovery.Service
	Remediation *remediation.Service
	Scan        *scan.Service

	store *auditstore.Store
}

// NewEngine wires the services for cfg.
func NewEngine(logger *slog.Logger, cfg *config.Config) (*Engine, error) {
	provider := kubeclient.New(logger, cfg.KubeConfig, cfg.KubeMaster)

	return newEngine(logger, cfg, provider)
}

func newEngine(logger *slog.Logger, cfg *config.Config, provider *kubeclient.Provider) (*Engine, error) {
	repo := k8s.New(logger, provider)

	engine := &Engine{}

	var auditor remediation.Auditor

	if cfg.AuditDB != "" {
		store, err := auditstore.Open(logger, cfg.AuditDB)
		if err != nil {
			return nil, fmt.Errorf("open audit store: %w", err)
		}

		engine.store = store
		auditor = store
	}

	policy := discovery.NewNamespacePolicy(cfg.NamespaceAllow, cfg.NamespaceDeny)

	engine.Discovery = discovery.New(logger, repo, policy, cfg.LogTailLines)
	engine.Remediation = remediation.New(logger, repo, auditor, cfg.EventsLimit)
	engine.Scan = scan.New(logger, trivy.New(logger, cfg.TrivyPath, cfg.ScanTimeout))

	return engine, nil
}

// AuditLister returns nil when the audit trail is disabled.
func (e *Engine) AuditLister() AuditLister {
	if e.store == nil {
		return nil
	}

	return e.store
}

// AuditStore returns the audit store, or nil when the trail is disabled.
func (e *Engine) AuditStore() *auditstore.Store {
	return e.store
}

// Close releases the audit store.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}

	if err := e.store.Close(); err != nil {
		return fmt.Errorf("close audit store: %w", err)
	}

	return nil
}

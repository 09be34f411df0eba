package appstate

import (
	"context"

	"github.com/skillcoder/kguard/internal/infra/pinger"
	"github.com/skillcoder/kguard/internal/infra/shutdown"
)

// pingerServer is an internal interface for pinger management
type pingerServer interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
	Register(pinger pinger.Pinger) error
	GetAllStats() map[string]*pinger.Statistics
	IsReady() bool
	IsHealthy() bool
}

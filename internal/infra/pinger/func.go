package pinger

import (
	"context"
	"time"
)

// funcPinger adapts a PingFunc to the Pinger interface.
type funcPinger struct {
	name           string
	ping           PingFunc
	timeout        time.Duration
	readyCritical  bool
	healthCritical bool
}

// Option tunes a pinger created by NewFunc.
type Option func(*funcPinger)

// WithTimeout overrides the per-probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *funcPinger) {
		p.timeout = timeout
	}
}

// NotReadyCritical keeps readiness unaffected by probe failures.
func NotReadyCritical() Option {
	return func(p *funcPinger) {
		p.readyCritical = false
	}
}

// NotHealthCritical keeps liveness unaffected by probe failures.
func NotHealthCritical() Option {
	return func(p *funcPinger) {
		p.healthCritical = false
	}
}

// NewFunc creates a Pinger from a name and a probe function.
func NewFunc(name string, ping PingFunc, opts ...Option) Pinger {
	p := &funcPinger{
		name:           name,
		ping:           ping,
		readyCritical:  true,
		healthCritical: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *funcPinger) Name() string {
	return p.name
}

func (p *funcPinger) Ping(ctx context.Context) error {
	return p.ping(ctx)
}

func (p *funcPinger) PingerTimeout() time.Duration {
	return p.timeout
}

func (p *funcPinger) PingerReadyCritical() bool {
	return p.readyCritical
}

func (p *funcPinger) PingerCritical() bool {
	return p.healthCritical
}

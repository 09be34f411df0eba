package pinger

import "context"

// Pinger is a named health probe.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// PingFunc is the probe body of a Pinger.
type PingFunc func(ctx context.Context) error

package pinger

import (
	"sync"
	"time"
)

// Stats tracks the outcome history of a single pinger.
type Stats struct {
	mu                sync.RWMutex
	lastRun           time.Time
	lastSuccess       time.Time
	lastError         error
	lastLatency       time.Duration
	successCount      int
	errorCount        int
	consecutiveErrors int
}

func (s *Stats) record(now time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = now
	s.lastLatency = latency
	s.lastError = err

	if err != nil {
		s.errorCount++
		s.consecutiveErrors++

		return
	}

	s.successCount++
	s.consecutiveErrors = 0
	s.lastSuccess = now
}

// Statistics is a point-in-time copy of Stats with derived flags.
type Statistics struct {
	IsReady           bool          `json:"ready"`
	IsHealthy         bool          `json:"healthy"`
	LastRun           time.Time     `json:"last_run"`
	LastSuccess       time.Time     `json:"last_success"`
	LastError         string        `json:"last_error,omitempty"`
	LastLatency       time.Duration `json:"last_latency_ns"`
	SuccessCount      int           `json:"success_count"`
	ErrorCount        int           `json:"error_count"`
	ConsecutiveErrors int           `json:"consecutive_errors"`
}

func (s *Stats) snapshot(info *pingerInfo) *Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// A pinger that has never run is not ready yet but is not unhealthy either.
	neverRun := s.lastRun.IsZero()
	failing := s.lastError != nil

	out := &Statistics{
		IsReady:           !info.readyCritical || (!neverRun && !failing),
		IsHealthy:         !info.healthCritical || !failing,
		LastRun:           s.lastRun,
		LastSuccess:       s.lastSuccess,
		LastLatency:       s.lastLatency,
		SuccessCount:      s.successCount,
		ErrorCount:        s.errorCount,
		ConsecutiveErrors: s.consecutiveErrors,
	}

	if failing {
		out.LastError = s.lastError.Error()
	}

	return out
}

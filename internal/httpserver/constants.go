package httpserver

import "time"

const (
	defaultPort = "8080"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	// image scans and log tails are served synchronously
	writeTimeout   = 10 * time.Minute
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 12 // 4kb

	maxBodyBytes = 1 << 16 // 64kb

	defaultScaleReplicas int32 = 1
	defaultAuditLimit          = 50
)

package config

import "time"

// Config keys. Every key is read from the environment with the KGUARD_ prefix
// (e.g. KGUARD_HTTP_PORT) or from the same lower-case key in a YAML config file.
// Duration values support explicit units (e.g. 5m, 40s, 2h).
const envPrefix = "KGUARD"

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const keyKubeConfig = "kubeconfig"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const keyKubeMaster = "kube_master"

// Log level: debug, info, warn, error.
const keyLogLevel = "log_level"

// Log format: json or text.
const keyLogFormat = "log_format"

// Port for the API and health HTTP server.
const keyHTTPPort = "http_port"

// Port for Prometheus metrics (GET /metrics).
const keyMetricsPort = "metrics_port"

// Comma separated namespaces to show. A non-empty allow list wins over the deny list.
const keyNamespaceAllow = "namespace_allow"

// Comma separated namespaces to hide. Empty means the system namespaces.
const keyNamespaceDeny = "namespace_deny"

// Comma separated browser origins allowed to call the API (e.g. https://dash.example.com).
// Empty sends no CORS headers.
const keyCORSOrigins = "cors_origins"

// HS256 secret for bearer tokens. Required by the serve command.
const keyJWTSecret = "jwt_secret"

// SQLite file for the remediation audit trail. Empty disables the trail.
const keyAuditDB = "audit_db"

// Trivy binary used for image scans.
const keyTrivyPath = "trivy_path"

// Upper bound for a single image scan. Units: s, m, h (e.g. 5m).
const keyScanTimeout = "scan_timeout"

// Lines of log tail returned for a pod.
const keyLogTailLines = "log_tail_lines"

// Number of recent events returned for a workload.
const keyEventsLimit = "events_limit"

// API server probe interval. Units: s, m, h (e.g. 10s, 1m).
const (
	keyPingerInterval    = "pinger_interval"
	envMinPingerInterval = time.Second
)

// Standard k8s env keys used as fallback when KGUARD_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultHTTPPort       = "8080"
	defaultMetricsPort    = "9090"
	defaultPingerInterval = "10s"
	defaultTrivyPath      = "trivy"
	defaultScanTimeout    = "5m"
	defaultLogTailLines   = "100"
	defaultEventsLimit    = "15"
)

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kguard/internal/config"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr error
	wantCfg *config.Config
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"KUBECONFIG", "KUBERNETES_MASTER",
		"KGUARD_KUBECONFIG", "KGUARD_KUBE_MASTER", "KGUARD_LOG_LEVEL", "KGUARD_LOG_FORMAT",
		"KGUARD_HTTP_PORT", "KGUARD_METRICS_PORT", "KGUARD_PINGER_INTERVAL",
		"KGUARD_NAMESPACE_ALLOW", "KGUARD_NAMESPACE_DENY", "KGUARD_CORS_ORIGINS", "KGUARD_JWT_SECRET",
		"KGUARD_AUDIT_DB", "KGUARD_TRIVY_PATH", "KGUARD_SCAN_TIMEOUT",
		"KGUARD_LOG_TAIL_LINES", "KGUARD_EVENTS_LIMIT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func defaults() *config.Config {
	return &config.Config{
		LogLevel:       "info",
		LogFormat:      "json",
		HTTPPort:       "8080",
		MetricsPort:    "9090",
		PingerInterval: 10 * time.Second,
		TrivyPath:      "trivy",
		ScanTimeout:    5 * time.Minute,
		LogTailLines:   100,
		EventsLimit:    15,
	}
}

//nolint:paralleltest // t.Setenv
func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			wantCfg: defaults(),
		},
		{
			name: "overrides",
			giveEnv: map[string]string{
				"KGUARD_HTTP_PORT":       "9000",
				"KGUARD_PINGER_INTERVAL": "1m",
				"KGUARD_NAMESPACE_ALLOW": "default, team ,,",
				"KGUARD_CORS_ORIGINS":    "https://dash.example.com,http://localhost:5173",
				"KGUARD_JWT_SECRET":      "s3cret",
				"KGUARD_AUDIT_DB":        "/var/lib/kguard/audit.db",
				"KGUARD_EVENTS_LIMIT":    "5",
				"KGUARD_LOG_TAIL_LINES":  "20",
				"KGUARD_SCAN_TIMEOUT":    "90s",
			},
			wantCfg: func() *config.Config {
				cfg := defaults()
				cfg.HTTPPort = "9000"
				cfg.PingerInterval = time.Minute
				cfg.NamespaceAllow = []string{"default", "team"}
				cfg.CORSOrigins = []string{"https://dash.example.com", "http://localhost:5173"}
				cfg.JWTSecret = "s3cret"
				cfg.AuditDB = "/var/lib/kguard/audit.db"
				cfg.EventsLimit = 5
				cfg.LogTailLines = 20
				cfg.ScanTimeout = 90 * time.Second

				return cfg
			}(),
		},
		{
			name: "standard kube env fallback",
			giveEnv: map[string]string{
				"KUBECONFIG":        "/home/op/.kube/config",
				"KUBERNETES_MASTER": "https://10.0.0.1:6443",
			},
			wantCfg: func() *config.Config {
				cfg := defaults()
				cfg.KubeConfig = "/home/op/.kube/config"
				cfg.KubeMaster = "https://10.0.0.1:6443"

				return cfg
			}(),
		},
		{
			name: "prefixed kube env wins over fallback",
			giveEnv: map[string]string{
				"KUBECONFIG":        "/home/op/.kube/config",
				"KGUARD_KUBECONFIG": "/etc/kguard/kubeconfig",
			},
			wantCfg: func() *config.Config {
				cfg := defaults()
				cfg.KubeConfig = "/etc/kguard/kubeconfig"

				return cfg
			}(),
		},
		{
			name:    "invalid pinger interval",
			giveEnv: map[string]string{"KGUARD_PINGER_INTERVAL": "x"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "pinger interval below minimum",
			giveEnv: map[string]string{"KGUARD_PINGER_INTERVAL": "500ms"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "non-positive events limit",
			giveEnv: map[string]string{"KGUARD_EVENTS_LIMIT": "0"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "non-numeric log tail",
			giveEnv: map[string]string{"KGUARD_LOG_TAIL_LINES": "many"},
			wantErr: config.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load("")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantCfg, got)
		})
	}
}

//nolint:paralleltest // t.Setenv
func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "kguard.yaml")
	content := []byte(`http_port: "8181"
namespace_deny:
  - kube-system
  - monitoring
cors_origins:
  - https://dash.example.com
events_limit: 30
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("KGUARD_EVENTS_LIMIT", "7")

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "8181", got.HTTPPort)
	require.Equal(t, []string{"kube-system", "monitoring"}, got.NamespaceDeny)
	require.Equal(t, []string{"https://dash.example.com"}, got.CORSOrigins)
	require.Equal(t, 7, got.EventsLimit)
}

//nolint:paralleltest // t.Setenv
func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_ValidateServe(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, (&config.Config{}).ValidateServe(), config.ErrJWTSecretRequired)
	require.ErrorIs(t, (&config.Config{JWTSecret: "  "}).ValidateServe(), config.ErrJWTSecretRequired)
	require.NoError(t, (&config.Config{JWTSecret: "s3cret"}).ValidateServe())
}

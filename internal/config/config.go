package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	KubeConfig     string
	KubeMaster     string
	LogLevel       string
	LogFormat      string
	HTTPPort       string
	MetricsPort    string
	PingerInterval time.Duration
	NamespaceAllow []string
	NamespaceDeny  []string
	CORSOrigins    []string
	JWTSecret      string
	AuditDB        string
	TrivyPath      string
	ScanTimeout    time.Duration
	LogTailLines   int64
	EventsLimit    int
}

// Load reads configuration from KGUARD_* env vars and, when configFile is
// not empty, from that YAML file. Env vars take precedence over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if err := setup(v); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		KubeConfig:     v.GetString(keyKubeConfig),
		KubeMaster:     v.GetString(keyKubeMaster),
		LogLevel:       v.GetString(keyLogLevel),
		LogFormat:      v.GetString(keyLogFormat),
		HTTPPort:       v.GetString(keyHTTPPort),
		MetricsPort:    v.GetString(keyMetricsPort),
		NamespaceAllow: getList(v, keyNamespaceAllow),
		NamespaceDeny:  getList(v, keyNamespaceDeny),
		CORSOrigins:    getList(v, keyCORSOrigins),
		JWTSecret:      v.GetString(keyJWTSecret),
		AuditDB:        v.GetString(keyAuditDB),
		TrivyPath:      v.GetString(keyTrivyPath),
	}

	var err error

	cfg.PingerInterval, err = parseDuration(v, keyPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.ScanTimeout, err = parseDuration(v, keyScanTimeout, time.Second)
	if err != nil {
		return nil, err
	}

	cfg.LogTailLines, err = parsePositiveInt(v, keyLogTailLines)
	if err != nil {
		return nil, err
	}

	eventsLimit, err := parsePositiveInt(v, keyEventsLimit)
	if err != nil {
		return nil, err
	}

	cfg.EventsLimit = int(eventsLimit)

	return cfg, nil
}

// ValidateServe checks the settings the API server cannot run without.
func (c *Config) ValidateServe() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("validate serve config: %w (set %s_%s)",
			ErrJWTSecretRequired, envPrefix, strings.ToUpper(keyJWTSecret))
	}

	return nil
}

func setup(v *viper.Viper) error {
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	bindings := map[string][]string{
		keyKubeConfig: {envName(keyKubeConfig), envKeyKubeConfigFallback},
		keyKubeMaster: {envName(keyKubeMaster), envKeyKubeMasterFallback},
	}

	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogFormat, defaultLogFormat)
	v.SetDefault(keyHTTPPort, defaultHTTPPort)
	v.SetDefault(keyMetricsPort, defaultMetricsPort)
	v.SetDefault(keyPingerInterval, defaultPingerInterval)
	v.SetDefault(keyTrivyPath, defaultTrivyPath)
	v.SetDefault(keyScanTimeout, defaultScanTimeout)
	v.SetDefault(keyLogTailLines, defaultLogTailLines)
	v.SetDefault(keyEventsLimit, defaultEventsLimit)

	return nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

func parseDuration(v *viper.Viper, key string, minValue time.Duration) (time.Duration, error) {
	raw := v.GetString(key)

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w: %w", envName(key), ErrInvalidValue, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("parse %s: %w: %s is below minimum %s",
			envName(key), ErrInvalidValue, d, minValue)
	}

	return d, nil
}

func parsePositiveInt(v *viper.Viper, key string) (int64, error) {
	raw := v.GetString(key)

	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w: %w", envName(key), ErrInvalidValue, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("parse %s: %w: must be positive, got %d", envName(key), ErrInvalidValue, n)
	}

	return n, nil
}

// getList accepts a YAML sequence or a comma separated string.
func getList(v *viper.Viper, key string) []string {
	var parts []string

	if _, ok := v.Get(key).([]any); ok {
		parts = v.GetStringSlice(key)
	} else {
		parts = strings.Split(v.GetString(key), ",")
	}

	items := make([]string, 0, len(parts))

	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil
	}

	return items
}

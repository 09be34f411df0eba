package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/kguard/internal/app"
	"github.com/skillcoder/kguard/internal/config"
	"github.com/skillcoder/kguard/internal/infra/logging"
)

const (
	// cliLogLevel keeps one-shot commands quiet unless --log-level is given.
	cliLogLevel = "warn"

	// cliPrincipal is recorded in the audit trail for remediation run from the CLI.
	cliPrincipal = "cli"
)

type engineFactory func(logger *slog.Logger, cfg *config.Config) (*app.Engine, error)

type rootOptions struct {
	configFile string
	kubeConfig string
	output     string
	logLevel   string

	stdout    io.Writer
	stderr    io.Writer
	signals   <-chan os.Signal
	appStart  time.Time
	newEngine engineFactory
}

// Execute runs the kguard command line.
func Execute(ctx context.Context, signals <-chan os.Signal, appStart time.Time) error {
	opts := &rootOptions{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		signals:   signals,
		appStart:  appStart,
		newEngine: app.NewEngine,
	}

	return newRootCmd(opts).ExecuteContext(ctx)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kguard",
		Short: "Kubernetes cluster health and remediation engine",
		Long: `kguard surfaces workload health and resource usage and runs
operator-triggered remediation: pod restart, scale-down and image patch.

Run "kguard serve" for the dashboard API or use the one-shot commands directly
against the cluster from your kubeconfig.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return validateFormat(opts.output)
		},
	}

	cmd.SetOut(opts.stdout)
	cmd.SetErr(opts.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file (env KGUARD_* overrides it)")
	flags.StringVar(&opts.kubeConfig, "kubeconfig", "", "path to kubeconfig (default KGUARD_KUBECONFIG, KUBECONFIG or in-cluster)")
	flags.StringVarP(&opts.output, "output", "o", formatTable, "output format: table, json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newServeCmd(opts),
		newHealthCmd(opts),
		newWorkloadsCmd(opts),
		newMetricsCmd(opts),
		newLogsCmd(opts),
		newRestartCmd(opts),
		newScaleCmd(opts),
		newPatchImageCmd(opts),
		newEventsCmd(opts),
		newScanCmd(opts),
		newAuditCmd(opts),
	)

	return cmd
}

// loadConfig reads the configuration and applies the command line overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if o.kubeConfig != "" {
		cfg.KubeConfig = o.kubeConfig
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	return cfg, nil
}

// engine builds the services for a one-shot command. Logs go to stderr so
// stdout stays machine readable.
func (o *rootOptions) engine() (*app.Engine, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	level := cliLogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}

	logger := logging.New(o.stderr, logging.FormatText, level)

	engine, err := o.newEngine(logger, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("new engine: %w", err)
	}

	release := func() {
		if err := engine.Close(); err != nil {
			logger.Warn("close engine", "reason", err)
		}
	}

	return engine, release, nil
}

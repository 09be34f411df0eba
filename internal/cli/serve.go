package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcoder/kguard/internal/app"
	"github.com/skillcoder/kguard/internal/infra/appstate"
	"github.com/skillcoder/kguard/internal/infra/logging"
	"github.com/skillcoder/kguard/internal/infra/pinger"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API, health endpoints and metrics server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			logger := logging.New(opts.stdout, cfg.LogFormat, cfg.LogLevel)
			pingers := pinger.New(logger, cfg.PingerInterval)
			appState := appstate.New(logger, opts.appStart, opts.signals, pingers)

			application, err := app.New(logger, cfg, appState)
			if err != nil {
				return fmt.Errorf("new application: %w", err)
			}

			return application.Run(cmd.Context())
		},
	}
}

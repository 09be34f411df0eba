package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skillcoder/kguard/internal/logic/remediation"
)

func newRestartCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restart <namespace> <pod>",
		Short: "Delete a pod with zero grace so its controller recreates it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			result, err := engine.Remediation.ForceRestartCommand(cliContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResult(cmd, opts, result)
		},
	}
}

func newScaleCmd(opts *rootOptions) *cobra.Command {
	var replicas int32

	cmd := &cobra.Command{
		Use:   "scale <namespace> <pod>",
		Short: "Set the replica count of the Deployment owning a pod",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			result, err := engine.Remediation.ScaleDownCommand(cliContext(cmd), args[0], args[1], replicas)
			if err != nil {
				return err
			}

			return renderResult(cmd, opts, result)
		},
	}

	cmd.Flags().Int32Var(&replicas, "replicas", 1, "desired replica count")

	return cmd
}

func newPatchImageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patch-image <namespace> <deployment> <image>",
		Short: "Replace the image of a Deployment's first container",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			result, err := engine.Remediation.PatchImageCommand(cliContext(cmd), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return renderResult(cmd, opts, result)
		},
	}
}

func newEventsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "events <namespace> <deployment>",
		Short: "Show recent events of a Deployment and its pods",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			events := engine.Remediation.RecentEventsQuery(cmd.Context(), args[0], args[1])

			return renderText(cmd.OutOrStdout(), opts.output, "logs", events)
		},
	}
}

func cliContext(cmd *cobra.Command) context.Context {
	return remediation.WithPrincipal(cmd.Context(), cliPrincipal)
}

func renderResult(cmd *cobra.Command, opts *rootOptions, result remediation.Result) error {
	replicas := ""
	if result.Replicas != nil {
		replicas = strconv.Itoa(int(*result.Replicas))
	}

	return render(cmd.OutOrStdout(), opts.output, result,
		[]string{"Status", "Workload", "Image", "Replicas", "Message"},
		[][]string{{result.Status, result.Workload, result.Image, replicas, result.Message}})
}

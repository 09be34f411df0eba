package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skillcoder/kguard/internal/logic/discovery"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show classified health of every visible pod",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			records := engine.Discovery.ListInstancesQuery(cmd.Context())

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, []string{
					r.Namespace,
					r.DisplayName,
					r.Pod,
					string(r.Status),
					r.IP,
					strconv.Itoa(int(r.Restarts)),
					r.Message,
				})
			}

			return render(cmd.OutOrStdout(), opts.output, records,
				[]string{"Namespace", "Name", "Pod", "Status", "IP", "Restarts", "Message"}, rows)
		},
	}
}

func newWorkloadsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "workloads",
		Short: "List Deployments outside the hidden namespaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			workloads := engine.Discovery.ListWorkloadsQuery(cmd.Context())

			rows := make([][]string, 0, len(workloads))
			for _, w := range workloads {
				rows = append(rows, []string{w.Namespace, w.Name, w.Image, w.Status})
			}

			return render(cmd.OutOrStdout(), opts.output, workloads,
				[]string{"Namespace", "Name", "Image", "Status"}, rows)
		},
	}
}

func newMetricsCmd(opts *rootOptions) *cobra.Command {
	var (
		cpuQuota    int64
		memoryQuota int64
	)

	cmd := &cobra.Command{
		Use:   "metrics <namespace>",
		Short: "Show CPU and memory usage of the pods in a namespace",
		Long: `Show CPU (millicores) and memory (MiB) usage summed over each pod's containers.

Percentages are relative to --cpu-quota and --memory-quota when given,
otherwise to the capacity of the first node when it can be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			ctx := cmd.Context()

			var quota *discovery.Quota

			if cpuQuota > 0 || memoryQuota > 0 {
				quota = &discovery.Quota{CPUMillicores: cpuQuota, MemoryMiB: memoryQuota}
			} else if capacity := engine.Discovery.NodeCapacityQuery(ctx); !capacity.Fallback {
				q := capacity.Quota()
				quota = &q
			}

			samples := engine.Discovery.PodMetricsQuery(ctx, args[0], quota)

			rows := make([][]string, 0, len(samples))
			for _, s := range samples {
				rows = append(rows, []string{
					s.Pod,
					strconv.FormatInt(s.CPUMillicores, 10),
					formatPercent(s.CPUPercent),
					strconv.FormatInt(s.MemoryMiB, 10),
					formatPercent(s.MemoryPercent),
				})
			}

			return render(cmd.OutOrStdout(), opts.output, samples,
				[]string{"Pod", "CPU (m)", "CPU %", "Memory (MiB)", "Memory %"}, rows)
		},
	}

	cmd.Flags().Int64Var(&cpuQuota, "cpu-quota", 0, "CPU quota in millicores for percentages")
	cmd.Flags().Int64Var(&memoryQuota, "memory-quota", 0, "memory quota in MiB for percentages")

	return cmd
}

func newLogsCmd(opts *rootOptions) *cobra.Command {
	var container string

	cmd := &cobra.Command{
		Use:   "logs <namespace> <pod>",
		Short: "Show the log tail of a pod",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			logs := engine.Discovery.PodLogsQuery(cmd.Context(), args[0], args[1], container)

			return renderText(cmd.OutOrStdout(), opts.output, "logs", logs)
		},
	}

	cmd.Flags().StringVarP(&container, "container", "c", "", "container name (default: picked by name)")

	return cmd
}

func formatPercent(pct *float64) string {
	if pct == nil {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", *pct)
}

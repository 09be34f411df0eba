package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/kguard/internal/logic/remediation"
)

var ErrAuditDisabled = errors.New("audit trail is disabled, set KGUARD_AUDIT_DB")

func newAuditCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the most recent remediation outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			lister := engine.AuditLister()
			if lister == nil {
				return ErrAuditDisabled
			}

			entries, err := lister.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if entries == nil {
				entries = []remediation.AuditEntry{}
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Time.Local().Format(time.DateTime),
					e.Principal,
					string(e.Action),
					e.Namespace,
					e.Target,
					e.Workload,
					e.Value,
					e.Status,
				})
			}

			return render(cmd.OutOrStdout(), opts.output, entries,
				[]string{"Time", "Principal", "Action", "Namespace", "Target", "Workload", "Value", "Status"}, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries")

	return cmd
}

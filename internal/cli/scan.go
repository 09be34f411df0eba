package cli

import (
	"github.com/spf13/cobra"
)

func newScanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <image>",
		Short: "Scan an image for HIGH and CRITICAL vulnerabilities with trivy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, release, err := opts.engine()
			if err != nil {
				return err
			}
			defer release()

			report, err := engine.Scan.ScanImageCommand(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(report.Vulnerabilities))
			for _, v := range report.Vulnerabilities {
				rows = append(rows, []string{v.Severity, v.ID, v.Package, v.InstalledVersion, v.FixedVersion})
			}

			if err := render(cmd.OutOrStdout(), opts.output, report,
				[]string{"Severity", "ID", "Package", "Installed", "Fixed"}, rows); err != nil {
				return err
			}

			if opts.output == formatTable {
				cmd.Printf("%s: %d critical, %d high\n", report.Image, report.Summary.Critical, report.Summary.High)
			}

			return nil
		},
	}
}

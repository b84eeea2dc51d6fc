package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/paycalc/internal/adapters/console"
	"github.com/bft-labs/paycalc/internal/adapters/fs"
	"github.com/bft-labs/paycalc/internal/cliconfig"
	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/pkg/log"
)

func newBatchCmd(e *env) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate every row of a CSV file and export the table",
		Long: `Reads form rows (` + strings.Join(fs.FormColumns, ",") + `) from --in,
calculates and adds each valid row to the table, warns about invalid rows,
then exports the table to --out (default: the configured export path).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := fs.ReadFormsFile(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}

			stdout := cmd.OutOrStdout()
			notifier := console.NewNotifier(stdout, cmd.ErrOrStderr())
			table := console.NewTable(stdout)
			session := newSession(e, table, cliconfig.NewLive(e.cfg))

			rejected := 0
			for _, l := range lines {
				if l.Err != nil {
					rejected++
					notifier.Warn(console.TitleValidation, fmt.Sprintf("línea %d: %v", l.Line, l.Err))
					continue
				}
				if _, err := session.Calculate(l.Form); err != nil {
					rejected++
					notifier.Warn(console.TitleValidation, fmt.Sprintf("línea %d: %v", l.Line, err))
					continue
				}
				if _, err := session.Commit(); err != nil {
					return err
				}
			}
			e.logger.Info("batch calculated",
				log.Int("rows", len(session.Rows())),
				log.Int("rejected", rejected),
			)

			path, err := session.Export(cmd.Context(), out)
			if err != nil {
				notifier.Warn(console.TitleValidation, err.Error())
				return reported(err)
			}
			notifier.Info(console.TitleSuccess, domain.ExportedMessage(path))

			// The file is written; a missing footer is not a failure.
			var footer []string
			if sum, err := session.Summary(); err != nil {
				e.logger.Warn("batch summary", log.Err(err))
			} else {
				footer = sum.Cells()
			}
			return table.Render(session.Rows(), footer)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "CSV file with form rows")
	cmd.Flags().StringVar(&out, "out", "", "export file (.csv or .xlsx)")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/paycalc/internal/adapters/console"
	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/internal/payroll"
)

func newCalcCmd(e *env) *cobra.Command {
	var (
		form    domain.FormInput
		tier    string
		percent string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate one pay from flags and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Percent = e.cfg.DefaultPercent
			if cmd.Flags().Changed("percent") {
				form.Percent = percent
			}
			form.Tier = e.cfg.Tier()
			if cmd.Flags().Changed("tier") {
				t, err := domain.ParseTier(tier)
				if err != nil {
					return err
				}
				form.Tier = t
			}

			res, err := payroll.Calculate(form)
			if err != nil {
				console.NewNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr()).Warn(console.TitleValidation, err.Error())
				return reported(err)
			}

			panel, err := console.NewPanel(cmd.OutOrStdout(), e.cfg.Locale)
			if err != nil {
				return err
			}
			panel.Show(res)
			return console.NewTable(cmd.OutOrStdout()).Render([]domain.Row{domain.NewRow(res)}, nil)
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "seller name")
	f.StringVar(&form.Base, "base", "", "base pay")
	f.StringVar(&form.Sales, "sales", "", "sales of the month")
	f.StringVar(&percent, "percent", "", "commission percent (default from config)")
	f.StringVar(&tier, "tier", "", "seller tier: Junior or Senior (default from config)")
	f.BoolVar(&form.BonusEnabled, "bonus", false, "apply the goal bonus")
	f.StringVar(&form.Threshold, "threshold", "", "sales goal for the bonus")
	f.StringVar(&form.Bonus, "bonus-amount", "", "bonus amount")
	return cmd
}

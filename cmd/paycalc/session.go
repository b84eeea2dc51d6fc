package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bft-labs/paycalc/internal/adapters/console"
	"github.com/bft-labs/paycalc/internal/cliconfig"
	"github.com/bft-labs/paycalc/internal/shell"
	"github.com/bft-labs/paycalc/pkg/log"
)

func newSessionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive form: calculate, add rows to the table and export",
		Long: `Reads commands from standard input, one per line. Set the form fields
(name, base, sales, percent, tier, bonus, threshold, amount), then "calc",
"add" to log the result into the table, and "export [path]" to save it.
Type "help" for the full list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			live := cliconfig.NewLive(e.cfg)
			if e.cfg.Watch {
				w := cliconfig.NewWatcher(e.loader, live, e.logger)
				go func() {
					if err := w.Run(ctx); err != nil {
						e.logger.Warn("config watcher stopped", log.Err(err))
					}
				}()
			}

			return runSession(ctx, e, live, cmd)
		},
	}
	cmd.Flags().BoolVar(&e.flags.Watch, "watch", e.flags.Watch, "reload form defaults when the config file changes")
	return cmd
}

func runSession(ctx context.Context, e *env, live *cliconfig.Live, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	panel, err := console.NewPanel(out, e.cfg.Locale)
	if err != nil {
		return err
	}
	table := console.NewTable(out)
	session := newSession(e, table, live)
	e.logger.Info("session started", log.String("session", session.ID()))

	prompt := ""
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		prompt = "> "
	}

	sh := shell.New(shell.Config{
		Session:  session,
		Panel:    panel,
		Table:    table,
		Notifier: console.NewNotifier(out, cmd.ErrOrStderr()),
		Out:      out,
		Logger:   e.logger,
		Presets:  func() []string { return live.Get().PercentPresets },
		Prompt:   prompt,
	})
	return sh.Run(ctx, cmd.InOrStdin())
}

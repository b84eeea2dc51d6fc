package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/paycalc/internal/adapters/console"
	"github.com/bft-labs/paycalc/internal/adapters/fs"
	"github.com/bft-labs/paycalc/internal/app"
	"github.com/bft-labs/paycalc/internal/cliconfig"
	"github.com/bft-labs/paycalc/pkg/log"
)

const longHelp = `Compute a salesperson's monthly pay: base + commission + bonus.

Commission is sales x percent/100, with a 2% uplift for Senior sellers. The
bonus applies when enabled and sales reach the threshold. Results can be
logged into a table and exported as CSV or XLSX.

Configuration is read from $HOME/.paycalc/config.toml, PAYCALC_* environment
variables (optionally from a .env file) and flags, in increasing precedence.`

var exampleUsage = strings.TrimSpace(`
  paycalc session
  paycalc calc --name "Ana Pérez" --base 1000 --sales 4000 --tier senior
  paycalc batch --in vendedores.csv --out sueldos.xlsx
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// env is the resolved runtime shared by the subcommands.
type env struct {
	flags  *cliconfig.Config
	cfg    cliconfig.Config
	loader cliconfig.Loader
	logger log.Logger
	stderr io.Writer
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	flagCfg := cliconfig.DefaultConfig()
	var cfgPath string
	e := &env{flags: &flagCfg, stderr: stderr, logger: log.NewNoopLogger()}

	root := &cobra.Command{
		Use:           "paycalc",
		Short:         "Salesperson monthly pay calculator",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			e.loader = cliconfig.Loader{Path: cfgFile, Base: flagCfg, Changed: changed}
			cfg, err := e.loader.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg

			logger, err := log.NewZerologLogger(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			e.logger = logger
			e.logger.Debug("configuration",
				log.String("config", cfgFile),
				log.Any("settings", cfg),
			)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.paycalc/config.toml)")
	pf.StringVar(&flagCfg.DefaultPercent, "default-percent", flagCfg.DefaultPercent, "commission percent restored by reset")
	pf.StringSliceVar(&flagCfg.PercentPresets, "percent-presets", flagCfg.PercentPresets, "suggested commission percentages")
	pf.StringVar(&flagCfg.DefaultTier, "default-tier", flagCfg.DefaultTier, "tier restored by reset (Junior or Senior)")
	pf.StringVar(&flagCfg.ExportPath, "export-path", flagCfg.ExportPath, "default export file (.csv or .xlsx)")
	pf.StringVar(&flagCfg.Locale, "locale", flagCfg.Locale, "locale for the results panel (BCP 47)")
	pf.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&flagCfg.EnvFile, "env-file", flagCfg.EnvFile, "dotenv file with PAYCALC_* variables")

	root.AddCommand(newSessionCmd(e), newCalcCmd(e), newBatchCmd(e))
	return root
}

// newSession wires a session with the file exporters and the console table.
func newSession(e *env, table *console.Table, live *cliconfig.Live) *app.Session {
	return app.NewSession(
		app.WithLogger(e.logger),
		app.WithTableSink(table),
		app.WithExporter(".csv", fs.NewCSVExporter()),
		app.WithExporter(".xlsx", fs.NewXLSXExporter()),
		app.WithDefaults(func() app.Defaults {
			cfg := live.Get()
			return app.Defaults{Percent: cfg.DefaultPercent, Tier: cfg.Tier()}
		}),
		app.WithExportPath(func() string { return live.Get().ExportPath }),
	)
}

// reportedError marks an error the command already showed to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return reportedError{err: err}
}

// reportError logs err to w unless it was already shown.
func reportError(w io.Writer, err error) {
	var re reportedError
	if errors.As(err, &re) {
		return
	}
	logger, lerr := log.NewZerologLogger(w, "error")
	if lerr != nil {
		fmt.Fprintln(w, err)
		return
	}
	logger.Error("paycalc", log.Err(err))
}

func main() {
	root := newRootCmd(os.Stderr)
	if err := root.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

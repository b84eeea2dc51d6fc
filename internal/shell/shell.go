// Package shell is the line-oriented front end of a session: it keeps the
// form state, turns commands into session operations and reports outcomes
// through the notifier.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bft-labs/paycalc/internal/adapters/console"
	"github.com/bft-labs/paycalc/internal/app"
	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/internal/ports"
	"github.com/bft-labs/paycalc/pkg/log"
)

// Config wires a Shell.
type Config struct {
	Session  *app.Session
	Panel    *console.Panel
	Table    *console.Table
	Notifier ports.Notifier
	Out      io.Writer
	Logger   log.Logger

	// Presets returns the suggested commission percentages.
	Presets func() []string
	// Prompt is printed before each line is read; empty disables it.
	Prompt string
}

// Shell reads commands and applies them to its form and session.
type Shell struct {
	cfg      Config
	form     domain.FormInput
	commands map[string]command
}

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, arg string) bool
}

// New creates a shell whose form starts from the session defaults.
func New(cfg Config) *Shell {
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	if cfg.Presets == nil {
		cfg.Presets = func() []string { return nil }
	}
	sh := &Shell{cfg: cfg}
	sh.form = cfg.Session.Reset()
	sh.commands = sh.buildCommands()
	return sh
}

// Run executes commands from in until "quit", end of input, or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if sh.cfg.Prompt != "" {
			fmt.Fprint(sh.cfg.Out, sh.cfg.Prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if quit := sh.Exec(ctx, sc.Text()); quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the shell should stop.
// Failures are shown to the user and never stop the shell.
func (sh *Shell) Exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	cmd, ok := sh.commands[strings.ToLower(name)]
	if !ok {
		sh.cfg.Notifier.Warn(console.TitleValidation, fmt.Sprintf("Comando desconocido %q (usa \"help\").", name))
		return false
	}
	return cmd.run(ctx, arg)
}

func (sh *Shell) buildCommands() map[string]command {
	field := func(dst *string) func(context.Context, string) bool {
		return func(_ context.Context, arg string) bool {
			*dst = arg
			return false
		}
	}

	cmds := map[string]command{
		"name":      {"name <texto>", "nombre del vendedor", field(&sh.form.Name)},
		"base":      {"base <monto>", "sueldo base ($)", field(&sh.form.Base)},
		"sales":     {"sales <monto>", "ventas del mes ($)", field(&sh.form.Sales)},
		"percent":   {"percent <número>", "% de comisión", field(&sh.form.Percent)},
		"threshold": {"threshold <monto>", "meta de ventas para el bono ($)", field(&sh.form.Threshold)},
		"amount":    {"amount <monto>", "monto del bono ($)", field(&sh.form.Bonus)},
		"tier":      {"tier junior|senior", "tipo de vendedor", sh.setTier},
		"bonus":     {"bonus on|off", "aplicar bono por meta", sh.setBonus},
		"presets":   {"presets", "porcentajes sugeridos", sh.showPresets},
		"form":      {"form", "muestra los datos de entrada", sh.showForm},
		"calc":      {"calc", "calcula comisión, bono y total", sh.calculate},
		"add":       {"add", "agrega el último cálculo a la tabla", sh.commit},
		"reset":     {"reset", "restablece el formulario", sh.reset},
		"table":     {"table", "muestra la tabla", sh.showTable},
		"summary":   {"summary", "muestra los totales de la tabla", sh.showSummary},
		"export":    {"export [ruta]", "exporta la tabla (.csv o .xlsx)", sh.export},
		"quit":      {"quit", "termina la sesión", func(context.Context, string) bool { return true }},
	}
	cmds["exit"] = cmds["quit"]
	cmds["help"] = command{"help", "esta ayuda", sh.help}
	return cmds
}

func (sh *Shell) setTier(_ context.Context, arg string) bool {
	t, err := domain.ParseTier(arg)
	if err != nil {
		sh.cfg.Notifier.Warn(console.TitleValidation, err.Error())
		return false
	}
	sh.form.Tier = t
	return false
}

func (sh *Shell) setBonus(_ context.Context, arg string) bool {
	switch strings.ToLower(arg) {
	case "on", "si", "sí", "yes", "true", "1":
		sh.form.BonusEnabled = true
	case "off", "no", "false", "0":
		sh.form.BonusEnabled = false
	default:
		sh.cfg.Notifier.Warn(console.TitleValidation, "Usa \"bonus on\" o \"bonus off\".")
	}
	return false
}

func (sh *Shell) showPresets(context.Context, string) bool {
	fmt.Fprintf(sh.cfg.Out, "%% Comisión sugeridos: %s\n", strings.Join(sh.cfg.Presets(), ", "))
	return false
}

func (sh *Shell) showForm(context.Context, string) bool {
	f := sh.form
	bonus := "no"
	if f.BonusEnabled {
		bonus = "sí"
	}
	fmt.Fprintf(sh.cfg.Out, "Vendedor: %s\nSueldo base ($): %s\nVentas del mes ($): %s\n%% Comisión: %s\nTipo vendedor: %s\nAplicar bono por meta: %s\nMeta ($): %s\nBono ($): %s\n",
		f.Name, f.Base, f.Sales, f.Percent, f.Tier, bonus, f.Threshold, f.Bonus)
	return false
}

func (sh *Shell) calculate(context.Context, string) bool {
	res, err := sh.cfg.Session.Calculate(sh.form)
	if err != nil {
		sh.cfg.Notifier.Warn(console.TitleValidation, err.Error())
		return false
	}
	sh.cfg.Panel.Show(res)
	return false
}

func (sh *Shell) commit(context.Context, string) bool {
	if _, err := sh.cfg.Session.Commit(); err != nil {
		sh.cfg.Notifier.Warn(console.TitleValidation, err.Error())
	}
	return false
}

func (sh *Shell) reset(context.Context, string) bool {
	sh.form = sh.cfg.Session.Reset()
	sh.cfg.Panel.Clear()
	return false
}

func (sh *Shell) showTable(context.Context, string) bool {
	if err := sh.cfg.Table.Render(sh.cfg.Session.Rows(), nil); err != nil {
		sh.cfg.Logger.Warn("render table", log.Err(err))
	}
	return false
}

func (sh *Shell) showSummary(context.Context, string) bool {
	sum, err := sh.cfg.Session.Summary()
	if err != nil {
		sh.cfg.Notifier.Warn(console.TitleValidation, err.Error())
		return false
	}
	if err := sh.cfg.Table.Render(sh.cfg.Session.Rows(), sum.Cells()); err != nil {
		sh.cfg.Logger.Warn("render summary", log.Err(err))
	}
	return false
}

func (sh *Shell) export(ctx context.Context, arg string) bool {
	path, err := sh.cfg.Session.Export(ctx, arg)
	if err != nil {
		sh.cfg.Notifier.Warn(console.TitleValidation, err.Error())
		return false
	}
	sh.cfg.Notifier.Info(console.TitleSuccess, domain.ExportedMessage(path))
	return false
}

func (sh *Shell) help(context.Context, string) bool {
	names := make([]string, 0, len(sh.commands))
	for n := range sh.commands {
		if n == "exit" {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		c := sh.commands[n]
		fmt.Fprintf(sh.cfg.Out, "  %-20s %s\n", c.usage, c.help)
	}
	return false
}

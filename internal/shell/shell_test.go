package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/paycalc/internal/adapters/console"
	"github.com/bft-labs/paycalc/internal/adapters/fs"
	"github.com/bft-labs/paycalc/internal/app"
	"github.com/bft-labs/paycalc/internal/domain"
)

type harness struct {
	shell *Shell
	out   bytes.Buffer
	warn  bytes.Buffer
}

func newHarness(t *testing.T, opts ...app.Option) *harness {
	t.Helper()
	h := &harness{}
	panel, err := console.NewPanel(&h.out, "en")
	if err != nil {
		t.Fatalf("NewPanel() unexpected error: %v", err)
	}
	table := console.NewTable(&h.out)
	opts = append([]app.Option{app.WithTableSink(table), app.WithExporter(".csv", fs.NewCSVExporter())}, opts...)
	h.shell = New(Config{
		Session:  app.NewSession(opts...),
		Panel:    panel,
		Table:    table,
		Notifier: console.NewNotifier(&h.out, &h.warn),
		Out:      &h.out,
		Presets:  func() []string { return []string{"2.5", "5", "7.5", "10"} },
	})
	return h
}

func (h *harness) run(t *testing.T, script ...string) {
	t.Helper()
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	if err := h.shell.Run(context.Background(), in); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
}

func TestShell_StartsWithDefaults(t *testing.T) {
	h := newHarness(t)
	f := h.shell.form
	if f.Percent != "5" || f.Tier != domain.Junior || f.BonusEnabled {
		t.Errorf("initial form = %+v", f)
	}
}

func TestShell_CalculateWithBonus(t *testing.T) {
	h := newHarness(t)
	h.run(t,
		"name Ana Pérez",
		"base 500",
		"sales 3500",
		"percent 10",
		"bonus on",
		"threshold 3000",
		"amount 100",
		"calc",
	)

	out := h.out.String()
	for _, want := range []string{"Comisión: $350.00", "Bono: $100.00", "Sueldo Total: $950.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if h.warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", h.warn.String())
	}
}

func TestShell_ValidationWarning(t *testing.T) {
	h := newHarness(t)
	h.run(t, "base 1000", "calc", "name Ana", "sales abc", "calc")

	want := "[Validación] " + domain.MsgNameRequired + "\n" +
		"[Validación] " + domain.MsgNumbersInvalid + "\n"
	if h.warn.String() != want {
		t.Errorf("warnings = %q, want %q", h.warn.String(), want)
	}
}

func TestShell_AddRequiresCalcAndResetInvalidates(t *testing.T) {
	h := newHarness(t)
	h.run(t,
		"add",
		"name Ana", "base 1000", "sales 4000", "tier senior",
		"calc",
		"add",
		"reset",
		"add",
	)

	want := "[Validación] " + domain.MsgNoCalculation + "\n" +
		"[Validación] " + domain.MsgNoCalculation + "\n"
	if h.warn.String() != want {
		t.Errorf("warnings = %q, want %q", h.warn.String(), want)
	}
	if !strings.Contains(h.out.String(), "+ Ana | Senior | 1000.00 | 4000.00 | 5.00 | 0.00 | 1204.00") {
		t.Errorf("committed row not displayed:\n%s", h.out.String())
	}

	f := h.shell.form
	if f.Name != "" || f.Base != "" || f.Percent != "5" || f.Tier != domain.Junior {
		t.Errorf("form after reset = %+v", f)
	}
}

func TestShell_Export(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nomina.csv")

	h := newHarness(t)
	h.run(t,
		"export "+path,
		"name Ana", "base 1000", "sales 4000",
		"calc", "add", "add",
		"export "+path,
		"export "+filepath.Join(dir, "missing", "x.csv"),
	)

	warn := h.warn.String()
	if !strings.HasPrefix(warn, "[Validación] "+domain.MsgEmptyLedger+"\n") {
		t.Errorf("first warning = %q", warn)
	}
	if !strings.Contains(warn, "[Validación] Ocurrió un error al guardar:\n") {
		t.Errorf("missing export failure warning: %q", warn)
	}
	if !strings.Contains(h.out.String(), "[Éxito] Archivo guardado en:\n"+path+"\n") {
		t.Errorf("missing success message:\n%s", h.out.String())
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(b), "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Errorf("export has %d lines, want 3", len(lines))
	}
}

func TestShell_UnknownCommandAndQuit(t *testing.T) {
	h := newHarness(t)
	h.run(t, "fly", "tier lead", "bonus maybe", "quit", "name never")

	if strings.Count(h.warn.String(), "[Validación]") != 3 {
		t.Errorf("warnings = %q, want 3", h.warn.String())
	}
	if h.shell.form.Name != "" {
		t.Error("commands after quit were executed")
	}
}

func TestShell_SummaryAndHelp(t *testing.T) {
	h := newHarness(t)
	h.run(t,
		"name Ana", "base 0,10", "calc", "add",
		"name Luis", "base 0,20", "calc", "add",
		"summary", "presets", "help",
	)

	out := h.out.String()
	if !strings.Contains(out, "0.30") {
		t.Errorf("summary missing exact total 0.30:\n%s", out)
	}
	if !strings.Contains(out, "% Comisión sugeridos: 2.5, 5, 7.5, 10") {
		t.Errorf("presets missing:\n%s", out)
	}
	if !strings.Contains(out, "export [ruta]") {
		t.Errorf("help missing export usage:\n%s", out)
	}
}

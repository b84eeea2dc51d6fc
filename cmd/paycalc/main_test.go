package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/bft-labs/paycalc/internal/adapters/fs"
	"github.com/bft-labs/paycalc/internal/domain"
)

// execute runs the CLI with an isolated config and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := newRootCmd(&stderr)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	base := []string{
		"--config", filepath.Join(t.TempDir(), "none.toml"),
		"--env-file", "",
		"--log-level", "error",
	}
	root.SetArgs(append(args, base...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLines []string
	}{
		{
			name:      "junior defaults to 5 percent",
			args:      []string{"calc", "--name", "Ana", "--base", "1000", "--sales", "4000"},
			wantLines: []string{"Comisión: $200.00", "Sueldo Total: $1,200.00"},
		},
		{
			name:      "senior uplift",
			args:      []string{"calc", "--name", "Ana", "--base", "1000", "--sales", "4000", "--tier", "senior"},
			wantLines: []string{"Comisión: $204.00", "Sueldo Total: $1,204.00"},
		},
		{
			name: "bonus reached",
			args: []string{"calc", "--name", "Ana", "--base", "500", "--sales", "3500", "--percent", "10",
				"--bonus", "--threshold", "3000", "--bonus-amount", "100"},
			wantLines: []string{"Comisión: $350.00", "Bono: $100.00", "Sueldo Total: $950.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("calc unexpected error: %v", err)
			}
			for _, want := range tt.wantLines {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestCalcCommand_ValidationError(t *testing.T) {
	_, stderr, err := execute(t, "", "calc", "--base", "1000")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("calc error = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(stderr, domain.MsgNameRequired) {
		t.Errorf("stderr missing validation message: %q", stderr)
	}
}

func TestCalcCommand_BadTier(t *testing.T) {
	if _, _, err := execute(t, "", "calc", "--name", "Ana", "--tier", "lead"); err == nil {
		t.Error("calc expected error for unknown tier")
	}
}

func TestSessionCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sueldos.csv")
	script := strings.Join([]string{
		"name Ana", "base 1000", "sales 4000", "calc", "add",
		"export " + path,
		"quit",
	}, "\n")

	stdout, stderr, err := execute(t, script, "session")
	if err != nil {
		t.Fatalf("session unexpected error: %v (stderr %s)", err, stderr)
	}
	if !strings.Contains(stdout, "Archivo guardado en:\n"+path) {
		t.Errorf("stdout missing confirmation:\n%s", stdout)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export missing: %v", err)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "vendedores.csv")
	out := filepath.Join(dir, "sueldos.xlsx")
	content := strings.Join([]string{
		"name,tier,base,sales,percent,bonus_enabled,threshold,bonus",
		"Ana,Junior,1000,4000,5",
		"Luis,Senior,1000,4000,5",
		",Junior,1,1,1",
		"Eva,Junior,500,3500,10,yes,3000,100",
	}, "\n")
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	stdout, stderr, err := execute(t, "", "batch", "--in", in, "--out", out)
	if err != nil {
		t.Fatalf("batch unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "línea 4: "+domain.MsgNameRequired) {
		t.Errorf("stderr missing rejected line: %q", stderr)
	}
	if !strings.Contains(stdout, "3354.00") {
		t.Errorf("summary total missing:\n%s", stdout)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(fs.SheetName)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("workbook rows = %d, want 4", len(rows))
	}
}

func TestBatchCommand_NothingToExport(t *testing.T) {
	in := filepath.Join(t.TempDir(), "vacio.csv")
	if err := os.WriteFile(in, []byte("name,tier\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	_, _, err := execute(t, "", "batch", "--in", in)
	if !errors.Is(err, domain.ErrPrecondition) {
		t.Errorf("batch error = %v, want ErrPrecondition", err)
	}
}

func TestBatchCommand_OverflowRow(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "vendedores.csv")
	out := filepath.Join(dir, "sueldos.csv")
	content := "Ana,Junior,1000,4000,5\nA,Junior,1e400,10,5\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	stdout, _, err := execute(t, "", "batch", "--in", in, "--out", out)
	if err != nil {
		t.Fatalf("batch unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "1 sin sumar") || !strings.Contains(stdout, "1200.00") {
		t.Errorf("summary missing skipped note or total:\n%s", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "A,Junior,inf,10.00,5.00,0.00,inf\r\n") {
		t.Errorf("export missing overflow row:\n%s", data)
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{name: "plain error is logged", err: errors.New("read vendedores.csv: no such file"), wantLog: true},
		{name: "shown error is not repeated", err: reported(&domain.ValidationError{Msg: domain.MsgNameRequired})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("reportError wrote %q, want output %v", buf.String(), tt.wantLog)
			}
		})
	}
}

func TestCalcCommand_ValidationReportedOnce(t *testing.T) {
	_, stderr, err := execute(t, "", "calc", "--base", "1000")
	if n := strings.Count(stderr, domain.MsgNameRequired); n != 1 {
		t.Errorf("validation message shown %d times, want 1: %q", n, stderr)
	}
	var buf bytes.Buffer
	reportError(&buf, err)
	if buf.Len() != 0 {
		t.Errorf("reportError repeated a shown error: %q", buf.String())
	}
}

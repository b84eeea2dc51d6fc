package fs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bft-labs/paycalc/internal/domain"
)

// FormColumns is the column order of a batch input file. A first line
// starting with "name" is treated as a header and skipped.
var FormColumns = []string{"name", "tier", "base", "sales", "percent", "bonus_enabled", "threshold", "bonus"}

// FormLine is one line of a batch input file. Err is set when the line
// could not be turned into a form (bad tier or flag); number validation is
// left to the calculator.
type FormLine struct {
	Line int
	Form domain.FormInput
	Err  error
}

// ReadFormsFile opens path and reads it with ReadForms.
func ReadFormsFile(path string) ([]FormLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadForms(f)
}

// ReadForms parses batch form lines from r. Missing trailing columns are
// read as empty text.
func ReadForms(r io.Reader) ([]FormLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var out []FormLine
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), FormColumns[0]) {
				continue
			}
		}
		if len(rec) > len(FormColumns) {
			out = append(out, FormLine{Line: line, Err: fmt.Errorf("se esperaban como máximo %d columnas, hay %d", len(FormColumns), len(rec))})
			continue
		}
		for len(rec) < len(FormColumns) {
			rec = append(rec, "")
		}
		out = append(out, parseFormRecord(line, rec))
	}
	return out, nil
}

func parseFormRecord(line int, rec []string) FormLine {
	fl := FormLine{Line: line}

	tier := domain.Junior
	if s := strings.TrimSpace(rec[1]); s != "" {
		t, err := domain.ParseTier(s)
		if err != nil {
			fl.Err = err
			return fl
		}
		tier = t
	}

	enabled, err := parseFlag(rec[5])
	if err != nil {
		fl.Err = err
		return fl
	}

	fl.Form = domain.FormInput{
		Name:         rec[0],
		Tier:         tier,
		Base:         rec[2],
		Sales:        rec[3],
		Percent:      rec[4],
		BonusEnabled: enabled,
		Threshold:    rec[6],
		Bonus:        rec[7],
	}
	return fl
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "si", "sí", "on":
		return true, nil
	}
	return false, fmt.Errorf("valor de bonus_enabled inválido %q", s)
}

// Package app holds the interactive session: the last computed result, the
// ledger, and the operations the form front end invokes.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/internal/ledger"
	"github.com/bft-labs/paycalc/internal/payroll"
	"github.com/bft-labs/paycalc/internal/ports"
	"github.com/bft-labs/paycalc/pkg/log"
)

// Session owns the mutable state of one interactive run. Operations can be
// called in any order; only Commit requires a prior successful Calculate.
// A Session is not safe for concurrent use.
type Session struct {
	id     string
	opts   options
	logger log.Logger

	last   domain.Computation
	ledger *ledger.Ledger
}

// NewSession creates a session with an empty ledger and no result.
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		opts:   o,
		logger: o.logger.With(log.String("session", id)),
		ledger: ledger.New(),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Calculate validates the form and computes the pay. On success the result
// replaces the last computation; on failure the session is unchanged.
func (s *Session) Calculate(form domain.FormInput) (domain.ResultRecord, error) {
	res, err := payroll.Calculate(form)
	if err != nil {
		s.logger.Debug("calculation rejected", log.Err(err))
		return domain.ResultRecord{}, err
	}
	s.last = domain.Computed(res)
	s.logger.Debug("calculated",
		log.String("tier", res.Tier.String()),
		log.Bool("bonus_enabled", form.BonusEnabled),
		log.Float64("commission", res.Commission),
		log.Float64("bonus", res.AppliedBonus),
		log.Float64("total", res.Total),
	)
	return res, nil
}

// Last returns the last computation.
func (s *Session) Last() domain.Computation {
	return s.last
}

// Commit appends the last result to the ledger and displays it. The result
// stays current, so committing twice adds two identical rows.
func (s *Session) Commit() (domain.Row, error) {
	res, ok := s.last.Result()
	if !ok {
		return domain.Row{}, &domain.PreconditionError{Msg: domain.MsgNoCalculation}
	}
	row := domain.NewRow(res)
	s.ledger.Append(row)
	s.opts.display.AppendRow(row)
	s.logger.Info("row committed", log.Int("rows", s.ledger.Len()))
	return row, nil
}

// Reset drops the last computation and returns the default form.
func (s *Session) Reset() domain.FormInput {
	s.last = domain.Computation{}
	d := s.opts.defaults()
	s.logger.Debug("form reset")
	return domain.FormInput{Percent: d.Percent, Tier: d.Tier}
}

// Rows returns the ledger rows in commit order.
func (s *Session) Rows() []domain.Row {
	return s.ledger.Rows()
}

// Summary returns the ledger footer.
func (s *Session) Summary() (ledger.Summary, error) {
	return s.ledger.Summary()
}

// Export writes the ledger to path, or to the configured default path when
// path is empty, and returns the path written. The exporter is chosen by
// file extension.
func (s *Session) Export(ctx context.Context, path string) (string, error) {
	if s.ledger.Empty() {
		return "", &domain.PreconditionError{Msg: domain.MsgEmptyLedger}
	}
	if strings.TrimSpace(path) == "" {
		path = s.opts.exportPath()
	}

	exp, err := s.exporterFor(path)
	if err != nil {
		return "", &domain.ExportError{Path: path, Err: err}
	}
	if err := exp.Export(ctx, path, domain.Header, s.ledger.Rows()); err != nil {
		s.logger.Warn("export failed", log.String("path", path), log.Err(err))
		return "", &domain.ExportError{Path: path, Err: err}
	}

	s.logger.Info("ledger exported", log.String("path", path), log.Int("rows", s.ledger.Len()))
	return path, nil
}

func (s *Session) exporterFor(path string) (ports.Exporter, error) {
	if e, ok := s.opts.exporters[strings.ToLower(filepath.Ext(path))]; ok {
		return e, nil
	}
	if e, ok := s.opts.exporters[".csv"]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("no exporter for %q", path)
}

package app

import (
	"strings"

	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/internal/ports"
	"github.com/bft-labs/paycalc/pkg/log"
)

// Defaults are the form values restored by Reset.
type Defaults struct {
	Percent string
	Tier    domain.Tier
}

// DefaultsFunc returns the current defaults. It is read on every Reset so
// configuration reloads take effect without restarting the session.
type DefaultsFunc func() Defaults

// Option configures optional behavior of a Session.
type Option func(*options)

type options struct {
	logger     log.Logger
	display    ports.TableSink
	exporters  map[string]ports.Exporter
	defaults   DefaultsFunc
	exportPath func() string
}

func defaultOptions() options {
	return options{
		logger:    log.NewNoopLogger(),
		display:   discardSink{},
		exporters: map[string]ports.Exporter{},
		defaults: func() Defaults {
			return Defaults{Percent: "5", Tier: domain.Tiers[0]}
		},
		exportPath: func() string { return "sueldos.csv" },
	}
}

// WithLogger sets the logger. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTableSink sets where committed rows are displayed.
func WithTableSink(sink ports.TableSink) Option {
	return func(o *options) {
		o.display = sink
	}
}

// WithExporter registers an exporter for a file extension such as ".csv".
// The ".csv" exporter also serves paths with unknown extensions.
func WithExporter(ext string, e ports.Exporter) Option {
	return func(o *options) {
		o.exporters[strings.ToLower(ext)] = e
	}
}

// WithDefaults sets the source of the form defaults used by Reset.
func WithDefaults(fn DefaultsFunc) Option {
	return func(o *options) {
		o.defaults = fn
	}
}

// WithExportPath sets the source of the path used when Export gets none.
func WithExportPath(fn func() string) Option {
	return func(o *options) {
		o.exportPath = fn
	}
}

type discardSink struct{}

func (discardSink) AppendRow(domain.Row) {}

package ports

import "github.com/bft-labs/paycalc/internal/domain"

// TableSink receives the ledger rows in display order.
type TableSink interface {
	// AppendRow shows a newly committed row.
	AppendRow(row domain.Row)
}

// Notifier surfaces messages to the user. Titles follow the dialog titles
// of the form ("Validación", "Éxito").
type Notifier interface {
	Warn(title, msg string)
	Info(title, msg string)
}

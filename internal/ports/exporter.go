package ports

import (
	"context"

	"github.com/bft-labs/paycalc/internal/domain"
)

// Exporter writes a header and rows to path.
// Implementations must not leave a partial file behind on failure.
type Exporter interface {
	Export(ctx context.Context, path string, header []string, rows []domain.Row) error
}

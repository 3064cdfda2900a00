package port

import (
	"context"
	"time"

	"github.com/mquispe/bodegapos/internal/core/domain"
)

// SaleJournal keeps a local record of submitted vouchers for end-of-day review.
type SaleJournal interface {
	// Record appends a submitted sale to the journal.
	Record(ctx context.Context, s domain.Sale) error

	// ListByDay returns the sales recorded on the given calendar day.
	ListByDay(ctx context.Context, day time.Time) ([]domain.Sale, error)
}

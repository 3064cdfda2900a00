package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/port"
)

var (
	ErrEmptyTicket        = errors.New("ticket has no lines")
	ErrDuplicateSubmit    = errors.New("duplicate submit")
	ErrUnknownVoucherType = errors.New("unknown voucher type")
)

// SaleService turns a ticket into a voucher and posts it. The ticket is
// cleared only after the gateway confirms the sale; on failure it is left
// intact. Journal and guard are optional collaborators.
type SaleService struct {
	sales   port.SaleGateway
	journal port.SaleJournal
	guard   port.SubmitGuard
}

func NewSaleService(sales port.SaleGateway, journal port.SaleJournal, guard port.SubmitGuard) *SaleService {
	return &SaleService{sales: sales, journal: journal, guard: guard}
}

// Submit posts the current ticket as a voucher. An empty ticket fails with
// ErrEmptyTicket before any network call.
func (s *SaleService) Submit(ctx context.Context, t *TicketService, voucherType domain.VoucherType, documentNumber string) (domain.Sale, error) {
	if voucherType != domain.VoucherBoleta && voucherType != domain.VoucherFactura {
		return domain.Sale{}, fmt.Errorf("%w: %q", ErrUnknownVoucherType, voucherType)
	}

	lines := t.Lines()
	if len(lines) == 0 {
		return domain.Sale{}, ErrEmptyTicket
	}

	if s.guard != nil {
		ok, err := s.guard.Acquire(ctx, t.ID())
		if err != nil {
			return domain.Sale{}, fmt.Errorf("submit guard: %w", err)
		}
		if !ok {
			return domain.Sale{}, ErrDuplicateSubmit
		}
	}

	totals := t.Totals()
	sale := domain.Sale{
		Type:           voucherType,
		DocumentNumber: documentNumber,
		Subtotal:       totals.Subtotal,
		Total:          totals.Total,
		Lines:          make([]domain.SaleLine, len(lines)),
	}
	for i, l := range lines {
		sale.Lines[i] = domain.SaleLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}

	created, err := s.sales.Create(ctx, sale)
	if err != nil {
		if s.guard != nil {
			if relErr := s.guard.Release(ctx, t.ID()); relErr != nil {
				log.Printf("sale submit: release guard for ticket %s: %v", t.ID(), relErr)
			}
		}
		return domain.Sale{}, err
	}

	if s.journal != nil {
		// Best effort: a journal failure must not undo a confirmed sale.
		if jerr := s.journal.Record(ctx, created); jerr != nil {
			log.Printf("sale journal: record voucher %d: %v", created.ID, jerr)
		}
	}

	t.Clear()
	return created, nil
}

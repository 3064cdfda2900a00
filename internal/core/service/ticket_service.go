package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/core/money"
)

// TaxRate is the IGV applied to every voucher.
var TaxRate = decimal.RequireFromString("0.18")

// TicketService holds the lines of one open ticket. Lines are kept in
// insertion order and keyed by unique product id. A ticket lives only for the
// duration of a sale session and is never persisted.
type TicketService struct {
	id string

	mu    sync.Mutex
	lines []domain.TicketLine
}

func NewTicketService() *TicketService {
	return &TicketService{id: uuid.NewString()}
}

func (t *TicketService) ID() string {
	return t.id
}

// AddLine selects a product. Adding an already selected product is a no-op.
// The starting quantity is 1, or 0 when the product is out of stock, and
// MaxQuantity snapshots the stock at add time.
func (t *TicketService) AddLine(p domain.Product) {
	if p.ID == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.indexOf(p.ID) != -1 {
		return
	}

	quantity := 1
	if p.Stock == 0 {
		quantity = 0
	}
	t.lines = append(t.lines, domain.TicketLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Quantity:    quantity,
		MaxQuantity: p.Stock,
		UnitPrice:   p.Price,
	})
}

// Increment raises a line's quantity by delta, clamped to its MaxQuantity.
// Unknown product ids are a no-op.
func (t *TicketService) Increment(productID int64, delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(productID)
	if i == -1 {
		return
	}
	q := t.lines[i].Quantity + delta
	if q > t.lines[i].MaxQuantity {
		q = t.lines[i].MaxQuantity
	}
	t.lines[i].Quantity = q
}

// Decrement lowers a line's quantity by delta, clamped at zero. Unknown
// product ids are a no-op.
func (t *TicketService) Decrement(productID int64, delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(productID)
	if i == -1 {
		return
	}
	q := t.lines[i].Quantity - delta
	if q < 0 {
		q = 0
	}
	t.lines[i].Quantity = q
}

// RemoveLine drops the line for productID and keeps the rest.
func (t *TicketService) RemoveLine(productID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(productID)
	if i == -1 {
		return
	}
	t.lines = append(t.lines[:i], t.lines[i+1:]...)
}

// Clear empties the ticket unconditionally.
func (t *TicketService) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (t *TicketService) Lines() []domain.TicketLine {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.TicketLine, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *TicketService) Empty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines) == 0
}

// Totals computes subtotal, tax and grand total over the current lines.
// Every line amount and every aggregate is rounded to two decimal places.
func (t *TicketService) Totals() domain.TicketTotals {
	t.mu.Lock()
	defer t.mu.Unlock()

	subtotal := decimal.Zero
	for _, l := range t.lines {
		lineAmount := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		subtotal = subtotal.Add(money.Round2(lineAmount))
	}
	subtotal = money.Round2(subtotal)
	tax := money.Round2(subtotal.Mul(TaxRate))
	return domain.TicketTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    money.Round2(subtotal.Add(tax)),
	}
}

// indexOf is called with t.mu held.
func (t *TicketService) indexOf(productID int64) int {
	for i, l := range t.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

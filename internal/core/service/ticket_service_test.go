package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mquispe/bodegapos/internal/core/domain"
)

func testProduct(id int64, name string, stock int, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Stock: stock,
		Price: decimal.RequireFromString(price),
	}
}

func TestAddLine_StartsAtOne(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 10, "4.50"))

	lines := ticket.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", lines[0].Quantity)
	}
	if lines[0].MaxQuantity != 10 {
		t.Errorf("expected max quantity 10, got %d", lines[0].MaxQuantity)
	}
}

func TestAddLine_OutOfStockStartsAtZero(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Cerveza", 0, "8.90"))

	lines := ticket.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 0 {
		t.Errorf("expected quantity 0 for out-of-stock product, got %d", lines[0].Quantity)
	}
}

func TestAddLine_Idempotent(t *testing.T) {
	ticket := NewTicketService()
	p := testProduct(1, "Arroz", 10, "4.50")

	ticket.AddLine(p)
	ticket.Increment(1, 3)
	ticket.AddLine(p)

	lines := ticket.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 4 {
		t.Errorf("re-adding must not reset quantity: expected 4, got %d", lines[0].Quantity)
	}
}

func TestAddLine_UnpersistedProductIgnored(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(0, "Sin guardar", 5, "1.00"))

	if !ticket.Empty() {
		t.Error("expected ticket to stay empty for a product without id")
	}
}

func TestIncrement_ClampsToMaxQuantity(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 5, "4.50"))

	ticket.Increment(1, 3)
	ticket.Increment(1, 100)

	if q := ticket.Lines()[0].Quantity; q != 5 {
		t.Errorf("expected quantity clamped to 5, got %d", q)
	}
}

func TestIncrement_UnknownLineIsNoop(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 5, "4.50"))

	ticket.Increment(99, 1)

	if q := ticket.Lines()[0].Quantity; q != 1 {
		t.Errorf("expected quantity 1, got %d", q)
	}
}

func TestDecrement_ClampsAtZero(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 5, "4.50"))

	ticket.Decrement(1, 100)

	if q := ticket.Lines()[0].Quantity; q != 0 {
		t.Errorf("expected quantity clamped at 0, got %d", q)
	}
}

func TestRemoveLine_KeepsTheRest(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 5, "4.50"))
	ticket.AddLine(testProduct(2, "Aceite", 5, "9.90"))
	ticket.AddLine(testProduct(3, "Azúcar", 5, "3.80"))

	ticket.RemoveLine(2)

	lines := ticket.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != 1 || lines[1].ProductID != 3 {
		t.Errorf("expected lines [1 3], got [%d %d]", lines[0].ProductID, lines[1].ProductID)
	}
}

func TestClear_EmptiesTicket(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 5, "4.50"))
	ticket.AddLine(testProduct(2, "Aceite", 5, "9.90"))

	ticket.Clear()

	if !ticket.Empty() {
		t.Error("expected empty ticket after Clear")
	}

	totals := ticket.Totals()
	if !totals.Subtotal.IsZero() || !totals.Tax.IsZero() || !totals.Total.IsZero() {
		t.Errorf("expected zero totals after Clear, got %s/%s/%s",
			totals.Subtotal, totals.Tax, totals.Total)
	}
}

func TestTotals_SingleLine(t *testing.T) {
	ticket := NewTicketService()
	ticket.AddLine(testProduct(1, "Arroz", 10, "10.00"))
	ticket.Increment(1, 2)

	totals := ticket.Totals()

	if !totals.Subtotal.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("expected subtotal 30.00, got %s", totals.Subtotal)
	}
	if !totals.Tax.Equal(decimal.RequireFromString("5.40")) {
		t.Errorf("expected tax 5.40, got %s", totals.Tax)
	}
	if !totals.Total.Equal(decimal.RequireFromString("35.40")) {
		t.Errorf("expected total 35.40, got %s", totals.Total)
	}
}

func TestTotals_InsertionOrderIrrelevant(t *testing.T) {
	products := []domain.Product{
		testProduct(1, "A", 10, "1.99"),
		testProduct(2, "B", 10, "0.45"),
		testProduct(3, "C", 10, "12.30"),
	}

	forward := NewTicketService()
	for _, p := range products {
		forward.AddLine(p)
	}
	backward := NewTicketService()
	for i := len(products) - 1; i >= 0; i-- {
		backward.AddLine(products[i])
	}

	ft, bt := forward.Totals(), backward.Totals()
	if !ft.Subtotal.Equal(bt.Subtotal) || !ft.Tax.Equal(bt.Tax) || !ft.Total.Equal(bt.Total) {
		t.Errorf("totals differ by insertion order: %v vs %v", ft, bt)
	}
}

func TestTotals_RoundsPerLine(t *testing.T) {
	ticket := NewTicketService()
	// 3 x 0.335 = 1.005 per line, rounded half away from zero to 1.01.
	ticket.AddLine(testProduct(1, "A", 10, "0.335"))
	ticket.Increment(1, 2)

	totals := ticket.Totals()
	if !totals.Subtotal.Equal(decimal.RequireFromString("1.01")) {
		t.Errorf("expected subtotal 1.01, got %s", totals.Subtotal)
	}
}

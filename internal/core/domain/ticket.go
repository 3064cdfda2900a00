package domain

import "github.com/shopspring/decimal"

// TicketLine is one selected product on an open ticket. MaxQuantity snapshots
// the product stock at selection time and does not track later stock edits.
type TicketLine struct {
	ProductID   int64
	Name        string
	Quantity    int
	MaxQuantity int
	UnitPrice   decimal.Decimal
}

// TicketTotals holds the computed amounts for a ticket, rounded to two
// decimal places.
type TicketTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VoucherType string

const (
	VoucherBoleta  VoucherType = "BOLETA"
	VoucherFactura VoucherType = "FACTURA"
)

type SaleLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Sale is a submitted voucher. It is a projection of a ticket at submission
// time, not live state. ID is zero until the remote API assigns one.
type Sale struct {
	ID             int64
	Type           VoucherType
	DocumentNumber string
	Lines          []SaleLine
	Subtotal       decimal.Decimal
	Total          decimal.Decimal
	CreatedAt      time.Time
}

package domain

import "github.com/shopspring/decimal"

// Category groups products. ID is zero until the remote API assigns one.
type Category struct {
	ID   int64
	Name string
}

// Product is a catalog entry. ID is zero until the remote API assigns one.
type Product struct {
	ID       int64
	Name     string
	Stock    int
	Price    decimal.Decimal
	Category *Category
}

package gateway

import (
	"time"

	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/core/money"
)

// Wire shapes of the inventory API. Field names follow the server contract,
// including its "boucher" spelling.

type categoryDTO struct {
	ID   *int64 `json:"id"`
	Name string `json:"name,omitempty"`
}

type productDTO struct {
	ID       *int64       `json:"id"`
	Name     string       `json:"name"`
	Stock    int          `json:"stock"`
	Price    float64      `json:"price"`
	Category *categoryDTO `json:"category"`
}

type pageDTO[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

type statusDTO struct {
	Complete bool    `json:"complete"`
	Message  *string `json:"message"`
}

type boucherDetailDTO struct {
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price,omitempty"`
}

type boucherDTO struct {
	ID          *int64             `json:"id"`
	BoucherType string             `json:"boucherType"`
	NroDocument string             `json:"nroDocument"`
	CreateAt    *string            `json:"createAt,omitempty"`
	TotalMount  *float64           `json:"totalMount,omitempty"`
	FinalMount  *float64           `json:"finalMount,omitempty"`
	Products    []boucherDetailDTO `json:"products"`
}

func idValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func idRef(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func categoryFromDTO(dto categoryDTO) domain.Category {
	return domain.Category{ID: idValue(dto.ID), Name: dto.Name}
}

func categoryToDTO(c domain.Category) categoryDTO {
	return categoryDTO{ID: idRef(c.ID), Name: c.Name}
}

func productFromDTO(dto productDTO) (domain.Product, error) {
	price, err := money.FromFloat(dto.Price)
	if err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:    idValue(dto.ID),
		Name:  dto.Name,
		Stock: dto.Stock,
		Price: price,
	}
	if dto.Category != nil {
		cat := categoryFromDTO(*dto.Category)
		p.Category = &cat
	}
	return p, nil
}

func productToDTO(p domain.Product) productDTO {
	dto := productDTO{
		ID:    idRef(p.ID),
		Name:  p.Name,
		Stock: p.Stock,
		Price: p.Price.InexactFloat64(),
	}
	if p.Category != nil {
		cat := categoryToDTO(*p.Category)
		dto.Category = &cat
	}
	return dto
}

func saleToDTO(s domain.Sale) boucherDTO {
	details := make([]boucherDetailDTO, len(s.Lines))
	for i, l := range s.Lines {
		price := l.UnitPrice.InexactFloat64()
		details[i] = boucherDetailDTO{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     &price,
		}
	}
	subtotal := s.Subtotal.InexactFloat64()
	total := s.Total.InexactFloat64()
	return boucherDTO{
		ID:          idRef(s.ID),
		BoucherType: string(s.Type),
		NroDocument: s.DocumentNumber,
		TotalMount:  &subtotal,
		FinalMount:  &total,
		Products:    details,
	}
}

func saleFromDTO(dto boucherDTO) (domain.Sale, error) {
	s := domain.Sale{
		ID:             idValue(dto.ID),
		Type:           domain.VoucherType(dto.BoucherType),
		DocumentNumber: dto.NroDocument,
	}
	if dto.TotalMount != nil {
		sub, err := money.FromFloat(*dto.TotalMount)
		if err != nil {
			return domain.Sale{}, err
		}
		s.Subtotal = sub
	}
	if dto.FinalMount != nil {
		total, err := money.FromFloat(*dto.FinalMount)
		if err != nil {
			return domain.Sale{}, err
		}
		s.Total = total
	}
	if dto.CreateAt != nil {
		if t, err := time.Parse(time.RFC3339, *dto.CreateAt); err == nil {
			s.CreatedAt = t
		}
	}
	s.Lines = make([]domain.SaleLine, len(dto.Products))
	for i, d := range dto.Products {
		line := domain.SaleLine{ProductID: d.ProductID, Quantity: d.Quantity}
		if d.Price != nil {
			price, err := money.FromFloat(*d.Price)
			if err != nil {
				return domain.Sale{}, err
			}
			line.UnitPrice = price
		}
		s.Lines[i] = line
	}
	return s, nil
}

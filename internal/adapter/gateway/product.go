package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/port"
)

// ErrMissingID is returned by Update when the body carries no id.
var ErrMissingID = errors.New("gateway: update requires a persisted id")

const productRoute = "/inventory/product"

type productResource struct {
	c *Client
}

func (r *productResource) List(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := r.c.do(ctx, http.MethodGet, productRoute+"/all", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(dtos))
	for i, dto := range dtos {
		p, err := productFromDTO(dto)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func (r *productResource) Page(ctx context.Context, pageNumber, pageSize int) (domain.Page[domain.Product], error) {
	pageNumber = clampPageNumber(pageNumber)
	pageSize = clampPageSize(pageSize)

	var dto pageDTO[productDTO]
	path := fmt.Sprintf("%s/page/%d?limit=%d", productRoute, pageNumber, pageSize)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return domain.Page[domain.Product]{}, err
	}

	page := domain.Page[domain.Product]{
		Content:       make([]domain.Product, len(dto.Content)),
		PageNumber:    dto.PageNumber,
		PageSize:      dto.PageSize,
		TotalElements: dto.TotalElements,
		TotalPages:    dto.TotalPages,
		First:         dto.First,
		Last:          dto.Last,
	}
	for i, item := range dto.Content {
		p, err := productFromDTO(item)
		if err != nil {
			return domain.Page[domain.Product]{}, err
		}
		page.Content[i] = p
	}
	return page, nil
}

func (r *productResource) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	var dto productDTO
	if err := r.c.do(ctx, http.MethodPost, productRoute+"/add", productToDTO(p), &dto); err != nil {
		return domain.Product{}, err
	}
	return productFromDTO(dto)
}

func (r *productResource) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == 0 {
		return domain.Product{}, ErrMissingID
	}
	var dto productDTO
	if err := r.c.do(ctx, http.MethodPut, productRoute+"/update", productToDTO(p), &dto); err != nil {
		return domain.Product{}, err
	}
	return productFromDTO(dto)
}

func (r *productResource) Delete(ctx context.Context, id int64) (port.DeleteStatus, error) {
	var dto statusDTO
	path := fmt.Sprintf("%s/delete/%d", productRoute, id)
	if err := r.c.do(ctx, http.MethodDelete, path, nil, &dto); err != nil {
		return port.DeleteStatus{}, err
	}
	status := port.DeleteStatus{Complete: dto.Complete}
	if dto.Message != nil {
		status.Message = *dto.Message
	}
	return status, nil
}

func (r *productResource) Get(ctx context.Context, id int64) (domain.Product, error) {
	var dto productDTO
	path := fmt.Sprintf("%s/%d", productRoute, id)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return domain.Product{}, err
	}
	return productFromDTO(dto)
}

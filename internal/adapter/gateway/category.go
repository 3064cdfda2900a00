package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/port"
)

const categoryRoute = "/inventory/category"

type categoryResource struct {
	c *Client
}

func (r *categoryResource) List(ctx context.Context) ([]domain.Category, error) {
	var dtos []categoryDTO
	if err := r.c.do(ctx, http.MethodGet, categoryRoute+"/all", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(dtos))
	for i, dto := range dtos {
		out[i] = categoryFromDTO(dto)
	}
	return out, nil
}

func (r *categoryResource) Page(ctx context.Context, pageNumber, pageSize int) (domain.Page[domain.Category], error) {
	pageNumber = clampPageNumber(pageNumber)
	pageSize = clampPageSize(pageSize)

	var dto pageDTO[categoryDTO]
	path := fmt.Sprintf("%s/page/%d?limit=%d", categoryRoute, pageNumber, pageSize)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return domain.Page[domain.Category]{}, err
	}

	page := domain.Page[domain.Category]{
		Content:       make([]domain.Category, len(dto.Content)),
		PageNumber:    dto.PageNumber,
		PageSize:      dto.PageSize,
		TotalElements: dto.TotalElements,
		TotalPages:    dto.TotalPages,
		First:         dto.First,
		Last:          dto.Last,
	}
	for i, item := range dto.Content {
		page.Content[i] = categoryFromDTO(item)
	}
	return page, nil
}

func (r *categoryResource) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	var dto categoryDTO
	if err := r.c.do(ctx, http.MethodPost, categoryRoute+"/add", categoryToDTO(c), &dto); err != nil {
		return domain.Category{}, err
	}
	return categoryFromDTO(dto), nil
}

func (r *categoryResource) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	if c.ID == 0 {
		return domain.Category{}, ErrMissingID
	}
	var dto categoryDTO
	if err := r.c.do(ctx, http.MethodPut, categoryRoute+"/update", categoryToDTO(c), &dto); err != nil {
		return domain.Category{}, err
	}
	return categoryFromDTO(dto), nil
}

func (r *categoryResource) Delete(ctx context.Context, id int64) (port.DeleteStatus, error) {
	var dto statusDTO
	path := fmt.Sprintf("%s/delete/%d", categoryRoute, id)
	if err := r.c.do(ctx, http.MethodDelete, path, nil, &dto); err != nil {
		return port.DeleteStatus{}, err
	}
	status := port.DeleteStatus{Complete: dto.Complete}
	if dto.Message != nil {
		status.Message = *dto.Message
	}
	return status, nil
}

func (r *categoryResource) Get(ctx context.Context, id int64) (domain.Category, error) {
	var dto categoryDTO
	path := fmt.Sprintf("%s/%d", categoryRoute, id)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return domain.Category{}, err
	}
	return categoryFromDTO(dto), nil
}

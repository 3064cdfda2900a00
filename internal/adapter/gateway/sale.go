package gateway

import (
	"context"
	"net/http"

	"github.com/mquispe/bodegapos/internal/core/domain"
)

const sellRoute = "/sell"

type saleResource struct {
	c *Client
}

func (r *saleResource) Create(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	var dto boucherDTO
	if err := r.c.do(ctx, http.MethodPost, sellRoute+"/add", saleToDTO(s), &dto); err != nil {
		return domain.Sale{}, err
	}
	return saleFromDTO(dto)
}

package port

import (
	"context"

	"github.com/mquispe/bodegapos/internal/core/domain"
)

// DeleteStatus mirrors the API's delete response. A 2xx response with
// Complete=false is a soft failure: callers must branch on it, it is not
// an error.
type DeleteStatus struct {
	Complete bool
	Message  string
}

type ProductGateway interface {
	// List fetches the whole catalog.
	List(ctx context.Context) ([]domain.Product, error)

	// Page fetches one page. pageNumber is clamped to >= 1 and pageSize into
	// [25, 100] before the request is issued; callers may rely on the clamp.
	Page(ctx context.Context, pageNumber, pageSize int) (domain.Page[domain.Product], error)

	// Create persists a new product and returns it with its assigned id.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)

	// Update replaces an existing product. The body must carry its id.
	Update(ctx context.Context, p domain.Product) (domain.Product, error)

	// Delete removes a product by id. Check DeleteStatus.Complete.
	Delete(ctx context.Context, id int64) (DeleteStatus, error)

	// Get fetches a single product.
	Get(ctx context.Context, id int64) (domain.Product, error)
}

type CategoryGateway interface {
	List(ctx context.Context) ([]domain.Category, error)
	Page(ctx context.Context, pageNumber, pageSize int) (domain.Page[domain.Category], error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	Update(ctx context.Context, c domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id int64) (DeleteStatus, error)
	Get(ctx context.Context, id int64) (domain.Category, error)
}

type SaleGateway interface {
	// Create posts a voucher and returns it with its assigned id.
	Create(ctx context.Context, s domain.Sale) (domain.Sale, error)
}

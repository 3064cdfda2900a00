package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/port"
)

// CollectionState tracks the lifecycle of one remote-backed collection.
type CollectionState int

const (
	StateUninitialized CollectionState = iota
	StateLoading
	StateReady
	StateFailed
)

// InventoryService owns the in-memory product and category collections.
// Mutations are remote-first: the local patch is applied only after the
// gateway call succeeds, so a failed call leaves local state untouched.
// Failures are tracked per collection.
type InventoryService struct {
	products   port.ProductGateway
	categories port.CategoryGateway

	mu            sync.Mutex
	productList   []domain.Product
	categoryList  []domain.Category
	productState  CollectionState
	categoryState CollectionState
	productErr    error
	categoryErr   error
	needsLoad     bool

	sfg singleflight.Group
}

func NewInventoryService(products port.ProductGateway, categories port.CategoryGateway) *InventoryService {
	return &InventoryService{
		products:   products,
		categories: categories,
		needsLoad:  true,
	}
}

// Load performs the initial fetch of both collections. The needs-load flag is
// consumed exactly once: overlapping or repeated triggers are a no-op.
func (s *InventoryService) Load(ctx context.Context) error {
	s.mu.Lock()
	if !s.needsLoad {
		s.mu.Unlock()
		return nil
	}
	s.needsLoad = false
	s.mu.Unlock()

	return s.Reload(ctx)
}

// Reload re-enters Loading for both collections and fetches them again.
// Concurrent reloads collapse into one in-flight fetch per collection.
func (s *InventoryService) Reload(ctx context.Context) error {
	var productErr, categoryErr error

	_, productErr, _ = s.sfg.Do("products", func() (any, error) {
		return nil, s.loadProducts(ctx)
	})
	_, categoryErr, _ = s.sfg.Do("categories", func() (any, error) {
		return nil, s.loadCategories(ctx)
	})

	return errors.Join(productErr, categoryErr)
}

func (s *InventoryService) loadProducts(ctx context.Context) error {
	s.mu.Lock()
	s.productState = StateLoading
	s.mu.Unlock()

	page, err := s.products.Page(ctx, 1, 100)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.productState = StateFailed
		s.productErr = err
		return err
	}

	list := page.Content
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	s.productList = list
	s.productState = StateReady
	s.productErr = nil
	return nil
}

func (s *InventoryService) loadCategories(ctx context.Context) error {
	s.mu.Lock()
	s.categoryState = StateLoading
	s.mu.Unlock()

	// Size 0 relies on the gateway clamping into its allowed range.
	page, err := s.categories.Page(ctx, 1, 0)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.categoryState = StateFailed
		s.categoryErr = err
		return err
	}

	list := page.Content
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	s.categoryList = list
	s.categoryState = StateReady
	s.categoryErr = nil
	return nil
}

// LoadAllCategories refreshes the category collection from the unpaged list
// endpoint. An empty result leaves the current collection in place.
func (s *InventoryService) LoadAllCategories(ctx context.Context) error {
	s.mu.Lock()
	s.categoryState = StateLoading
	s.mu.Unlock()

	list, err := s.categories.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.categoryState = StateFailed
		s.categoryErr = err
		return err
	}
	s.categoryState = StateReady
	s.categoryErr = nil
	if len(list) == 0 {
		return nil
	}
	s.categoryList = list
	return nil
}

// Products returns a copy of the current product collection.
func (s *InventoryService) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.productList))
	copy(out, s.productList)
	return out
}

// Categories returns a copy of the current category collection.
func (s *InventoryService) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, len(s.categoryList))
	copy(out, s.categoryList)
	return out
}

// Product looks up a product by id in the local collection.
func (s *InventoryService) Product(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.productList {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductState reports the product collection lifecycle and its last error.
func (s *InventoryService) ProductState() (CollectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productState, s.productErr
}

// CategoryState reports the category collection lifecycle and its last error.
func (s *InventoryService) CategoryState() (CollectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryState, s.categoryErr
}

func (s *InventoryService) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	created, err := s.products.Create(ctx, p)
	if err != nil {
		s.setProductErr(err)
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.productList = append(s.productList, created)
	return created, nil
}

func (s *InventoryService) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	updated, err := s.products.Update(ctx, p)
	if err != nil {
		s.setProductErr(err)
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.productList {
		if s.productList[i].ID == updated.ID {
			s.productList[i] = updated
		}
	}
	return updated, nil
}

// DeleteProduct removes a product remotely, then locally. A soft failure
// (Complete=false) leaves the local collection unchanged and is not an error.
func (s *InventoryService) DeleteProduct(ctx context.Context, id int64) (port.DeleteStatus, error) {
	status, err := s.products.Delete(ctx, id)
	if err != nil {
		s.setProductErr(err)
		return port.DeleteStatus{}, err
	}
	if !status.Complete {
		return status, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.productList[:0]
	for _, p := range s.productList {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.productList = kept
	return status, nil
}

func (s *InventoryService) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	created, err := s.categories.Create(ctx, c)
	if err != nil {
		s.setCategoryErr(err)
		return domain.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryList = append(s.categoryList, created)
	return created, nil
}

func (s *InventoryService) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	updated, err := s.categories.Update(ctx, c)
	if err != nil {
		s.setCategoryErr(err)
		return domain.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categoryList {
		if s.categoryList[i].ID == updated.ID {
			s.categoryList[i] = updated
		}
	}
	return updated, nil
}

func (s *InventoryService) DeleteCategory(ctx context.Context, id int64) (port.DeleteStatus, error) {
	status, err := s.categories.Delete(ctx, id)
	if err != nil {
		s.setCategoryErr(err)
		return port.DeleteStatus{}, err
	}
	if !status.Complete {
		return status, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.categoryList[:0]
	for _, c := range s.categoryList {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categoryList = kept
	return status, nil
}

func (s *InventoryService) setProductErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productErr = err
}

func (s *InventoryService) setCategoryErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryErr = err
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopkit/shopkit/internal/cache"
	"github.com/shopkit/shopkit/internal/model"
)

// stubProductStore is an in-memory ProductStore for unit tests.
type stubProductStore struct {
	products []*model.Product
	listed   int
}

func (s *stubProductStore) CreateProduct(_ context.Context, product *model.Product) error {
	s.products = append(s.products, product)
	return nil
}

func (s *stubProductStore) ListProducts(_ context.Context) ([]*model.Product, error) {
	s.listed++
	return s.products, nil
}

// stubProductCache is an in-memory ProductCache for unit tests.
type stubProductCache struct {
	list        []*model.Product
	cached      bool
	invalidated int
}

func (c *stubProductCache) GetProductList(_ context.Context) ([]*model.Product, error) {
	if !c.cached {
		return nil, cache.ErrCacheMiss
	}
	return c.list, nil
}

func (c *stubProductCache) SetProductList(_ context.Context, products []*model.Product, _ time.Duration) error {
	c.list = products
	c.cached = true
	return nil
}

func (c *stubProductCache) InvalidateProductList(_ context.Context) error {
	c.invalidated++
	c.cached = false
	return nil
}

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:        "Mug",
		Price:       9.5,
		Description: "A mug that holds coffee",
		ImageURL:    "https://example.com/mug.png",
		Stock:       3,
	}
}

func TestProductCreate_Success(t *testing.T) {
	t.Parallel()

	store := &stubProductStore{}
	productCache := &stubProductCache{}
	svc := NewProductService(store, productCache, time.Minute, nil)

	product, err := svc.Create(context.Background(), validProductInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if product.ID == "" {
		t.Error("expected a generated product ID")
	}
	if len(store.products) != 1 {
		t.Fatalf("expected 1 stored product, got %d", len(store.products))
	}
	if productCache.invalidated != 1 {
		t.Errorf("expected cache invalidation on create, got %d", productCache.invalidated)
	}
}

func TestProductCreate_ShortDescription(t *testing.T) {
	t.Parallel()

	store := &stubProductStore{}
	svc := NewProductService(store, nil, time.Minute, nil)

	input := validProductInput()
	input.Description = "short"

	_, err := svc.Create(context.Background(), input)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "description" {
		t.Errorf("expected a single description field error, got %v", verr.Fields)
	}
	if len(store.products) != 0 {
		t.Error("store must not be touched on validation failure")
	}
}

func TestProductCreate_AllFieldsInvalid(t *testing.T) {
	t.Parallel()

	svc := NewProductService(&stubProductStore{}, nil, time.Minute, nil)

	_, err := svc.Create(context.Background(), CreateProductInput{
		Name:        " ",
		Price:       -1,
		Description: "tiny",
		ImageURL:    "",
		Stock:       -3,
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 5 {
		t.Errorf("expected 5 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
}

func TestProductCreate_ZeroPriceAndStock(t *testing.T) {
	t.Parallel()

	svc := NewProductService(&stubProductStore{}, nil, time.Minute, nil)

	input := validProductInput()
	input.Price = 0
	input.Stock = 0

	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("zero price and stock should be valid, got %v", err)
	}
}

func TestProductList_CacheMissThenHit(t *testing.T) {
	t.Parallel()

	store := &stubProductStore{}
	productCache := &stubProductCache{}
	svc := NewProductService(store, productCache, time.Minute, nil)

	if _, err := svc.Create(context.Background(), validProductInput()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// First list misses the cache and hits the store.
	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if store.listed != 1 {
		t.Errorf("expected 1 store list, got %d", store.listed)
	}

	// Second list is served from cache.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if store.listed != 1 {
		t.Errorf("expected cached list to skip the store, got %d store lists", store.listed)
	}
}

func TestProductList_NoCache(t *testing.T) {
	t.Parallel()

	store := &stubProductStore{}
	svc := NewProductService(store, nil, time.Minute, nil)

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if store.listed != 1 {
		t.Errorf("expected store list without cache, got %d", store.listed)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shopkit/shopkit/internal/cache"
	"github.com/shopkit/shopkit/internal/model"
)

// minDescriptionLength is the minimum product description length.
const minDescriptionLength = 10

// ProductStore is the store contract the product service depends on.
type ProductStore interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	ListProducts(ctx context.Context) ([]*model.Product, error)
}

// ProductCache is the cache contract for the product list read path.
type ProductCache interface {
	GetProductList(ctx context.Context) ([]*model.Product, error)
	SetProductList(ctx context.Context, products []*model.Product, ttl time.Duration) error
	InvalidateProductList(ctx context.Context) error
}

// ProductService handles catalog business logic.
type ProductService struct {
	store    ProductStore
	cache    ProductCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewProductService creates a new ProductService.
// The cache may be nil, in which case every list hits the store.
func NewProductService(store ProductStore, productCache ProductCache, cacheTTL time.Duration, logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{
		store:    store,
		cache:    productCache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// CreateProductInput defines input for creating a product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
	Stock       int
}

// Create validates the input and persists a new product.
// The cached product list is invalidated on success.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &model.Product{
		ID:          ulid.Make().String(),
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateProductList(ctx); err != nil {
			// Stale reads are bounded by the cache TTL.
			s.logger.Warn("product cache invalidation failed", "error", err)
		}
	}

	return product, nil
}

// List returns all products, served from cache when possible.
func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	if s.cache != nil {
		products, err := s.cache.GetProductList(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("product cache read failed", "error", err)
		}
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetProductList(ctx, products, s.cacheTTL); err != nil {
			s.logger.Warn("product cache write failed", "error", err)
		}
	}

	return products, nil
}

func validateProduct(input CreateProductInput) error {
	verr := &ValidationError{}

	if strings.TrimSpace(input.Name) == "" {
		verr.add("name", "must not be empty")
	}

	if input.Price < 0 {
		verr.add("price", "must be zero or greater")
	}

	if len(input.Description) < minDescriptionLength {
		verr.add("description", fmt.Sprintf("must be at least %d characters", minDescriptionLength))
	}

	if strings.TrimSpace(input.ImageURL) == "" {
		verr.add("imageUrl", "must not be empty")
	}

	if input.Stock < 0 {
		verr.add("stock", "must be zero or greater")
	}

	return verr.orNil()
}

//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopkit/shopkit/internal/testutil"
)

func newProductTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetProductsSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset products schema: %v", err)
	}

	return ctx, repo
}

func TestIntegrationProductRepository_CreateAndList(t *testing.T) {
	ctx, repo := newProductTestEnv(t)

	product := testutil.NewTestProduct(t, "mug")

	if err := repo.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].ID != product.ID {
		t.Errorf("ID mismatch: got %q, want %q", products[0].ID, product.ID)
	}
	if products[0].Price != product.Price {
		t.Errorf("Price mismatch: got %v, want %v", products[0].Price, product.Price)
	}
	if products[0].Stock != product.Stock {
		t.Errorf("Stock mismatch: got %d, want %d", products[0].Stock, product.Stock)
	}
}

func TestIntegrationProductRepository_ListEmpty(t *testing.T) {
	ctx, repo := newProductTestEnv(t)

	products, err := repo.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty catalog, got %d products", len(products))
	}
}

func TestIntegrationProductRepository_ListOrder(t *testing.T) {
	ctx, repo := newProductTestEnv(t)

	older := testutil.NewTestProduct(t, "older")
	newer := testutil.NewTestProduct(t, "newer")
	newer.CreatedAt = older.CreatedAt.Add(time.Second)
	newer.ID = older.ID + "-2"

	if err := repo.CreateProduct(ctx, older); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if err := repo.CreateProduct(ctx, newer); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "newer" {
		t.Errorf("expected newest first, got %q", products[0].Name)
	}
}

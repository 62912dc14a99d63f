package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	testhelpers "github.com/shopworks/storefront/internal/test"
	"github.com/shopworks/storefront/internal/usecase"
)

func newProductUseCase() (*usecase.ProductUseCase, *testhelpers.ProductRepositoryStub, *testhelpers.FeaturedCacheStub, *testhelpers.ImageStoreStub) {
	repo := &testhelpers.ProductRepositoryStub{}
	cache := &testhelpers.FeaturedCacheStub{}
	store := &testhelpers.ImageStoreStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return usecase.NewProductUseCase(repo, cache, store, logger), repo, cache, store
}

func TestProductUseCaseFeaturedServesFromCache(t *testing.T) {
	uc, repo, cache, _ := newProductUseCase()
	cache.Hit = true
	cache.Products = []model.Product{{ID: 1, Name: "Mug", IsFeatured: true}}
	repo.Err = errors.New("database must not be hit")

	products, err := uc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured returned error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Mug" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestProductUseCaseFeaturedPrimesCacheOnMiss(t *testing.T) {
	uc, repo, cache, _ := newProductUseCase()
	repo.Products = []model.Product{
		{ID: 1, Name: "Mug", IsFeatured: true},
		{ID: 2, Name: "Plate", IsFeatured: false},
	}

	products, err := uc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected only featured products, got %+v", products)
	}
	if !cache.Hit || len(cache.Products) != 1 {
		t.Fatal("expected cache to be primed after miss")
	}
}

func TestProductUseCaseFeaturedEmpty(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	if _, err := uc.Featured(context.Background()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty listing, got %v", err)
	}
}

func TestProductUseCaseFeaturedSurvivesCacheFailure(t *testing.T) {
	uc, repo, cache, _ := newProductUseCase()
	cache.GetErr = errors.New("redis down")
	repo.Products = []model.Product{{ID: 1, Name: "Mug", IsFeatured: true}}

	products, err := uc.Featured(context.Background())
	if err != nil {
		t.Fatalf("expected database fallthrough, got %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestProductUseCaseCreateWithImage(t *testing.T) {
	uc, repo, cache, store := newProductUseCase()

	created, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:     "Mug",
		Price:    9.99,
		Category: " Kitchen ",
		Image:    "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ImageKey != "products/stub.png" || created.ImageURL == "" {
		t.Fatalf("expected image fields set, got %+v", created)
	}
	if created.Category != "kitchen" {
		t.Fatalf("expected normalized category, got %q", created.Category)
	}
	if len(store.Uploaded) != 1 {
		t.Fatal("expected one upload")
	}
	if cache.Invalidated != 1 {
		t.Fatal("expected featured cache invalidation")
	}
	if len(repo.Products) != 1 {
		t.Fatal("expected product stored")
	}
}

func TestProductUseCaseCreateValidation(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	cases := []usecase.CreateProductInput{
		{Name: "", Price: 10},
		{Name: "Mug", Price: 0},
		{Name: "Mug", Price: -1},
	}
	for _, input := range cases {
		if _, err := uc.Create(context.Background(), input); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Errorf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestProductUseCaseCreateCleansUpImageOnFailure(t *testing.T) {
	uc, repo, _, store := newProductUseCase()
	repo.CreateFn = func(context.Context, *model.Product) (*model.Product, error) {
		return nil, errors.New("insert failed")
	}

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:  "Mug",
		Price: 9.99,
		Image: "data:image/png;base64,AAAA",
	})
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if len(store.Deleted) != 1 || store.Deleted[0] != "products/stub.png" {
		t.Fatalf("expected uploaded image to be removed, got %v", store.Deleted)
	}
}

func TestProductUseCaseDelete(t *testing.T) {
	uc, repo, cache, store := newProductUseCase()
	repo.Products = []model.Product{{ID: 5, Name: "Mug", ImageKey: "products/abc.png"}}

	if err := uc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if len(store.Deleted) != 1 || store.Deleted[0] != "products/abc.png" {
		t.Fatalf("expected stored image removed, got %v", store.Deleted)
	}
	if cache.Invalidated != 1 {
		t.Fatal("expected featured cache invalidation")
	}

	if err := uc.Delete(context.Background(), 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing product, got %v", err)
	}
}

func TestProductUseCaseDeleteToleratesImageFailure(t *testing.T) {
	uc, repo, _, store := newProductUseCase()
	repo.Products = []model.Product{{ID: 5, Name: "Mug", ImageKey: "products/abc.png"}}
	store.DeleteFn = func(context.Context, string) error { return errors.New("s3 down") }

	if err := uc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("expected delete to succeed despite image failure, got %v", err)
	}
}

func TestProductUseCaseByCategory(t *testing.T) {
	uc, repo, _, _ := newProductUseCase()
	repo.Products = []model.Product{
		{ID: 1, Category: "kitchen"},
		{ID: 2, Category: "garden"},
	}

	products, err := uc.ByCategory(context.Background(), " Kitchen ")
	if err != nil {
		t.Fatalf("by category returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("unexpected products %+v", products)
	}

	if _, err := uc.ByCategory(context.Background(), "  "); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank category, got %v", err)
	}
}

func TestProductUseCaseRecommended(t *testing.T) {
	uc, repo, _, _ := newProductUseCase()
	repo.Products = []model.Product{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	products, err := uc.Recommended(context.Background())
	if err != nil {
		t.Fatalf("recommended returned error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
}

func TestProductUseCaseRefreshFeatured(t *testing.T) {
	uc, repo, cache, _ := newProductUseCase()
	repo.Products = []model.Product{{ID: 1, IsFeatured: true}}

	if err := uc.RefreshFeatured(context.Background()); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if !cache.Hit || len(cache.Products) != 1 {
		t.Fatal("expected cache to hold the fresh listing")
	}
}

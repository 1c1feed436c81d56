package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
)

type catalogFixture struct {
	uc       *CatalogUseCase
	products *mockProductRepo
	cache    *mockCacheRepo
}

func newCatalogFixture(products ...*domain.Product) *catalogFixture {
	f := &catalogFixture{
		products: newMockProductRepo(products...),
		cache:    newMockCacheRepo(),
	}
	f.uc = NewCatalogUC(f.products, f.cache, &mockTxManager{products: f.products}, nopLogger{})
	return f
}

func TestGetProduct_CacheHit(t *testing.T) {
	f := newCatalogFixture()
	require.NoError(t, f.cache.SetProducts(context.Background(), []ProductInfo{
		{ID: 1, Title: "чай", PriceCents: 999, Stock: 5},
	}))

	info, err := f.uc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "чай", info.Title)
}

func TestGetProduct_FallsBackToRepo(t *testing.T) {
	f := newCatalogFixture(testProduct(1, "чай", 999, 1000, 5))

	info, err := f.uc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(999), info.PriceCents)
	assert.Equal(t, int64(1000), info.TaxBP)

	_, err = f.uc.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestListProducts_Pagination(t *testing.T) {
	f := newCatalogFixture(
		testProduct(1, "чай", 999, 0, 5),
		testProduct(2, "кофе", 1500, 0, 3),
	)

	res, err := f.uc.ListProducts(context.Background(), &ListProductsReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Equal(t, int64(1), res.Page)
	assert.Equal(t, int64(10), res.Limit)
	assert.Equal(t, int64(1), res.TotalPages)
}

func TestUpsertProduct(t *testing.T) {
	f := newCatalogFixture()

	res, err := f.uc.UpsertProduct(context.Background(), admin, &UpsertProductReq{
		Title:      "чай",
		PriceCents: 999,
		TaxBP:      1000,
		Stock:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, "чай", res.Product.Title)
	assert.NotZero(t, res.Product.ID)
}

func TestUpsertProduct_Validation(t *testing.T) {
	f := newCatalogFixture()

	cases := []struct {
		name string
		req  *UpsertProductReq
		want error
	}{
		{"empty title", &UpsertProductReq{Title: "  ", PriceCents: 100}, e.ErrProductTitleEmpty},
		{"zero price", &UpsertProductReq{Title: "чай", PriceCents: 0}, e.ErrPriceMustBePositive},
		{"tax over 100%", &UpsertProductReq{Title: "чай", PriceCents: 100, TaxBP: 10001}, e.ErrInvalidTaxPercent},
		{"negative stock", &UpsertProductReq{Title: "чай", PriceCents: 100, Stock: -1}, e.ErrNegativeStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.UpsertProduct(context.Background(), admin, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpsertProduct_AdminOnly(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.UpsertProduct(context.Background(), customer, &UpsertProductReq{Title: "чай", PriceCents: 100})
	assert.ErrorIs(t, err, e.ErrForbidden)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
)

type inventoryFixture struct {
	uc       *InventoryUseCase
	products *mockProductRepo
	history  *mockHistoryRepo
	cache    *mockCacheRepo
}

func newInventoryFixture(products ...*domain.Product) *inventoryFixture {
	f := &inventoryFixture{
		products: newMockProductRepo(products...),
		history:  &mockHistoryRepo{},
		cache:    newMockCacheRepo(),
	}
	tx := &mockTxManager{products: f.products, history: f.history}
	f.uc = NewInventoryUC(f.products, f.history, tx, f.cache, nopLogger{})
	return f
}

func TestUpdateStock(t *testing.T) {
	f := newInventoryFixture(testProduct(1, "чай", 999, 0, 5))

	reason := "инвентаризация"
	item, err := f.uc.UpdateStock(context.Background(), admin, &UpdateStockReq{
		ProductID: 1,
		NewStock:  12,
		Reason:    &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), item.Stock)

	// Ровно одна запись журнала на одну корректировку.
	require.Len(t, f.history.entries, 1)
	entry := f.history.entries[0]
	assert.Equal(t, int64(5), entry.PreviousStock)
	assert.Equal(t, int64(12), entry.NewStock)
	assert.Equal(t, int64(7), entry.Change)
	assert.Equal(t, admin.UserID, entry.UpdatedBy)
	require.NotNil(t, entry.Reason)
	assert.Equal(t, reason, *entry.Reason)
}

func TestUpdateStock_AdminOnly(t *testing.T) {
	f := newInventoryFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.UpdateStock(context.Background(), customer, &UpdateStockReq{ProductID: 1, NewStock: 10})
	assert.ErrorIs(t, err, e.ErrForbidden)
	assert.Empty(t, f.history.entries)
}

func TestUpdateStock_NegativeRejected(t *testing.T) {
	f := newInventoryFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.UpdateStock(context.Background(), admin, &UpdateStockReq{ProductID: 1, NewStock: -1})
	assert.ErrorIs(t, err, e.ErrNegativeStock)

	product, _ := f.products.GetByID(context.Background(), 1)
	assert.Equal(t, int64(5), product.Stock)
	assert.Empty(t, f.history.entries)
}

func TestUpdateStock_UnknownProduct(t *testing.T) {
	f := newInventoryFixture()

	_, err := f.uc.UpdateStock(context.Background(), admin, &UpdateStockReq{ProductID: 42, NewStock: 10})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Empty(t, f.history.entries)
}

func TestUpdateStock_RollbackKeepsLedgerConsistent(t *testing.T) {
	f := newInventoryFixture(testProduct(1, "чай", 999, 0, 5))

	// Падение мутации остатка откатывает и запись журнала: журнал никогда
	// не содержит следов неприменённых корректировок.
	failing := &failingProductRepo{mockProductRepo: f.products}
	tx := &mockTxManager{products: f.products, history: f.history}
	uc := NewInventoryUC(failing, f.history, tx, f.cache, nopLogger{})

	_, err := uc.UpdateStock(context.Background(), admin, &UpdateStockReq{ProductID: 1, NewStock: 10})
	require.Error(t, err)

	assert.Empty(t, f.history.entries)
	product, _ := f.products.GetByID(context.Background(), 1)
	assert.Equal(t, int64(5), product.Stock)
}

func TestUpdateStock_InvalidatesCache(t *testing.T) {
	f := newInventoryFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.UpdateStock(context.Background(), admin, &UpdateStockReq{ProductID: 1, NewStock: 3})
	require.NoError(t, err)

	assert.Contains(t, f.cache.deleted, int64(1))
}

func TestListInventory(t *testing.T) {
	f := newInventoryFixture(
		testProduct(1, "чай", 999, 0, 5),
		testProduct(2, "кофе", 1500, 0, 0),
	)

	res, err := f.uc.ListInventory(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Len(t, res.Items, 2)

	_, err = f.uc.ListInventory(context.Background(), customer)
	assert.ErrorIs(t, err, e.ErrForbidden)
}

type failingProductRepo struct {
	*mockProductRepo
}

func (f *failingProductRepo) SetStock(ctx context.Context, id, newStock int64) error {
	return errors.New("write failed")
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
)

var (
	customer      = domain.Principal{UserID: "user-1", Role: domain.RoleCustomer}
	otherCustomer = domain.Principal{UserID: "user-2", Role: domain.RoleCustomer}
	admin         = domain.Principal{UserID: "admin-1", Role: domain.RoleAdmin}
)

type orderFixture struct {
	uc       *OrderUseCase
	products *mockProductRepo
	orders   *mockOrderRepo
	outbox   *mockOutboxRepo
	cache    *mockCacheRepo
}

func newOrderFixture(products ...*domain.Product) *orderFixture {
	f := &orderFixture{
		products: newMockProductRepo(products...),
		orders:   newMockOrderRepo(),
		outbox:   &mockOutboxRepo{},
		cache:    newMockCacheRepo(),
	}
	f.uc = NewOrderUC(f.orders, f.products, f.outbox, &mockTxManager{products: f.products}, f.cache, nopLogger{})
	return f
}

func testProduct(id int64, title string, priceCents, taxBP, stock int64) *domain.Product {
	return &domain.Product{ID: id, Title: title, PriceCents: priceCents, TaxBP: taxBP, Stock: stock}
}

func TestCreateOrder_Success(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 1000, 5))

	order, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, customer.UserID, order.UserID)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, int64(1998), order.SubtotalCents)
	assert.Equal(t, int64(200), order.TaxTotalCents)
	assert.Equal(t, int64(2198), order.TotalCents)

	product, err := f.products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), product.Stock)
}

func TestCreateOrder_ExactStock(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 5}},
	})
	require.NoError(t, err)

	product, err := f.products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), product.Stock)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 6}},
	})
	require.ErrorIs(t, err, e.ErrInsufficientStock)

	// Остаток не изменился, заказ не создан.
	product, getErr := f.products.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, int64(5), product.Stock)
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.outbox.events)
}

func TestCreateOrder_AllOrNothing(t *testing.T) {
	f := newOrderFixture(
		testProduct(1, "чай", 999, 0, 10),
		testProduct(2, "кофе", 1500, 0, 1),
	)

	// Первая позиция проходит, вторая падает по остатку: списания первой
	// позиции тоже не должно остаться.
	_, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 2},
		},
	})
	require.ErrorIs(t, err, e.ErrInsufficientStock)

	tea, _ := f.products.GetByID(context.Background(), 1)
	coffee, _ := f.products.GetByID(context.Background(), 2)
	assert.Equal(t, int64(10), tea.Stock)
	assert.Equal(t, int64(1), coffee.Stock)
}

func TestCreateOrder_SequentialCompeting(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 1))

	req := &CreateOrderReq{Items: []OrderItemReq{{ProductID: 1, Quantity: 1}}}

	_, err := f.uc.CreateOrder(context.Background(), customer, req)
	require.NoError(t, err)

	_, err = f.uc.CreateOrder(context.Background(), otherCustomer, req)
	require.ErrorIs(t, err, e.ErrInsufficientStock)

	assert.Len(t, f.orders.orders, 1)
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{})
	assert.ErrorIs(t, err, e.ErrEmptyOrderItems)

	_, err = f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 42, Quantity: 1}},
	})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateOrder_SnapshotsCatalogPrices(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 10))

	order, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// Последующее изменение цены не трогает исторический заказ.
	f.products.products[1].PriceCents = 5000

	stored, err := f.uc.GetOrder(context.Background(), customer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(999), stored.Items[0].PriceCents)
	assert.Equal(t, int64(999), stored.SubtotalCents)
}

func TestCreateOrder_WritesOutboxEvent(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	order, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, f.outbox.events, 1)
	event := f.outbox.events[0]
	assert.Equal(t, OrderCreated, event.EventType)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, Pending, event.Status)
	assert.NotEmpty(t, event.EventID)
}

func TestCreateOrder_InvalidatesCache(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	_, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Contains(t, f.cache.deleted, int64(1))
}

func TestGetOrder_Access(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	order, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.uc.GetOrder(context.Background(), customer, order.ID)
	assert.NoError(t, err)

	_, err = f.uc.GetOrder(context.Background(), admin, order.ID)
	assert.NoError(t, err)

	_, err = f.uc.GetOrder(context.Background(), otherCustomer, order.ID)
	assert.ErrorIs(t, err, e.ErrForbidden)

	_, err = f.uc.GetOrder(context.Background(), customer, 404)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestListOrders_Scoping(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 100))

	req := &CreateOrderReq{Items: []OrderItemReq{{ProductID: 1, Quantity: 1}}}
	for i := 0; i < 3; i++ {
		_, err := f.uc.CreateOrder(context.Background(), customer, req)
		require.NoError(t, err)
	}
	_, err := f.uc.CreateOrder(context.Background(), otherCustomer, req)
	require.NoError(t, err)

	mine, err := f.uc.ListOrders(context.Background(), customer, &ListOrdersReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), mine.Total)

	all, err := f.uc.ListOrders(context.Background(), admin, &ListOrdersReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.Total)
}

func TestListOrders_PaginationDefaults(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 5))

	res, err := f.uc.ListOrders(context.Background(), customer, &ListOrdersReq{Page: 0, Limit: 0})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Page)
	assert.Equal(t, int64(10), res.Limit)
	assert.Equal(t, int64(1), res.TotalPages)

	res, err = f.uc.ListOrders(context.Background(), customer, &ListOrdersReq{Page: 1, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(100), res.Limit)
}

func TestReorder(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 10))

	source, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	repeat, err := f.uc.Reorder(context.Background(), customer, source.ID)
	require.NoError(t, err)

	assert.NotEqual(t, source.ID, repeat.ID)
	assert.Equal(t, domain.OrderPending, repeat.Status)

	product, _ := f.products.GetByID(context.Background(), 1)
	assert.Equal(t, int64(8), product.Stock)
}

func TestReorder_CurrentPrices(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 10))

	source, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	f.products.products[1].PriceCents = 1200

	repeat, err := f.uc.Reorder(context.Background(), customer, source.ID)
	require.NoError(t, err)

	// Повтор оценивается по текущему каталогу, а не по историческому снимку.
	assert.Equal(t, int64(2400), repeat.SubtotalCents)
	assert.Equal(t, int64(1998), source.SubtotalCents)
}

func TestReorder_StrictlyOwner(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 10))

	source, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// Повтор чужого заказа запрещён даже администратору.
	_, err = f.uc.Reorder(context.Background(), admin, source.ID)
	assert.ErrorIs(t, err, e.ErrForbidden)

	_, err = f.uc.Reorder(context.Background(), otherCustomer, source.ID)
	assert.ErrorIs(t, err, e.ErrForbidden)
}

func TestUpdateStatus(t *testing.T) {
	f := newOrderFixture(testProduct(1, "чай", 999, 0, 10))

	order, err := f.uc.CreateOrder(context.Background(), customer, &CreateOrderReq{
		Items: []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), customer, order.ID, domain.OrderConfirmed)
	assert.ErrorIs(t, err, e.ErrForbidden)

	updated, err := f.uc.UpdateStatus(context.Background(), admin, order.ID, domain.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderConfirmed, updated.Status)

	// confirmed -> delivered минует processing и shipped.
	_, err = f.uc.UpdateStatus(context.Background(), admin, order.ID, domain.OrderDelivered)
	assert.ErrorIs(t, err, e.ErrStatusNotAllowed)

	_, err = f.uc.UpdateStatus(context.Background(), admin, order.ID, domain.OrderCancelled)
	assert.NoError(t, err)
}

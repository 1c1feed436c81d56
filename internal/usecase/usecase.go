package usecase

import (
	"context"

	"github.com/DRSN-tech/retail-backend/internal/domain"
)

type OrderUC interface {
	CreateOrder(ctx context.Context, principal domain.Principal, req *CreateOrderReq) (*domain.Order, error)
	GetOrder(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, principal domain.Principal, req *ListOrdersReq) (*ListOrdersRes, error)
	Reorder(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, principal domain.Principal, orderID int64, status domain.OrderStatus) (*domain.Order, error)
}

type InventoryUC interface {
	UpdateStock(ctx context.Context, principal domain.Principal, req *UpdateStockReq) (*InventoryItem, error)
	ListInventory(ctx context.Context, principal domain.Principal) (*ListInventoryRes, error)
}

type CatalogUC interface {
	GetProduct(ctx context.Context, productID int64) (*ProductInfo, error)
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	UpsertProduct(ctx context.Context, principal domain.Principal, req *UpsertProductReq) (*UpsertProductRes, error)
}

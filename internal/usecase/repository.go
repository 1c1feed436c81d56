package usecase

import (
	"context"

	"github.com/DRSN-tech/retail-backend/internal/domain"
)

type ProductRepository interface {
	// GetByID читает товар вне транзакции.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// LockForUpdate читает товар внутри транзакции с блокировкой строки (FOR UPDATE),
	// сериализуя конкурирующие мутации остатка по одному товару.
	LockForUpdate(ctx context.Context, id int64) (*domain.Product, error)
	// ReserveStock атомарно уменьшает остаток при условии stock >= qty.
	ReserveStock(ctx context.Context, id, qty int64) error
	// SetStock выставляет абсолютное значение остатка.
	SetStock(ctx context.Context, id, newStock int64) error
	List(ctx context.Context, page, limit int64) ([]*domain.Product, int64, error)
	ListInventory(ctx context.Context) ([]InventoryItem, error)
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// Find возвращает страницу заказов и общее количество.
	// userID == nil означает выборку по всем пользователям.
	Find(ctx context.Context, userID *string, page, limit int64) ([]*domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type StockHistoryRepository interface {
	Create(ctx context.Context, entry *domain.StockHistoryEntry) (*domain.StockHistoryEntry, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

// TxManager исполняет fn в границах одной транзакции БД.
// Объект транзакции прокидывается репозиториям через контекст (pkg/tr).
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

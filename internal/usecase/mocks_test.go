package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// mockProductRepo держит товары в памяти. Снимки состояния используются
// mockTxManager для эмуляции отката транзакции.
type mockProductRepo struct {
	products map[int64]*domain.Product
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[int64]*domain.Product)}
	for _, p := range products {
		cp := *p
		m.products[p.ID] = &cp
	}
	return m
}

func (m *mockProductRepo) snapshot() map[int64]*domain.Product {
	snap := make(map[int64]*domain.Product, len(m.products))
	for id, p := range m.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

func (m *mockProductRepo) restore(snap map[int64]*domain.Product) {
	m.products = snap
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) LockForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	return m.GetByID(ctx, id)
}

func (m *mockProductRepo) ReserveStock(ctx context.Context, id, qty int64) error {
	p, ok := m.products[id]
	if !ok {
		return e.ErrProductNotFound
	}
	if p.Stock < qty {
		return e.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

func (m *mockProductRepo) SetStock(ctx context.Context, id, newStock int64) error {
	p, ok := m.products[id]
	if !ok {
		return e.ErrProductNotFound
	}
	p.Stock = newStock
	return nil
}

func (m *mockProductRepo) List(ctx context.Context, page, limit int64) ([]*domain.Product, int64, error) {
	products := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		products = append(products, &cp)
	}
	return products, int64(len(m.products)), nil
}

func (m *mockProductRepo) ListInventory(ctx context.Context) ([]InventoryItem, error) {
	items := make([]InventoryItem, 0, len(m.products))
	for _, p := range m.products {
		items = append(items, *NewInventoryItem(p))
	}
	return items, nil
}

func (m *mockProductRepo) Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error) {
	for _, p := range m.products {
		if p.Title == product.Title {
			product.ID = p.ID
			cp := *product
			m.products[p.ID] = &cp
			return NewUpsertProductRes(&cp, false), nil
		}
	}
	product.ID = int64(len(m.products) + 1)
	cp := *product
	m.products[cp.ID] = &cp
	return NewUpsertProductRes(&cp, false), nil
}

type mockOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[int64]*domain.Order), nextID: 1}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	cp := *order
	cp.ID = m.nextID
	m.nextID++
	m.orders[cp.ID] = &cp
	res := cp
	return &res, nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *mockOrderRepo) Find(ctx context.Context, userID *string, page, limit int64) ([]*domain.Order, int64, error) {
	matched := make([]*domain.Order, 0)
	for _, order := range m.orders {
		if userID != nil && order.UserID != *userID {
			continue
		}
		cp := *order
		matched = append(matched, &cp)
	}
	total := int64(len(matched))

	offset := (page - 1) * limit
	if offset >= total {
		return []*domain.Order{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	order, ok := m.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

type mockHistoryRepo struct {
	entries []*domain.StockHistoryEntry
}

func (m *mockHistoryRepo) Create(ctx context.Context, entry *domain.StockHistoryEntry) (*domain.StockHistoryEntry, error) {
	cp := *entry
	cp.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, &cp)
	return &cp, nil
}

type mockOutboxRepo struct {
	events []*OutboxEvent
}

func (m *mockOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	cp := *event
	cp.ID = int64(len(m.events) + 1)
	m.events = append(m.events, &cp)
	return &cp, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	claimed := make([]*OutboxEvent, 0)
	for _, ev := range m.events {
		if ev.Status == Pending && len(claimed) < limit {
			ev.Status = Processing
			claimed = append(claimed, ev)
		}
	}
	return claimed, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, ev := range m.events {
		if ev.ID == id {
			ev.Status = Processed
		}
	}
	return nil
}

// mockCacheRepo защищён мьютексом: кэширование товара идёт в фоновой горутине.
type mockCacheRepo struct {
	mu      sync.Mutex
	store   map[int64]ProductInfo
	deleted []int64
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{store: make(map[int64]ProductInfo)}
}

func (m *mockCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := make(map[int64]ProductInfo)
	for _, id := range ids {
		if info, ok := m.store[id]; ok {
			found[id] = info
		}
	}
	return found, nil
}

func (m *mockCacheRepo) SetProducts(ctx context.Context, products []ProductInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, info := range products {
		m.store[info.ID] = info
	}
	return nil
}

func (m *mockCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.store, id)
	}
	m.deleted = append(m.deleted, ids...)
	return nil
}

// mockTxManager эмулирует транзакционную семантику: перед fn снимается снимок
// товарного состояния, при ошибке fn состояние откатывается.
type mockTxManager struct {
	products *mockProductRepo
	history  *mockHistoryRepo
}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := m.products.snapshot()
	var historyLen int
	if m.history != nil {
		historyLen = len(m.history.entries)
	}

	if err := fn(ctx); err != nil {
		m.products.restore(snap)
		if m.history != nil {
			m.history.entries = m.history.entries[:historyLen]
		}
		return err
	}
	return nil
}

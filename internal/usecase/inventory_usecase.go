package usecase

import (
	"context"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

// InventoryUseCase реализует административное управление остатками.
type InventoryUseCase struct {
	productRepo ProductRepository
	historyRepo StockHistoryRepository
	txManager   TxManager
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewInventoryUC(
	productRepo ProductRepository,
	historyRepo StockHistoryRepository,
	txManager TxManager,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		productRepo: productRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// UpdateStock применяет корректировку остатка от администратора.
// Запись журнала и мутация остатка выполняются в одной транзакции, причём
// запись делается первой: изменение остатка без следа в журнале невозможно.
// previous_stock берётся из заблокированной строки, поэтому даже при
// конкурирующих корректировках журнал отражает значение непосредственно
// перед данной корректировкой.
func (i *InventoryUseCase) UpdateStock(ctx context.Context, principal domain.Principal, req *UpdateStockReq) (*InventoryItem, error) {
	const op = "InventoryUseCase.UpdateStock"

	if !principal.HasAnyRole(domain.RoleAdmin) {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	if req.NewStock < 0 {
		return nil, e.Wrap(op, e.ErrNegativeStock)
	}

	var item *InventoryItem
	err := i.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := i.productRepo.LockForUpdate(ctx, req.ProductID)
		if err != nil {
			return err
		}

		entry := domain.NewStockHistoryEntry(product.ID, product.Stock, req.NewStock, req.Reason, principal.UserID)
		if _, err := i.historyRepo.Create(ctx, entry); err != nil {
			return err
		}

		if err := i.productRepo.SetStock(ctx, product.ID, req.NewStock); err != nil {
			return err
		}

		product.Stock = req.NewStock
		item = NewInventoryItem(product)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := i.cacheRepo.DeleteProducts(ctx, []int64{req.ProductID}); err != nil {
		i.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return item, nil
}

// ListInventory возвращает остатки всех товаров, отсортированные по названию.
func (i *InventoryUseCase) ListInventory(ctx context.Context, principal domain.Principal) (*ListInventoryRes, error) {
	const op = "InventoryUseCase.ListInventory"

	if !principal.HasAnyRole(domain.RoleAdmin) {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	items, err := i.productRepo.ListInventory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListInventoryRes{
		Items: items,
		Total: int64(len(items)),
	}, nil
}

package pgdb

import (
	"context"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// StockHistoryRepo реализует append-only журнал изменений остатков.
// Записи только добавляются, обновлений и удалений нет.
type StockHistoryRepo struct {
	pool *pgxpool.Pool
}

func NewStockHistoryRepo(pool *pgxpool.Pool) *StockHistoryRepo {
	return &StockHistoryRepo{pool: pool}
}

// Create добавляет запись журнала внутри транзакции мутации остатка.
func (s *StockHistoryRepo) Create(ctx context.Context, entry *domain.StockHistoryEntry) (*domain.StockHistoryEntry, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO stock_history (product_id, previous_stock, new_stock, change, reason, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		entry.ProductID, entry.PreviousStock, entry.NewStock,
		entry.Change, entry.Reason, entry.UpdatedBy,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return entry, nil
}

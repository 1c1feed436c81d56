package pgdb

import (
	"context"

	"github.com/DRSN-tech/retail-backend/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// TxManager управляет жизненным циклом транзакций pgx.
// Объект транзакции прокидывается репозиториям через контекст (pkg/tr),
// поэтому методы, требующие транзакцию, вызываются только внутри Do.
type TxManager struct {
	pool transaction.Transactional
}

func NewTxManager(pool transaction.Transactional) *TxManager {
	return &TxManager{pool: pool}
}

// Do выполняет fn в границах одной транзакции.
// Если fn возвращает ошибку, транзакция откатывается целиком.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.pool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()

	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err := fn(ctx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, title, description, price_cents, tax_bp, stock,
		category_id, image_url, add_on_ids, combo_ids, created_at, updated_at`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetByID возвращает товар по идентификатору вне транзакции.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// LockForUpdate читает товар внутри транзакции с блокировкой строки.
// Конкурирующие операции над одним товаром сериализуются на этой блокировке.
func (p *ProductRepo) LockForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`

	model, err := scanProduct(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// ReserveStock атомарно списывает qty единиц при условии достаточного остатка.
// Условие stock >= qty продублировано в запросе: даже без внешней блокировки
// остаток не может уйти в минус.
func (p *ProductRepo) ReserveStock(ctx context.Context, id, qty int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2
	`

	ct, err := tx.Exec(ctx, query, id, qty)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if ct.RowsAffected() == 0 {
		return e.ErrInsufficientStock
	}

	return nil
}

// SetStock выставляет абсолютное значение остатка внутри транзакции.
func (p *ProductRepo) SetStock(ctx context.Context, id, newStock int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE products SET stock = $2, updated_at = NOW() WHERE id = $1`

	ct, err := tx.Exec(ctx, query, id, newStock)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if ct.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// List возвращает страницу каталога и общее количество товаров.
func (p *ProductRepo) List(ctx context.Context, page, limit int64) ([]*domain.Product, int64, error) {
	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}
		products = append(products, p.conv.ToEntity(model))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, total, nil
}

// ListInventory возвращает остатки всех товаров, отсортированные по названию.
func (p *ProductRepo) ListInventory(ctx context.Context) ([]usecase.InventoryItem, error) {
	query := `
		SELECT id, title, stock, category_id
		FROM products
		ORDER BY title ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items := make([]usecase.InventoryItem, 0)
	for rows.Next() {
		var item usecase.InventoryItem
		if err := rows.Scan(&item.ProductID, &item.Title, &item.Stock, &item.CategoryID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return items, nil
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному названию.
// Запись обновляется только при фактическом изменении полей.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*usecase.UpsertProductRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
		INSERT INTO products (title, description, price_cents, tax_bp, stock, category_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (title)
		DO UPDATE SET
			description = EXCLUDED.description,
			price_cents = EXCLUDED.price_cents,
			tax_bp = EXCLUDED.tax_bp,
			stock = EXCLUDED.stock,
			category_id = EXCLUDED.category_id,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
		WHERE
			products.description IS DISTINCT FROM EXCLUDED.description OR
			products.price_cents IS DISTINCT FROM EXCLUDED.price_cents OR
			products.tax_bp IS DISTINCT FROM EXCLUDED.tax_bp OR
			products.stock IS DISTINCT FROM EXCLUDED.stock OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id OR
			products.image_url IS DISTINCT FROM EXCLUDED.image_url
		RETURNING
			id, title, description, price_cents, tax_bp, stock,
			category_id, image_url, add_on_ids, combo_ids, created_at, updated_at
		)
		SELECT
			id, title, description, price_cents, tax_bp, stock,
			category_id, image_url, add_on_ids, combo_ids, created_at, updated_at,
			false AS no_changes
		FROM upsert

		UNION ALL

		SELECT
			id, title, description, price_cents, tax_bp, stock,
			category_id, image_url, add_on_ids, combo_ids, created_at, updated_at,
			true AS no_changes
		FROM products
		WHERE title = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ProductModel
	var noChanges bool
	err = tx.QueryRow(ctx, query,
		product.Title, product.Description, product.PriceCents, product.TaxBP,
		product.Stock, product.CategoryID, product.ImageURL,
	).Scan(
		&model.ID, &model.Title, &model.Description, &model.PriceCents,
		&model.TaxBP, &model.Stock, &model.CategoryID, &model.ImageURL,
		&model.AddOnIDs, &model.ComboIDs, &model.CreatedAt, &model.UpdatedAt,
		&noChanges,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertProductRes(p.conv.ToEntity(&model), noChanges), nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Title, &model.Description, &model.PriceCents,
		&model.TaxBP, &model.Stock, &model.CategoryID, &model.ImageURL,
		&model.AddOnIDs, &model.ComboIDs, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

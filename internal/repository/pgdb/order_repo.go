package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Позиции заказа лежат в order_items и неизменяемы после вставки.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create сохраняет заказ и его позиции внутри транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (user_id, subtotal_cents, tax_total_cents, total_cents, status, shipping_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		order.UserID, order.SubtotalCents, order.TaxTotalCents,
		order.TotalCents, order.Status, order.ShippingAddress,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, position, product_id, title, price_cents, tax_bp, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	for i, item := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			order.ID, i, item.ProductID, item.Title,
			item.PriceCents, item.TaxBP, item.Quantity,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return order, nil
}

// GetByID возвращает заказ с позициями в исходном порядке.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, user_id, subtotal_cents, tax_total_cents, total_cents, status, shipping_address, created_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := o.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.SubtotalCents, &order.TaxTotalCents,
		&order.TotalCents, &order.Status, &order.ShippingAddress, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrOrderNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsByOrder, err := o.loadItems(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[order.ID]

	return &order, nil
}

// Find возвращает страницу заказов, отсортированную по дате создания (новые первыми).
// userID == nil означает выборку по всем пользователям.
func (o *OrderRepo) Find(ctx context.Context, userID *string, page, limit int64) ([]*domain.Order, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM orders WHERE ($1::text IS NULL OR user_id = $1)`
	if err := o.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, user_id, subtotal_cents, tax_total_cents, total_cents, status, shipping_address, created_at
		FROM orders
		WHERE ($1::text IS NULL OR user_id = $1)
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := o.pool.Query(ctx, query, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.SubtotalCents, &order.TaxTotalCents,
			&order.TotalCents, &order.Status, &order.ShippingAddress, &order.CreatedAt,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}
		orders = append(orders, &order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(ids) > 0 {
		itemsByOrder, err := o.loadItems(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, order := range orders {
			order.Items = itemsByOrder[order.ID]
		}
	}

	return orders, total, nil
}

// UpdateStatus переводит заказ в новый статус.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $2 WHERE id = $1`

	ct, err := o.pool.Exec(ctx, query, id, status)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if ct.RowsAffected() == 0 {
		return e.ErrOrderNotFound
	}

	return nil
}

// loadItems загружает позиции заказов одним запросом, сохраняя порядок вставки.
func (o *OrderRepo) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderLineItem, error) {
	query := `
		SELECT order_id, product_id, title, price_cents, tax_bp, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`

	rows, err := o.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.OrderLineItem, len(orderIDs))
	for rows.Next() {
		var orderID int64
		var item domain.OrderLineItem
		if err := rows.Scan(
			&orderID, &item.ProductID, &item.Title,
			&item.PriceCents, &item.TaxBP, &item.Quantity,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result[orderID] = append(result[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

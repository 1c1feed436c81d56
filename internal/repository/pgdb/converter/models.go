package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	PriceCents  int64      `db:"price_cents"`
	TaxBP       int64      `db:"tax_bp"`
	Stock       int64      `db:"stock"`
	CategoryID  *int64     `db:"category_id"`
	ImageURL    *string    `db:"image_url"`
	AddOnIDs    []int64    `db:"add_on_ids"`
	ComboIDs    []int64    `db:"combo_ids"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

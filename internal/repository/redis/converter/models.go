package converter

// ProductInfoRedisModel — JSON-модель товара в кэше Redis.
type ProductInfoRedisModel struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PriceCents int64   `json:"price_cents"`
	TaxBP      int64   `json:"tax_bp"`
	Stock      int64   `json:"stock"`
	CategoryID *int64  `json:"category_id,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

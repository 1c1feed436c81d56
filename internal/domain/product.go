package domain

import "time"

// Product описывает товар каталога.
// Инвариант: Stock никогда не опускается ниже нуля после зафиксированной операции.
type Product struct {
	ID          int64
	Title       string
	Description *string
	PriceCents  int64 // Цена хранится в копейках
	TaxBP       int64 // Ставка налога в базисных пунктах (10% = 1000)
	Stock       int64
	CategoryID  *int64
	ImageURL    *string
	AddOnIDs    []int64
	ComboIDs    []int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(title string, priceCents, taxBP int64, categoryID *int64) *Product {
	return &Product{
		Title:      title,
		PriceCents: priceCents,
		TaxBP:      taxBP,
		CategoryID: categoryID,
	}
}

package domain

import "time"

// StockHistoryEntry — запись append-only журнала изменений остатков.
// Одна запись на каждую мутацию stock, создаётся в той же транзакции.
type StockHistoryEntry struct {
	ID            int64
	ProductID     int64
	PreviousStock int64
	NewStock      int64
	Change        int64 // NewStock - PreviousStock
	Reason        *string
	UpdatedBy     string
	CreatedAt     time.Time
}

func NewStockHistoryEntry(productID, previousStock, newStock int64, reason *string, updatedBy string) *StockHistoryEntry {
	return &StockHistoryEntry{
		ProductID:     productID,
		PreviousStock: previousStock,
		NewStock:      newStock,
		Change:        newStock - previousStock,
		Reason:        reason,
		UpdatedBy:     updatedBy,
	}
}

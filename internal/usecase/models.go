package usecase

import (
	"time"

	"github.com/DRSN-tech/retail-backend/internal/domain"
)

// ORDER USECASE

// OrderItemReq — запрошенная позиция заказа (товар и количество).
type OrderItemReq struct {
	ProductID int64
	Quantity  int64
}

// CreateOrderReq — запрос на оформление заказа.
type CreateOrderReq struct {
	Items           []OrderItemReq
	ShippingAddress *string
}

// ListOrdersReq — параметры постраничной выборки заказов.
type ListOrdersReq struct {
	Page  int64
	Limit int64
}

// ListOrdersRes — страница заказов с метаданными пагинации.
type ListOrdersRes struct {
	Orders     []*domain.Order
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// INVENTORY USECASE

// UpdateStockReq — административная корректировка остатка.
type UpdateStockReq struct {
	ProductID int64
	NewStock  int64
	Reason    *string
}

// InventoryItem — строка инвентаризационного списка.
type InventoryItem struct {
	ProductID  int64
	Title      string
	Stock      int64
	CategoryID *int64
}

type ListInventoryRes struct {
	Items []InventoryItem
	Total int64
}

// CATALOG USECASE

// ProductInfo — DTO товара для выдачи наружу и кэширования.
type ProductInfo struct {
	ID         int64
	Title      string
	PriceCents int64
	TaxBP      int64
	Stock      int64
	CategoryID *int64
	ImageURL   *string
}

type ListProductsReq struct {
	Page  int64
	Limit int64
}

type ListProductsRes struct {
	Products   []*domain.Product
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// UpsertProductReq — идемпотентное создание/обновление товара по названию.
type UpsertProductReq struct {
	Title       string
	Description *string
	PriceCents  int64
	TaxBP       int64
	Stock       int64
	CategoryID  *int64
	ImageURL    *string
}

type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated OutboxEventType = "order.created"
)

// OutboxEvent — событие для публикации в Kafka через транзакционный outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewProductInfo(p *domain.Product) ProductInfo {
	return ProductInfo{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: p.PriceCents,
		TaxBP:      p.TaxBP,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		ImageURL:   p.ImageURL,
	}
}

func NewInventoryItem(p *domain.Product) *InventoryItem {
	return &InventoryItem{
		ProductID:  p.ID,
		Title:      p.Title,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
	}
}

// TotalPages считает ceil(total/limit), минимум одна страница даже при total == 0.
func TotalPages(total, limit int64) int64 {
	if total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// validNext описывает допустимые переходы статусов.
// cancelled достижим из любого нетерминального статуса.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPending:    {OrderConfirmed: true, OrderCancelled: true},
	OrderConfirmed:  {OrderProcessing: true, OrderCancelled: true},
	OrderProcessing: {OrderShipped: true, OrderCancelled: true},
	OrderShipped:    {OrderDelivered: true, OrderCancelled: true},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

func (s OrderStatus) IsTerminal() bool {
	return len(validNext[s]) == 0
}

// ParseOrderStatus валидирует строковое представление статуса.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	_, ok := validNext[status]
	return status, ok
}

// OrderLineItem — неизменяемый снимок товара на момент оформления заказа.
// Последующие изменения цены товара не влияют на исторический заказ.
type OrderLineItem struct {
	ProductID  int64
	Title      string
	PriceCents int64
	TaxBP      int64
	Quantity   int64
}

// Order описывает заказ.
// Создаётся один раз; после создания меняется только статус. Никогда не удаляется.
type Order struct {
	ID              int64
	UserID          string
	Items           []OrderLineItem
	SubtotalCents   int64
	TaxTotalCents   int64
	TotalCents      int64
	Status          OrderStatus
	ShippingAddress *string
	CreatedAt       time.Time
}

func NewOrder(userID string, items []OrderLineItem, shippingAddress *string) *Order {
	return &Order{
		UserID:          userID,
		Items:           items,
		Status:          OrderPending,
		ShippingAddress: shippingAddress,
	}
}

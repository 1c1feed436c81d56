package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase реализует бизнес-логику оформления и чтения заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	txManager   TxManager
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	txManager TxManager,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		txManager:   txManager,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// CreateOrder оформляет заказ: резервирует остатки, снимает снимок позиций по
// текущим данным каталога, считает итоги и сохраняет заказ со статусом pending.
//
// Вся операция выполняется в одной транзакции: при отказе любой позиции
// (товар не найден, не хватает остатка) ни один остаток не остаётся списанным.
// Блокировка строки товара сериализует конкурирующие списания по одному товару,
// поэтому остаток никогда не уходит в минус.
func (o *OrderUseCase) CreateOrder(ctx context.Context, principal domain.Principal, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	if err := validateCreateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		created    *domain.Order
		productIDs = make([]int64, 0, len(req.Items))
	)

	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		lineItems := make([]domain.OrderLineItem, 0, len(req.Items))
		for _, item := range req.Items {
			product, err := o.productRepo.LockForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return e.Wrap(product.Title, e.ErrInsufficientStock)
			}

			// Снимок по текущим значениям каталога: последующие правки цены
			// не меняют исторический заказ.
			lineItems = append(lineItems, domain.OrderLineItem{
				ProductID:  product.ID,
				Title:      product.Title,
				PriceCents: product.PriceCents,
				TaxBP:      product.TaxBP,
				Quantity:   item.Quantity,
			})

			if err := o.productRepo.ReserveStock(ctx, product.ID, item.Quantity); err != nil {
				return err
			}
			productIDs = append(productIDs, product.ID)
		}

		totals := Aggregate(lineItemsToCartItems(lineItems))

		order := domain.NewOrder(principal.UserID, lineItems, req.ShippingAddress)
		order.SubtotalCents = totals.SubtotalCents
		order.TaxTotalCents = totals.TaxCents
		order.TotalCents = totals.TotalCents

		var err error
		created, err = o.orderRepo.Create(ctx, order)
		if err != nil {
			return err
		}

		return o.writeOrderCreatedEvent(ctx, created)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Инвалидация кэша каталога после коммита: остатки изменились.
	if err := o.cacheRepo.DeleteProducts(ctx, productIDs); err != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return created, nil
}

// GetOrder возвращает заказ по идентификатору.
// Заказ видят только его владелец и администратор.
func (o *OrderUseCase) GetOrder(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !principal.IsAdmin() && order.UserID != principal.UserID {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	return order, nil
}

// ListOrders возвращает страницу заказов: администратор видит все,
// остальные — только собственные.
func (o *OrderUseCase) ListOrders(ctx context.Context, principal domain.Principal, req *ListOrdersReq) (*ListOrdersRes, error) {
	const op = "OrderUseCase.ListOrders"

	page, limit := normalizePage(req.Page, req.Limit)

	var userID *string
	if !principal.IsAdmin() {
		userID = &principal.UserID
	}

	orders, total, err := o.orderRepo.Find(ctx, userID, page, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListOrdersRes{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// Reorder собирает новый заказ из позиций исторического заказа.
// Строго self-service: чужой заказ нельзя повторить даже администратору.
// Позиции оцениваются по текущему состоянию каталога.
func (o *OrderUseCase) Reorder(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error) {
	const op = "OrderUseCase.Reorder"

	source, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if source.UserID != principal.UserID {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	items := make([]OrderItemReq, 0, len(source.Items))
	for _, item := range source.Items {
		items = append(items, OrderItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return o.CreateOrder(ctx, principal, &CreateOrderReq{
		Items:           items,
		ShippingAddress: source.ShippingAddress,
	})
}

// UpdateStatus переводит заказ в новый статус по допустимым переходам.
// Доступно только администратору.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, principal domain.Principal, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateStatus"

	if !principal.HasAnyRole(domain.RoleAdmin) {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !domain.CanTransition(order.Status, status) {
		return nil, e.Wrap(op, e.ErrStatusNotAllowed)
	}

	if err := o.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, e.Wrap(op, err)
	}

	order.Status = status
	return order, nil
}

// writeOrderCreatedEvent пишет событие order.created в outbox в той же транзакции.
func (o *OrderUseCase) writeOrderCreatedEvent(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(newOrderCreatedPayload(order))
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderCreated, order.ID, payload))
	return err
}

func validateCreateOrder(req *CreateOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrEmptyOrderItems
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}

func normalizePage(page, limit int64) (int64, int64) {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// orderCreatedPayload — JSON-представление заказа в событии order.created.
type orderCreatedPayload struct {
	OrderID   int64                 `json:"order_id"`
	UserID    string                `json:"user_id"`
	Items     []orderPayloadItem    `json:"items"`
	Subtotal  int64                 `json:"subtotal_cents"`
	TaxTotal  int64                 `json:"tax_total_cents"`
	Total     int64                 `json:"total_cents"`
	Status    domain.OrderStatus    `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
}

type orderPayloadItem struct {
	ProductID  int64 `json:"product_id"`
	PriceCents int64 `json:"price_cents"`
	Quantity   int64 `json:"quantity"`
}

func newOrderCreatedPayload(order *domain.Order) orderCreatedPayload {
	items := make([]orderPayloadItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderPayloadItem{
			ProductID:  item.ProductID,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		})
	}

	return orderCreatedPayload{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Items:     items,
		Subtotal:  order.SubtotalCents,
		TaxTotal:  order.TaxTotalCents,
		Total:     order.TotalCents,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

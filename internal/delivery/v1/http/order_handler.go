package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type createOrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type createOrderRequest struct {
	Items           []createOrderItemRequest `json:"items"`
	ShippingAddress *string                  `json:"shipping_address,omitempty"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	ProductID  int64  `json:"product_id"`
	Title      string `json:"title"`
	Price      string `json:"price"`
	TaxPercent string `json:"tax_percent"`
	Quantity   int64  `json:"quantity"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	UserID          string              `json:"user_id"`
	Items           []orderItemResponse `json:"items"`
	Subtotal        string              `json:"subtotal"`
	TaxTotal        string              `json:"tax_total"`
	Total           string              `json:"total"`
	Status          string              `json:"status"`
	ShippingAddress *string             `json:"shipping_address,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

type orderListResponse struct {
	Orders     []orderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int64           `json:"page"`
	Limit      int64           `json:"limit"`
	TotalPages int64           `json:"total_pages"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID:  item.ProductID,
			Title:      item.Title,
			Price:      formatCents(item.PriceCents),
			TaxPercent: formatBP(item.TaxBP),
			Quantity:   item.Quantity,
		})
	}

	return orderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		Subtotal:        formatCents(order.SubtotalCents),
		TaxTotal:        formatCents(order.TaxTotalCents),
		Total:           formatCents(order.TotalCents),
		Status:          string(order.Status),
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Создает заказ из позиций корзины: снимок цен, резерв остатков и итоги в одной транзакции
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createOrderRequest	true	"Позиции заказа"
//	@Success		201		{object}	orderResponse		"Созданный заказ"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse		"Недостаточно остатка"
//	@Router			/orders [post]
func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemReq{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUsecase.CreateOrder(r.Context(), principal, &usecase.CreateOrderReq{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newOrderResponse(order))
}

// getOrder
//
//	@Summary		Получение заказа
//	@Description	Возвращает заказ по идентификатору. Покупатель видит только свои заказы
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		int				true	"Идентификатор заказа"
//	@Success		200		{object}	orderResponse	"Заказ"
//	@Failure		403		{object}	ErrorResponse	"Чужой заказ"
//	@Failure		404		{object}	ErrorResponse	"Заказ не найден"
//	@Router			/orders/{orderID} [get]
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	orderID, err := urlParamInt64(r, "orderID", e.ErrOrderNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.GetOrder(r.Context(), principal, orderID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}

// listOrders
//
//	@Summary		Список заказов
//	@Description	Постраничный список: покупатель видит свои заказы, администратор — все
//	@Tags			orders
//	@Produce		json
//	@Param			page	query		int					false	"Номер страницы"
//	@Param			limit	query		int					false	"Размер страницы"
//	@Success		200		{object}	orderListResponse	"Страница заказов"
//	@Router			/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	page, limit := parsePagination(r)

	res, err := h.orderUsecase.ListOrders(r.Context(), principal, &usecase.ListOrdersReq{Page: page, Limit: limit})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	orders := make([]orderResponse, 0, len(res.Orders))
	for _, order := range res.Orders {
		orders = append(orders, newOrderResponse(order))
	}

	WriteSuccess(w, http.StatusOK, orderListResponse{
		Orders:     orders,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	})
}

// reorder
//
//	@Summary		Повтор заказа
//	@Description	Создает новый заказ из позиций существующего по текущим ценам и остаткам
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		int				true	"Идентификатор исходного заказа"
//	@Success		201		{object}	orderResponse	"Новый заказ"
//	@Failure		404		{object}	ErrorResponse	"Исходный заказ не найден"
//	@Failure		409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/orders/{orderID}/reorder [post]
func (h *OrderHandler) reorder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	orderID, err := urlParamInt64(r, "orderID", e.ErrOrderNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.Reorder(r.Context(), principal, orderID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newOrderResponse(order))
}

// updateStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Административный перевод заказа по графу статусов
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int							true	"Идентификатор заказа"
//	@Param			request	body		updateOrderStatusRequest	true	"Новый статус"
//	@Success		200		{object}	orderResponse				"Обновленный заказ"
//	@Failure		403		{object}	ErrorResponse				"Требуется роль администратора"
//	@Failure		409		{object}	ErrorResponse				"Недопустимый переход"
//	@Router			/orders/{orderID}/status [patch]
func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	orderID, err := urlParamInt64(r, "orderID", e.ErrOrderNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		WriteError(w, e.ErrInvalidStatus)
		return
	}

	order, err := h.orderUsecase.UpdateStatus(r.Context(), principal, orderID, status)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}

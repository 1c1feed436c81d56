package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *InventoryHandler {
	return &InventoryHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

type updateStockRequest struct {
	Stock  int64   `json:"stock"`
	Reason *string `json:"reason,omitempty"`
}

type inventoryItemResponse struct {
	ProductID  int64  `json:"product_id"`
	Title      string `json:"title"`
	Stock      int64  `json:"stock"`
	CategoryID *int64 `json:"category_id,omitempty"`
}

type inventoryListResponse struct {
	Items []inventoryItemResponse `json:"items"`
	Total int64                   `json:"total"`
}

// listInventory
//
//	@Summary		Инвентаризационный список
//	@Description	Полный список товаров с текущими остатками. Только для администратора
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	inventoryListResponse	"Список остатков"
//	@Failure		403	{object}	ErrorResponse			"Требуется роль администратора"
//	@Router			/inventory [get]
func (h *InventoryHandler) listInventory(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.inventoryUsecase.ListInventory(r.Context(), principal)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]inventoryItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, inventoryItemResponse{
			ProductID:  item.ProductID,
			Title:      item.Title,
			Stock:      item.Stock,
			CategoryID: item.CategoryID,
		})
	}

	WriteSuccess(w, http.StatusOK, inventoryListResponse{Items: items, Total: res.Total})
}

// updateStock
//
//	@Summary		Корректировка остатка
//	@Description	Устанавливает новый остаток товара с записью в журнал изменений
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Идентификатор товара"
//	@Param			request		body		updateStockRequest		true	"Новый остаток и причина"
//	@Success		200			{object}	inventoryItemResponse	"Обновленный остаток"
//	@Failure		400			{object}	ErrorResponse			"Отрицательный остаток"
//	@Failure		403			{object}	ErrorResponse			"Требуется роль администратора"
//	@Failure		404			{object}	ErrorResponse			"Товар не найден"
//	@Router			/inventory/{productID} [patch]
func (h *InventoryHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := urlParamInt64(r, "productID", e.ErrProductNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.inventoryUsecase.UpdateStock(r.Context(), principal, &usecase.UpdateStockReq{
		ProductID: productID,
		NewStock:  req.Stock,
		Reason:    req.Reason,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, inventoryItemResponse{
		ProductID:  item.ProductID,
		Title:      item.Title,
		Stock:      item.Stock,
		CategoryID: item.CategoryID,
	})
}

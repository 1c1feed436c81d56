package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

type CartHandler struct {
	logger logger.Logger
}

func NewCartHandler(logger logger.Logger) *CartHandler {
	return &CartHandler{logger: logger}
}

type cartItemRequest struct {
	Price      string `json:"price"`
	Quantity   int64  `json:"quantity,omitempty"`
	TaxPercent string `json:"tax_percent,omitempty"`
}

type cartTotalsRequest struct {
	Items []cartItemRequest `json:"items"`
}

type cartTotalsResponse struct {
	TotalItems int64  `json:"total_items"`
	Subtotal   string `json:"subtotal"`
	Tax        string `json:"tax"`
	Total      string `json:"total"`
}

// cartTotals
//
//	@Summary		Итоги корзины
//	@Description	Считает количество позиций, подытог, налог и итог без создания заказа
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cartTotalsRequest	true	"Позиции корзины"
//	@Success		200		{object}	cartTotalsResponse	"Итоги"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/cart/totals [post]
func (h *CartHandler) cartTotals(w http.ResponseWriter, r *http.Request) {
	var req cartTotalsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		priceCents, err := parsePriceToCents(item.Price)
		if err != nil {
			WriteError(w, err)
			return
		}

		taxBP, err := parseTaxPercentToBP(item.TaxPercent)
		if err != nil {
			WriteError(w, err)
			return
		}

		// Количество по умолчанию — одна штука.
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			WriteError(w, e.ErrInvalidQuantity)
			return
		}

		items = append(items, usecase.CartItem{
			PriceCents: priceCents,
			Quantity:   quantity,
			TaxBP:      taxBP,
		})
	}

	totals := usecase.Aggregate(items)

	WriteSuccess(w, http.StatusOK, cartTotalsResponse{
		TotalItems: totals.TotalItems,
		Subtotal:   formatCents(totals.SubtotalCents),
		Tax:        formatCents(totals.TaxCents),
		Total:      formatCents(totals.TotalCents),
	})
}

package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type upsertProductRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       string  `json:"price"`
	TaxPercent  string  `json:"tax_percent,omitempty"`
	Stock       int64   `json:"stock"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type productResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Price      string  `json:"price"`
	TaxPercent string  `json:"tax_percent"`
	Stock      int64   `json:"stock"`
	CategoryID *int64  `json:"category_id,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

type productListResponse struct {
	Products   []productResponse `json:"products"`
	Total      int64             `json:"total"`
	Page       int64             `json:"page"`
	Limit      int64             `json:"limit"`
	TotalPages int64             `json:"total_pages"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Title:      p.Title,
		Price:      formatCents(p.PriceCents),
		TaxPercent: formatBP(p.TaxBP),
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		ImageURL:   p.ImageURL,
	}
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает товар по идентификатору (с чтением из кэша)
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		int				true	"Идентификатор товара"
//	@Success		200			{object}	productResponse	"Товар"
//	@Failure		404			{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{productID} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := urlParamInt64(r, "productID", e.ErrProductNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := h.catalogUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productResponse{
		ID:         info.ID,
		Title:      info.Title,
		Price:      formatCents(info.PriceCents),
		TaxPercent: formatBP(info.TaxBP),
		Stock:      info.Stock,
		CategoryID: info.CategoryID,
		ImageURL:   info.ImageURL,
	})
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Постраничный список каталога
//	@Tags			products
//	@Produce		json
//	@Param			page	query		int					false	"Номер страницы"
//	@Param			limit	query		int					false	"Размер страницы"
//	@Success		200		{object}	productListResponse	"Страница каталога"
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	res, err := h.catalogUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{Page: page, Limit: limit})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	products := make([]productResponse, 0, len(res.Products))
	for _, p := range res.Products {
		products = append(products, newProductResponse(p))
	}

	WriteSuccess(w, http.StatusOK, productListResponse{
		Products:   products,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	})
}

// upsertProduct
//
//	@Summary		Регистрация товара
//	@Description	Идемпотентно создает или обновляет товар по названию. Только для администратора
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		upsertProductRequest	true	"Данные товара"
//	@Success		201		{object}	productResponse			"Созданный или обновленный товар"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		403		{object}	ErrorResponse			"Требуется роль администратора"
//	@Router			/products [post]
func (h *CatalogHandler) upsertProduct(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req upsertProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	taxBP, err := parseTaxPercentToBP(req.TaxPercent)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.catalogUsecase.UpsertProduct(r.Context(), principal, &usecase.UpsertProductReq{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  priceCents,
		TaxBP:       taxBP,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if res.NoChanges {
		status = http.StatusOK
	}
	WriteSuccess(w, status, newProductResponse(res.Product))
}

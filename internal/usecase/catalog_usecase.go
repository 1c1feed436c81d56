package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

// CatalogUseCase реализует чтение каталога и административный upsert товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	txManager   TxManager
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	txManager TxManager,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetProduct возвращает товар по идентификатору, сначала из кэша.
func (c *CatalogUseCase) GetProduct(ctx context.Context, productID int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, err := c.cacheRepo.GetProducts(ctx, []int64{productID})
	if err == nil {
		if info, ok := cached[productID]; ok {
			return &info, nil
		}
	}

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewProductInfo(product)

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, []ProductInfo{info}); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &info, nil
}

// ListProducts возвращает страницу каталога.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	page, limit := normalizePage(req.Page, req.Limit)

	products, total, err := c.productRepo.List(ctx, page, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListProductsRes{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// UpsertProduct идемпотентно создаёт или обновляет товар по названию.
// Доступно только администратору.
func (c *CatalogUseCase) UpsertProduct(ctx context.Context, principal domain.Principal, req *UpsertProductReq) (*UpsertProductRes, error) {
	const op = "CatalogUseCase.UpsertProduct"

	if !principal.HasAnyRole(domain.RoleAdmin) {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	if err := validateUpsertProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var res *UpsertProductRes
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		product := domain.NewProduct(req.Title, req.PriceCents, req.TaxBP, req.CategoryID)
		product.Description = req.Description
		product.Stock = req.Stock
		product.ImageURL = req.ImageURL

		var err error
		res, err = c.productRepo.Upsert(ctx, product)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteProducts(ctx, []int64{res.Product.ID}); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return res, nil
}

func validateUpsertProduct(req *UpsertProductReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return e.ErrProductTitleEmpty
	}

	if req.PriceCents <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.TaxBP < 0 || req.TaxBP > 10000 {
		return e.ErrInvalidTaxPercent
	}

	if req.Stock < 0 {
		return e.ErrNegativeStock
	}

	return nil
}

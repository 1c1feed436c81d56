package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/DRSN-tech/retail-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(orderUC usecase.OrderUC, inventoryUC usecase.InventoryUC, catalogUC usecase.CatalogUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(Authenticate)

		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerInventoryRoutes(v1, NewInventoryHandler(inventoryUC, r.logger))
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(r.logger))
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.createOrder)
		or.Get("/", h.listOrders)
		or.Get("/{orderID}", h.getOrder)
		or.Post("/{orderID}/reorder", h.reorder)
		or.Patch("/{orderID}/status", h.updateStatus)
	})
}

func registerInventoryRoutes(router chi.Router, h *InventoryHandler) {
	router.Route("/inventory", func(inv chi.Router) {
		inv.Get("/", h.listInventory)
		inv.Patch("/{productID}", h.updateStock)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{productID}", h.getProduct)
		pr.Post("/", h.upsertProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(ct chi.Router) {
		ct.Post("/totals", h.cartTotals)
	})
}

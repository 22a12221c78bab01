package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/internal/category"
	"github.com/storekeep/inventory-service/internal/product"
	"github.com/storekeep/inventory-service/internal/sales"
	"github.com/storekeep/inventory-service/internal/supplier"
)

type Handler struct {
	items      product.UseCase
	categories category.UseCase
	suppliers  supplier.UseCase
	sales      sales.UseCase
	log        *zap.Logger
}

func NewRouter(items product.UseCase, categories category.UseCase,
	suppliers supplier.UseCase, sl sales.UseCase, log *zap.Logger) http.Handler {

	h := &Handler{items: items, categories: categories, suppliers: suppliers, sales: sl, log: log}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Route("/categories", func(c chi.Router) {
			c.Get("/", h.handleListCategories)
			c.Post("/", h.handleCreateCategory)
			c.Get("/{name}", h.handleGetCategoryByName)
		})

		api.Route("/items", func(it chi.Router) {
			it.Get("/", h.handleListItems)
			it.Post("/", h.handleCreateItem)
			it.Get("/sku/{sku}", h.handleGetItemBySKU)
			it.Get("/{id}", h.handleGetItemDetails)
			it.Put("/{id}", h.handleUpdateItem)
			it.Delete("/{id}", h.handleDeleteItem)
			it.Get("/{id}/suppliers", h.handleGetItemSuppliers)
			it.Get("/{id}/sales", h.handleGetItemSuppliersSales)
		})

		api.Route("/suppliers", func(s chi.Router) {
			s.Get("/", h.handleListSuppliers)
			s.Post("/", h.handleCreateSupplier)
			s.Get("/code/{code}", h.handleGetSupplierByCode)
			s.Get("/{id}", h.handleGetSupplier)
			s.Put("/{id}", h.handleUpdateSupplier)
			s.Delete("/{id}", h.handleDeleteSupplier)
			s.Get("/{id}/items", h.handleGetSupplierItems)
		})

		api.Route("/sales", func(s chi.Router) {
			s.Get("/", h.handleListSales)
			s.Post("/link", h.handleLinkSupplier)
			s.Post("/unlink", h.handleUnlinkSupplier)
			s.Post("/sell", h.handleSell)
			s.Post("/procure", h.handleProcure)
		})
	})

	return r
}

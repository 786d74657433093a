package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the REST API router
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/health", handler.health)
	r.Get("/health/db", handler.dbHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", handler.listCustomers)
			r.Post("/", handler.createCustomer)
			r.Get("/{id}", handler.getCustomer)
			r.Put("/{id}", handler.updateCustomer)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler.listProducts)
			r.Post("/", handler.createProduct)
			r.Get("/{id}", handler.getProduct)
			r.Put("/{id}", handler.updateProduct)
			r.Delete("/{id}", handler.deleteProduct)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handler.listOrders)
			r.Post("/", handler.createOrder)
			r.Get("/{id}", handler.getOrder)
			r.Put("/{id}", handler.updateOrder)
			r.Delete("/{id}", handler.cancelOrder)
		})
	})

	return r
}

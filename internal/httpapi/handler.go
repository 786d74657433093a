package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/semidist/storders/internal/catalog"
	"github.com/semidist/storders/internal/customer"
	"github.com/semidist/storders/internal/order"
	"github.com/semidist/storders/internal/storage"
)

// Handler serves the REST API over the domain services
type Handler struct {
	orders    *order.Service
	products  *catalog.Service
	customers *customer.Service
	store     storage.Storage
}

// NewHandler wires the handler to its domain services. The store is only
// used for the database health probe.
func NewHandler(orders *order.Service, products *catalog.Service, customers *customer.Service, store storage.Storage) *Handler {
	return &Handler{
		orders:    orders,
		products:  products,
		customers: customers,
		store:     store,
	}
}

// urlID extracts and validates the {id} path parameter
func urlID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// queryInt reads an integer query parameter, falling back to def on
// absent or malformed values
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

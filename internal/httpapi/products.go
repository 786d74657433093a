package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/semidist/storders/internal/catalog"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), catalog.ListRequest{
		Category: r.URL.Query().Get("category"),
		Family:   r.URL.Query().Get("family"),
		Search:   r.URL.Query().Get("search"),
		Offset:   queryInt(r, "skip", 0),
		Limit:    queryInt(r, "limit", 100),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, productResponses(products))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "product id must be a UUID")
		return
	}
	p, err := h.products.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, productResponse(p))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.PartNumber == "" || req.Name == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "part_number, name and category are required")
		return
	}
	if req.UnitPrice.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_request", "unit_price must not be negative")
		return
	}

	p, err := h.products.Create(r.Context(), catalog.CreateRequest{
		PartNumber:    req.PartNumber,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Family:        req.Family,
		UnitPrice:     req.UnitPrice,
		Currency:      req.Currency,
		StockQuantity: req.StockQuantity,
		LeadTimeDays:  req.LeadTimeDays,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, productResponse(p))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "product id must be a UUID")
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	p, err := h.products.Update(r.Context(), id, catalog.UpdateRequest{
		PartNumber:    req.PartNumber,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Family:        req.Family,
		UnitPrice:     req.UnitPrice,
		Currency:      req.Currency,
		StockQuantity: req.StockQuantity,
		LeadTimeDays:  req.LeadTimeDays,
		IsActive:      req.IsActive,
	})
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, productResponse(p))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "product id must be a UUID")
		return
	}
	p, err := h.products.Deactivate(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, productResponse(p))
}

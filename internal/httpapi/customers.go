package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/semidist/storders/internal/customer"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context(), customer.ListRequest{
		Search:  r.URL.Query().Get("search"),
		Country: r.URL.Query().Get("country"),
		Offset:  queryInt(r, "skip", 0),
		Limit:   queryInt(r, "limit", 100),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, customerResponses(customers))
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "customer id must be a UUID")
		return
	}
	c, err := h.customers.Get(r.Context(), id)
	if errors.Is(err, customer.ErrNotFound) {
		writeError(w, http.StatusNotFound, "customer_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, customerResponse(c))
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.CompanyName == "" || req.ContactName == "" || req.ContactEmail == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "company_name, contact_name and contact_email are required")
		return
	}

	c, err := h.customers.Create(r.Context(), customer.CreateRequest{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, customerResponse(c))
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "customer id must be a UUID")
		return
	}

	var req UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	c, err := h.customers.Update(r.Context(), id, customer.UpdateRequest{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
	})
	if errors.Is(err, customer.ErrNotFound) {
		writeError(w, http.StatusNotFound, "customer_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, customerResponse(c))
}

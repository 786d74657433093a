package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/semidist/storders/internal/order"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	var status order.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := order.ParseStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_status", "unknown status: "+raw)
			return
		}
		status = parsed
	}

	customerID := r.URL.Query().Get("customer_id")
	if customerID != "" {
		if _, err := uuid.Parse(customerID); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_customer_id", "customer_id must be a UUID")
			return
		}
	}

	orders, err := h.orders.List(r.Context(), order.ListRequest{
		Status:     status,
		CustomerID: customerID,
		Offset:     queryInt(r, "skip", 0),
		Limit:      queryInt(r, "limit", 100),
	})
	if err != nil {
		recordOrderOperation("list", false)
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	recordOrderOperation("list", true)
	writeJSON(w, http.StatusOK, orderResponses(orders))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "order id must be a UUID")
		return
	}
	o, err := h.orders.Get(r.Context(), id)
	if errors.Is(err, order.ErrNotFound) {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orderResponse(o))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if _, err := uuid.Parse(req.CustomerID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_customer_id", "customer_id must be a UUID")
		return
	}

	items := make([]order.CreateItem, 0, len(req.Items))
	for _, item := range req.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a UUID")
			return
		}
		if item.Quantity < 1 {
			writeError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be a positive integer")
			return
		}
		items = append(items, order.CreateItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	o, err := h.orders.Create(r.Context(), order.CreateRequest{
		CustomerID:      req.CustomerID,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		Items:           items,
	})
	if err != nil {
		recordOrderOperation("create", false)
		var pnf *order.ProductNotFoundError
		if errors.As(err, &pnf) {
			writeError(w, http.StatusBadRequest, "product_not_found", pnf.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	recordOrderOperation("create", true)
	writeJSON(w, http.StatusCreated, orderResponse(o))
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "order id must be a UUID")
		return
	}

	var req UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	update := order.UpdateRequest{
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		status, ok := order.ParseStatus(*req.Status)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_status", "unknown status: "+*req.Status)
			return
		}
		update.Status = &status
	}

	o, err := h.orders.Update(r.Context(), id, update)
	if errors.Is(err, order.ErrNotFound) {
		recordOrderOperation("update", false)
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}
	if err != nil {
		recordOrderOperation("update", false)
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	recordOrderOperation("update", true)
	writeJSON(w, http.StatusOK, orderResponse(o))
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "order id must be a UUID")
		return
	}
	o, err := h.orders.Cancel(r.Context(), id)
	if errors.Is(err, order.ErrNotFound) {
		recordOrderOperation("cancel", false)
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}
	if err != nil {
		recordOrderOperation("cancel", false)
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	recordOrderOperation("cancel", true)
	writeJSON(w, http.StatusOK, orderResponse(o))
}

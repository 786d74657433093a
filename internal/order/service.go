package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/semidist/storders/internal/storage"
)

const (
	// orderCurrency is fixed for all created orders; the catalog currency
	// is not propagated per line.
	orderCurrency = "USD"
	// createAttempts bounds the retry loop around order-number collisions
	createAttempts = 3
	// defaultMaxListLimit caps the list window
	defaultMaxListLimit = 100
)

// Service is the order lifecycle engine. It prices line items from the
// current catalog, assigns sequential order numbers and governs status
// transitions with their timestamp side effects.
type Service struct {
	store    storage.Storage
	now      func() time.Time
	maxLimit int
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the time source, used by tests to pin timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMaxListLimit overrides the maximum list window
func WithMaxListLimit(limit int) Option {
	return func(s *Service) {
		s.maxLimit = limit
	}
}

// New creates an order lifecycle service backed by the given store
func New(store storage.Storage, opts ...Option) *Service {
	s := &Service{
		store:    store,
		now:      time.Now,
		maxLimit: defaultMaxListLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateItem is a requested product/quantity pair. Quantity is trusted to
// be positive; the transport boundary validates it.
type CreateItem struct {
	ProductID string
	Quantity  int
}

// CreateRequest carries the inputs for order creation. Items may be
// empty; CustomerID is stored verbatim without an existence check.
type CreateRequest struct {
	CustomerID      string
	ShippingAddress *string
	Notes           *string
	Items           []CreateItem
}

// UpdateRequest is a partial update; nil fields are left unchanged
type UpdateRequest struct {
	Status          *Status
	ShippingAddress *string
	Notes           *string
}

// ListRequest filters and paginates the order listing
type ListRequest struct {
	Status     Status
	CustomerID string
	Offset     int
	Limit      int
}

// Create prices the requested lines against the catalog, assigns the next
// order number and persists the order with all items atomically. The
// whole operation runs in one transaction; a duplicate order number at
// commit retries the attempt a bounded number of times.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*storage.Order, error) {
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		order, err := s.createOnce(ctx, req)
		if err == nil {
			return order, nil
		}
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Another writer took this sequence number; re-count and retry.
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("order number assignment failed after %d attempts: %w", createAttempts, lastErr)
}

func (s *Service) createOnce(ctx context.Context, req CreateRequest) (*storage.Order, error) {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := s.now().UTC()
	number, err := nextOrderNumber(ctx, tx, now)
	if err != nil {
		return nil, err
	}

	order := &storage.Order{
		ID:              uuid.NewString(),
		OrderNumber:     number,
		CustomerID:      req.CustomerID,
		Status:          string(StatusPending),
		Currency:        orderCurrency,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		OrderedAt:       now,
	}

	total := decimal.Zero
	for _, line := range req.Items {
		product, err := tx.GetProduct(ctx, line.ProductID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", line.ProductID, err)
		}
		// Copy the catalog price at this instant; later catalog changes
		// must not affect this order.
		lineTotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		order.Items = append(order.Items, &storage.OrderItem{
			ID:        uuid.NewString(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: product.UnitPrice,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.TotalAmount = total.Round(2)

	if err := tx.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, mapCommitErr(err)
	}

	return s.Get(ctx, order.ID)
}

// mapCommitErr keeps a uniqueness violation surfaced at commit time
// recognizable to the retry loop
func mapCommitErr(err error) error {
	if errors.Is(err, storage.ErrAlreadyExists) {
		return err
	}
	return fmt.Errorf("failed to commit order: %w", err)
}

// Get returns the hydrated order or ErrNotFound
func (s *Service) Get(ctx context.Context, id string) (*storage.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns orders matching all supplied filters, most recent first,
// each hydrated with its items. Limit is clamped to the configured window.
func (s *Service) List(ctx context.Context, req ListRequest) ([]*storage.Order, error) {
	limit := req.Limit
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	return s.store.ListOrders(ctx, storage.OrderFilter{
		Status:     string(req.Status),
		CustomerID: req.CustomerID,
		Offset:     offset,
		Limit:      limit,
	})
}

// Update applies a partial update to the order. Shipment and delivery
// timestamps are set before the field assignment, only when the new
// status first reaches shipped or delivered; once set they are never
// overwritten. No transition-legality check is enforced.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*storage.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		now := s.now().UTC()
		switch *req.Status {
		case StatusShipped:
			if order.ShippedAt == nil {
				order.ShippedAt = &now
			}
		case StatusDelivered:
			if order.DeliveredAt == nil {
				order.DeliveredAt = &now
			}
		}
		order.Status = string(*req.Status)
	}
	if req.ShippingAddress != nil {
		order.ShippingAddress = req.ShippingAddress
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	if err := s.store.UpdateOrder(ctx, order); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Cancel marks the order cancelled. It is a plain status update: no rule
// blocks cancelling an already shipped or delivered order.
func (s *Service) Cancel(ctx context.Context, id string) (*storage.Order, error) {
	status := StatusCancelled
	return s.Update(ctx, id, UpdateRequest{Status: &status})
}

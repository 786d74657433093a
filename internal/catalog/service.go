package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/semidist/storders/internal/storage"
)

// ErrNotFound is returned when the target product does not exist
var ErrNotFound = errors.New("product not found")

// Service owns product identity, the current list price and the active
// flag. Plain field-level CRUD; no derived state.
type Service struct {
	store storage.Storage
}

// New creates a product catalog service backed by the given store
func New(store storage.Storage) *Service {
	return &Service{store: store}
}

// CreateRequest carries the fields for a new catalog entry
type CreateRequest struct {
	PartNumber    string
	Name          string
	Description   *string
	Category      string
	Family        *string
	UnitPrice     decimal.Decimal
	Currency      string
	StockQuantity int
	LeadTimeDays  *int
}

// UpdateRequest is a partial update; nil fields are left unchanged
type UpdateRequest struct {
	PartNumber    *string
	Name          *string
	Description   *string
	Category      *string
	Family        *string
	UnitPrice     *decimal.Decimal
	Currency      *string
	StockQuantity *int
	LeadTimeDays  *int
	IsActive      *bool
}

// ListRequest filters and paginates the product listing. Only active
// products are listed; resolution by id is not gated on the active flag.
type ListRequest struct {
	Category string
	Family   string
	Search   string
	Offset   int
	Limit    int
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*storage.Product, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	product := &storage.Product{
		ID:            uuid.NewString(),
		PartNumber:    req.PartNumber,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Family:        req.Family,
		UnitPrice:     req.UnitPrice,
		Currency:      currency,
		StockQuantity: req.StockQuantity,
		LeadTimeDays:  req.LeadTimeDays,
		IsActive:      true,
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) Get(ctx context.Context, id string) (*storage.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*storage.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PartNumber != nil {
		product.PartNumber = *req.PartNumber
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Family != nil {
		product.Family = req.Family
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.Currency != nil {
		product.Currency = *req.Currency
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.LeadTimeDays != nil {
		product.LeadTimeDays = req.LeadTimeDays
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Deactivate soft-deletes the product by clearing its active flag.
// Existing orders keep their copied prices; the product simply stops
// appearing in listings.
func (s *Service) Deactivate(ctx context.Context, id string) (*storage.Product, error) {
	inactive := false
	return s.Update(ctx, id, UpdateRequest{IsActive: &inactive})
}

func (s *Service) List(ctx context.Context, req ListRequest) ([]*storage.Product, error) {
	return s.store.ListProducts(ctx, storage.ProductFilter{
		Category:   req.Category,
		Family:     req.Family,
		Search:     req.Search,
		ActiveOnly: true,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
}

package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/semidist/storders/internal/storage"
)

// ErrNotFound is returned when the target customer does not exist
var ErrNotFound = errors.New("customer not found")

// Service is the customer directory: plain field-level CRUD over buyer
// records. Order creation stores customer ids verbatim and never calls
// back into this service.
type Service struct {
	store storage.Storage
}

// New creates a customer directory service backed by the given store
func New(store storage.Storage) *Service {
	return &Service{store: store}
}

// CreateRequest carries the fields for a new customer record
type CreateRequest struct {
	CompanyName  string
	ContactName  string
	ContactEmail string
	Phone        *string
	Address      *string
	City         *string
	Country      *string
}

// UpdateRequest is a partial update; nil fields are left unchanged
type UpdateRequest struct {
	CompanyName  *string
	ContactName  *string
	ContactEmail *string
	Phone        *string
	Address      *string
	City         *string
	Country      *string
}

// ListRequest filters and paginates the customer listing
type ListRequest struct {
	Search  string
	Country string
	Offset  int
	Limit   int
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*storage.Customer, error) {
	customer := &storage.Customer{
		ID:           uuid.NewString(),
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
	}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Service) Get(ctx context.Context, id string) (*storage.Customer, error) {
	customer, err := s.store.GetCustomer(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*storage.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		customer.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		customer.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		customer.ContactEmail = *req.ContactEmail
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.City != nil {
		customer.City = req.City
	}
	if req.Country != nil {
		customer.Country = req.Country
	}

	if err := s.store.UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context, req ListRequest) ([]*storage.Customer, error) {
	return s.store.ListCustomers(ctx, storage.CustomerFilter{
		Search:  req.Search,
		Country: req.Country,
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
}

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an insert violates a uniqueness constraint
	ErrAlreadyExists = errors.New("already exists")
)

// Storage defines the interface for persisting customers, products and orders
type Storage interface {
	// Customer operations
	CreateCustomer(ctx context.Context, customer *Customer) error
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	UpdateCustomer(ctx context.Context, customer *Customer) error
	ListCustomers(ctx context.Context, filter CustomerFilter) ([]*Customer, error)

	// Product operations
	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// Order operations. CreateOrder writes the order row and all item rows;
	// run it inside a transaction together with CountOrdersByNumberPrefix so
	// the sequence assignment is serial per month prefix.
	CreateOrder(ctx context.Context, order *Order) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	CountOrdersByNumberPrefix(ctx context.Context, prefix string) (int, error)
	DeleteOrder(ctx context.Context, id string) error

	// Database operations
	Ping(ctx context.Context) error
	Close() error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx represents a database transaction
type Tx interface {
	Commit() error
	Rollback() error
	Storage // Embed Storage interface for transaction operations
}

// Customer is a buyer in the customer directory
type Customer struct {
	ID           string
	CompanyName  string
	ContactName  string
	ContactEmail string
	Phone        *string
	Address      *string
	City         *string
	Country      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product is a catalog entry with the current list price
type Product struct {
	ID            string
	PartNumber    string
	Name          string
	Description   *string
	Category      string
	Family        *string
	UnitPrice     decimal.Decimal
	Currency      string
	StockQuantity int
	LeadTimeDays  *int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Order is the aggregate root; Items are owned exclusively by the order
// and are written and deleted together with it.
type Order struct {
	ID              string
	OrderNumber     string
	CustomerID      string
	Status          string
	TotalAmount     decimal.Decimal
	Currency        string
	ShippingAddress *string
	Notes           *string
	OrderedAt       time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []*OrderItem
}

// OrderItem is a priced line of an order. UnitPrice is a copy of the
// catalog price at creation time, not a live reference.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CustomerFilter narrows ListCustomers; zero values mean "no filter"
type CustomerFilter struct {
	Search  string // matches company_name or contact_name
	Country string
	Offset  int
	Limit   int
}

// ProductFilter narrows ListProducts; zero values mean "no filter"
type ProductFilter struct {
	Category   string
	Family     string
	Search     string // matches name, part_number or description
	ActiveOnly bool
	Offset     int
	Limit      int
}

// OrderFilter narrows ListOrders; empty strings mean "no filter".
// Results are ordered by ordered_at descending.
type OrderFilter struct {
	Status     string
	CustomerID string
	Offset     int
	Limit      int
}

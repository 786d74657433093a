package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/semidist/storders/internal/storage"
)

// Wire field names mirror the public API contract; decimals marshal as
// quoted strings, preserving scale.

type CreateCustomerRequest struct {
	CompanyName  string  `json:"company_name"`
	ContactName  string  `json:"contact_name"`
	ContactEmail string  `json:"contact_email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
}

type UpdateCustomerRequest struct {
	CompanyName  *string `json:"company_name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
}

type CustomerResponse struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Country      *string   `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	PartNumber    string          `json:"part_number"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Category      string          `json:"category"`
	Family        *string         `json:"family"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Currency      string          `json:"currency"`
	StockQuantity int             `json:"stock_quantity"`
	LeadTimeDays  *int            `json:"lead_time_days"`
}

type UpdateProductRequest struct {
	PartNumber    *string          `json:"part_number"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Family        *string          `json:"family"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	Currency      *string          `json:"currency"`
	StockQuantity *int             `json:"stock_quantity"`
	LeadTimeDays  *int             `json:"lead_time_days"`
	IsActive      *bool            `json:"is_active"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	PartNumber    string          `json:"part_number"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Category      string          `json:"category"`
	Family        *string         `json:"family"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Currency      string          `json:"currency"`
	StockQuantity int             `json:"stock_quantity"`
	LeadTimeDays  *int            `json:"lead_time_days"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID      string                   `json:"customer_id"`
	ShippingAddress *string                  `json:"shipping_address"`
	Notes           *string                  `json:"notes"`
	Items           []CreateOrderItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	Status          *string `json:"status"`
	ShippingAddress *string `json:"shipping_address"`
	Notes           *string `json:"notes"`
}

type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerID      string              `json:"customer_id"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Currency        string              `json:"currency"`
	ShippingAddress *string             `json:"shipping_address"`
	Notes           *string             `json:"notes"`
	OrderedAt       time.Time           `json:"ordered_at"`
	ShippedAt       *time.Time          `json:"shipped_at"`
	DeliveredAt     *time.Time          `json:"delivered_at"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func customerResponse(c *storage.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		CompanyName:  c.CompanyName,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		Country:      c.Country,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func productResponse(p *storage.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		PartNumber:    p.PartNumber,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Family:        p.Family,
		UnitPrice:     p.UnitPrice,
		Currency:      p.Currency,
		StockQuantity: p.StockQuantity,
		LeadTimeDays:  p.LeadTimeDays,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func orderResponse(o *storage.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		Currency:        o.Currency,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		OrderedAt:       o.OrderedAt,
		ShippedAt:       o.ShippedAt,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
}

func customerResponses(customers []*storage.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerResponse(c))
	}
	return out
}

func productResponses(products []*storage.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse(p))
	}
	return out
}

func orderResponses(orders []*storage.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	return out
}

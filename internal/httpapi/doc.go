// Package httpapi exposes the storders services over a JSON REST API.
//
// Routes are mounted under /api/v1 with chi:
//
//	GET  /api/v1/customers        List customers (search, country filters)
//	POST /api/v1/customers        Create a customer
//	GET  /api/v1/customers/{id}   Fetch a customer
//	PUT  /api/v1/customers/{id}   Update a customer
//
//	GET    /api/v1/products       List active products (category, family, search)
//	POST   /api/v1/products       Create a product
//	GET    /api/v1/products/{id}  Fetch a product
//	PUT    /api/v1/products/{id}  Update a product
//	DELETE /api/v1/products/{id}  Deactivate a product (soft delete)
//
//	GET    /api/v1/orders         List orders (status, customer_id, skip, limit)
//	POST   /api/v1/orders         Create an order
//	GET    /api/v1/orders/{id}    Fetch an order with line items
//	PUT    /api/v1/orders/{id}    Update status, shipping address, or notes
//	DELETE /api/v1/orders/{id}    Cancel an order
//
// Operational endpoints live at the root: /health, /health/db, and
// /metrics (Prometheus).
//
// Errors are returned as {"error": "...", "message": "..."} with the
// appropriate HTTP status. Monetary fields are serialized as decimal
// strings to avoid float rounding on the wire.
package httpapi

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Single writer: serializes the count-and-insert path used for
	// order-number assignment.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys (cascade delete of order items)
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive
func (s *SQLiteStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// BeginTx starts a new transaction
func (s *SQLiteStorage) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx, storage: s}, nil
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqliteTx wraps a SQL transaction
type sqliteTx struct {
	tx      *sql.Tx
	storage *SQLiteStorage
}

func (t *sqliteTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}

func (t *sqliteTx) Ping(ctx context.Context) error {
	return t.storage.Ping(ctx)
}

func (t *sqliteTx) Close() error {
	return t.tx.Rollback()
}

// BeginTx on a transaction returns the transaction itself
func (t *sqliteTx) BeginTx(ctx context.Context) (Tx, error) {
	return t, nil
}

// Timestamps are stored as RFC3339 TEXT, monetary values as decimal TEXT.
// Both work identically under the cgo and pure Go drivers.

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fmtTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

func parseTimePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

// mapConstraintErr converts driver uniqueness violations into ErrAlreadyExists.
// Matching on the message avoids importing driver error types, which differ
// between the cgo and pure Go builds.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: UNIQUE") {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	return err
}

// Customer operations

func (s *SQLiteStorage) createCustomerWithQuerier(ctx context.Context, q querier, customer *Customer) error {
	query := `
		INSERT INTO customers (id, company_name, contact_name, contact_email, phone, address, city, country, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now().UTC()
	_, err := q.ExecContext(ctx, query,
		customer.ID, customer.CompanyName, customer.ContactName, customer.ContactEmail,
		customer.Phone, customer.Address, customer.City, customer.Country,
		fmtTime(now), fmtTime(now))
	if err != nil {
		return mapConstraintErr(err)
	}
	customer.CreatedAt = now
	customer.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateCustomer(ctx context.Context, customer *Customer) error {
	return s.createCustomerWithQuerier(ctx, s.db, customer)
}

func (t *sqliteTx) CreateCustomer(ctx context.Context, customer *Customer) error {
	return t.storage.createCustomerWithQuerier(ctx, t.tx, customer)
}

const customerColumns = "id, company_name, contact_name, contact_email, phone, address, city, country, created_at, updated_at"

func scanCustomer(row interface{ Scan(...interface{}) error }) (*Customer, error) {
	var c Customer
	var phone, address, city, country sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.ContactEmail,
		&phone, &address, &city, &country, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	c.Phone = strPtr(phone)
	c.Address = strPtr(address)
	c.City = strPtr(city)
	c.Country = strPtr(country)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStorage) getCustomerWithQuerier(ctx context.Context, q querier, id string) (*Customer, error) {
	row := q.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = ?", id)
	customer, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *SQLiteStorage) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return s.getCustomerWithQuerier(ctx, s.db, id)
}

func (t *sqliteTx) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return t.storage.getCustomerWithQuerier(ctx, t.tx, id)
}

func (s *SQLiteStorage) updateCustomerWithQuerier(ctx context.Context, q querier, customer *Customer) error {
	query := `
		UPDATE customers
		SET company_name = ?, contact_name = ?, contact_email = ?, phone = ?, address = ?, city = ?, country = ?, updated_at = ?
		WHERE id = ?
	`
	now := time.Now().UTC()
	res, err := q.ExecContext(ctx, query,
		customer.CompanyName, customer.ContactName, customer.ContactEmail,
		customer.Phone, customer.Address, customer.City, customer.Country,
		fmtTime(now), customer.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	customer.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) UpdateCustomer(ctx context.Context, customer *Customer) error {
	return s.updateCustomerWithQuerier(ctx, s.db, customer)
}

func (t *sqliteTx) UpdateCustomer(ctx context.Context, customer *Customer) error {
	return t.storage.updateCustomerWithQuerier(ctx, t.tx, customer)
}

func (s *SQLiteStorage) listCustomersWithQuerier(ctx context.Context, q querier, filter CustomerFilter) ([]*Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers"
	var clauses []string
	var args []interface{}

	if filter.Search != "" {
		clauses = append(clauses, "(company_name LIKE ? OR contact_name LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Country != "" {
		clauses = append(clauses, "country LIKE ?")
		args = append(args, "%"+filter.Country+"%")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY company_name LIMIT ? OFFSET ?"
	args = append(args, listLimit(filter.Limit), filter.Offset)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var customers []*Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (s *SQLiteStorage) ListCustomers(ctx context.Context, filter CustomerFilter) ([]*Customer, error) {
	return s.listCustomersWithQuerier(ctx, s.db, filter)
}

func (t *sqliteTx) ListCustomers(ctx context.Context, filter CustomerFilter) ([]*Customer, error) {
	return t.storage.listCustomersWithQuerier(ctx, t.tx, filter)
}

// Product operations

func (s *SQLiteStorage) createProductWithQuerier(ctx context.Context, q querier, product *Product) error {
	query := `
		INSERT INTO products (id, part_number, name, description, category, family, unit_price, currency, stock_quantity, lead_time_days, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now().UTC()
	_, err := q.ExecContext(ctx, query,
		product.ID, product.PartNumber, product.Name, product.Description,
		product.Category, product.Family, product.UnitPrice.String(), product.Currency,
		product.StockQuantity, product.LeadTimeDays, product.IsActive,
		fmtTime(now), fmtTime(now))
	if err != nil {
		return mapConstraintErr(err)
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateProduct(ctx context.Context, product *Product) error {
	return s.createProductWithQuerier(ctx, s.db, product)
}

func (t *sqliteTx) CreateProduct(ctx context.Context, product *Product) error {
	return t.storage.createProductWithQuerier(ctx, t.tx, product)
}

const productColumns = "id, part_number, name, description, category, family, unit_price, currency, stock_quantity, lead_time_days, is_active, created_at, updated_at"

func scanProduct(row interface{ Scan(...interface{}) error }) (*Product, error) {
	var p Product
	var description, family sql.NullString
	var leadTime sql.NullInt64
	var unitPrice, createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.PartNumber, &p.Name, &description, &p.Category, &family,
		&unitPrice, &p.Currency, &p.StockQuantity, &leadTime, &p.IsActive,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = strPtr(description)
	p.Family = strPtr(family)
	p.LeadTimeDays = intPtr(leadTime)
	if p.UnitPrice, err = parseDecimal(unitPrice); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStorage) getProductWithQuerier(ctx context.Context, q querier, id string) (*Product, error) {
	row := q.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *SQLiteStorage) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.getProductWithQuerier(ctx, s.db, id)
}

func (t *sqliteTx) GetProduct(ctx context.Context, id string) (*Product, error) {
	return t.storage.getProductWithQuerier(ctx, t.tx, id)
}

func (s *SQLiteStorage) updateProductWithQuerier(ctx context.Context, q querier, product *Product) error {
	query := `
		UPDATE products
		SET part_number = ?, name = ?, description = ?, category = ?, family = ?, unit_price = ?, currency = ?, stock_quantity = ?, lead_time_days = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`
	now := time.Now().UTC()
	res, err := q.ExecContext(ctx, query,
		product.PartNumber, product.Name, product.Description, product.Category, product.Family,
		product.UnitPrice.String(), product.Currency, product.StockQuantity, product.LeadTimeDays,
		product.IsActive, fmtTime(now), product.ID)
	if err != nil {
		return mapConstraintErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	product.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) UpdateProduct(ctx context.Context, product *Product) error {
	return s.updateProductWithQuerier(ctx, s.db, product)
}

func (t *sqliteTx) UpdateProduct(ctx context.Context, product *Product) error {
	return t.storage.updateProductWithQuerier(ctx, t.tx, product)
}

func (s *SQLiteStorage) listProductsWithQuerier(ctx context.Context, q querier, filter ProductFilter) ([]*Product, error) {
	query := "SELECT " + productColumns + " FROM products"
	var clauses []string
	var args []interface{}

	if filter.ActiveOnly {
		clauses = append(clauses, "is_active = 1")
	}
	if filter.Category != "" {
		clauses = append(clauses, "category LIKE ?")
		args = append(args, "%"+filter.Category+"%")
	}
	if filter.Family != "" {
		clauses = append(clauses, "family LIKE ?")
		args = append(args, "%"+filter.Family+"%")
	}
	if filter.Search != "" {
		clauses = append(clauses, "(name LIKE ? OR part_number LIKE ? OR description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY part_number LIMIT ? OFFSET ?"
	args = append(args, listLimit(filter.Limit), filter.Offset)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []*Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (s *SQLiteStorage) ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	return s.listProductsWithQuerier(ctx, s.db, filter)
}

func (t *sqliteTx) ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	return t.storage.listProductsWithQuerier(ctx, t.tx, filter)
}

// Order operations

func (s *SQLiteStorage) createOrderWithQuerier(ctx context.Context, q querier, order *Order) error {
	query := `
		INSERT INTO orders (id, order_number, customer_id, status, total_amount, currency, shipping_address, notes, ordered_at, shipped_at, delivered_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now().UTC()
	_, err := q.ExecContext(ctx, query,
		order.ID, order.OrderNumber, order.CustomerID, order.Status,
		order.TotalAmount.String(), order.Currency, order.ShippingAddress, order.Notes,
		fmtTime(order.OrderedAt), fmtTimePtr(order.ShippedAt), fmtTimePtr(order.DeliveredAt),
		fmtTime(now), fmtTime(now))
	if err != nil {
		return mapConstraintErr(err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, line_total)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, item := range order.Items {
		item.OrderID = order.ID
		if _, err := q.ExecContext(ctx, itemQuery,
			item.ID, item.OrderID, item.ProductID, item.Quantity,
			item.UnitPrice.String(), item.LineTotal.String()); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateOrder(ctx context.Context, order *Order) error {
	return s.createOrderWithQuerier(ctx, s.db, order)
}

func (t *sqliteTx) CreateOrder(ctx context.Context, order *Order) error {
	return t.storage.createOrderWithQuerier(ctx, t.tx, order)
}

const orderColumns = "id, order_number, customer_id, status, total_amount, currency, shipping_address, notes, ordered_at, shipped_at, delivered_at, created_at, updated_at"

func scanOrder(row interface{ Scan(...interface{}) error }) (*Order, error) {
	var o Order
	var shippingAddress, notes, shippedAt, deliveredAt sql.NullString
	var totalAmount, orderedAt, createdAt, updatedAt string
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status,
		&totalAmount, &o.Currency, &shippingAddress, &notes,
		&orderedAt, &shippedAt, &deliveredAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	o.ShippingAddress = strPtr(shippingAddress)
	o.Notes = strPtr(notes)
	if o.TotalAmount, err = parseDecimal(totalAmount); err != nil {
		return nil, err
	}
	if o.OrderedAt, err = parseTime(orderedAt); err != nil {
		return nil, err
	}
	if o.ShippedAt, err = parseTimePtr(shippedAt); err != nil {
		return nil, err
	}
	if o.DeliveredAt, err = parseTimePtr(deliveredAt); err != nil {
		return nil, err
	}
	if o.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if o.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *SQLiteStorage) loadOrderItems(ctx context.Context, q querier, orderID string) ([]*OrderItem, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, order_id, product_id, quantity, unit_price, line_total FROM order_items WHERE order_id = ? ORDER BY rowid",
		orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []*OrderItem{}
	for rows.Next() {
		var item OrderItem
		var unitPrice, lineTotal string
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &unitPrice, &lineTotal); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = parseDecimal(unitPrice); err != nil {
			return nil, err
		}
		if item.LineTotal, err = parseDecimal(lineTotal); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (s *SQLiteStorage) getOrderWithQuerier(ctx context.Context, q querier, id string) (*Order, error) {
	row := q.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = ?", id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Items, err = s.loadOrderItems(ctx, q, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *SQLiteStorage) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.getOrderWithQuerier(ctx, s.db, id)
}

func (t *sqliteTx) GetOrder(ctx context.Context, id string) (*Order, error) {
	return t.storage.getOrderWithQuerier(ctx, t.tx, id)
}

func (s *SQLiteStorage) updateOrderWithQuerier(ctx context.Context, q querier, order *Order) error {
	query := `
		UPDATE orders
		SET status = ?, shipping_address = ?, notes = ?, shipped_at = ?, delivered_at = ?, updated_at = ?
		WHERE id = ?
	`
	now := time.Now().UTC()
	res, err := q.ExecContext(ctx, query,
		order.Status, order.ShippingAddress, order.Notes,
		fmtTimePtr(order.ShippedAt), fmtTimePtr(order.DeliveredAt),
		fmtTime(now), order.ID)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	order.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) UpdateOrder(ctx context.Context, order *Order) error {
	return s.updateOrderWithQuerier(ctx, s.db, order)
}

func (t *sqliteTx) UpdateOrder(ctx context.Context, order *Order) error {
	return t.storage.updateOrderWithQuerier(ctx, t.tx, order)
}

func (s *SQLiteStorage) listOrdersWithQuerier(ctx context.Context, q querier, filter OrderFilter) ([]*Order, error) {
	query := "SELECT " + orderColumns + " FROM orders"
	var clauses []string
	var args []interface{}

	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.CustomerID != "" {
		clauses = append(clauses, "customer_id = ?")
		args = append(args, filter.CustomerID)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY ordered_at DESC LIMIT ? OFFSET ?"
	args = append(args, listLimit(filter.Limit), filter.Offset)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var orders []*Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	// Hydrate items after the order cursor is closed; the single-connection
	// pool would otherwise deadlock on nested queries with some drivers.
	for _, order := range orders {
		if order.Items, err = s.loadOrderItems(ctx, q, order.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *SQLiteStorage) ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error) {
	return s.listOrdersWithQuerier(ctx, s.db, filter)
}

func (t *sqliteTx) ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error) {
	return t.storage.listOrdersWithQuerier(ctx, t.tx, filter)
}

func (s *SQLiteStorage) countOrdersByNumberPrefixWithQuerier(ctx context.Context, q querier, prefix string) (int, error) {
	var count int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders WHERE order_number LIKE ?", prefix+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders by prefix: %w", err)
	}
	return count, nil
}

func (s *SQLiteStorage) CountOrdersByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	return s.countOrdersByNumberPrefixWithQuerier(ctx, s.db, prefix)
}

func (t *sqliteTx) CountOrdersByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	return t.storage.countOrdersByNumberPrefixWithQuerier(ctx, t.tx, prefix)
}

func (s *SQLiteStorage) deleteOrderWithQuerier(ctx context.Context, q querier, id string) error {
	res, err := q.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) DeleteOrder(ctx context.Context, id string) error {
	return s.deleteOrderWithQuerier(ctx, s.db, id)
}

func (t *sqliteTx) DeleteOrder(ctx context.Context, id string) error {
	return t.storage.deleteOrderWithQuerier(ctx, t.tx, id)
}

// listLimit guards against non-positive limits; the maximum window is
// the services' concern (order.WithMaxListLimit), not storage's.
func listLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	return limit
}

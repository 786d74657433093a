// Package storage provides SQLite-based persistence for customers,
// products and orders.
//
// The storage layer manages:
//   - Customer directory records
//   - Product catalog entries and list prices
//   - Order aggregates with their line items
//
// # Database Schema
//
// Tables:
//   - customers: Buyer companies and contacts
//   - products: Catalog entries (part number, price, active flag)
//   - orders: Order headers (number, status, totals, lifecycle timestamps)
//   - order_items: Priced lines, cascade-deleted with their order
//
// Timestamps are stored as RFC3339 TEXT and monetary values as decimal
// TEXT so behavior is identical under both SQLite drivers. Builds select
// the driver with tags: the default pure Go build uses modernc.org/sqlite,
// a cgo build with -tags cgo_sqlite uses mattn/go-sqlite3.
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage("storders.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	order, err := store.GetOrder(ctx, id)
//
// # Transactions
//
// Use transactions for atomic multi-row writes. Tx embeds the Storage
// interface, so every operation is available against either the pool or
// an open transaction:
//
//	tx, err := store.BeginTx(ctx)
//	if err != nil { ... }
//	defer tx.Rollback()
//
//	n, err := tx.CountOrdersByNumberPrefix(ctx, prefix)
//	...
//	err = tx.CreateOrder(ctx, order)
//	...
//	err = tx.Commit()
package storage

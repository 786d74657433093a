package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	// Use in-memory database for testing
	storage, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NotNil(t, storage)
	return storage
}

func testCustomer() *Customer {
	phone := "+49-89-555-0101"
	country := "Germany"
	return &Customer{
		ID:           uuid.NewString(),
		CompanyName:  "TechFusion GmbH",
		ContactName:  "Klaus Weber",
		ContactEmail: "k.weber@techfusion.de",
		Phone:        &phone,
		Country:      &country,
	}
}

func testProduct(partNumber, price string) *Product {
	family := "STM32F4"
	return &Product{
		ID:            uuid.NewString(),
		PartNumber:    partNumber,
		Name:          "STM32F407 MCU 168MHz 1MB Flash",
		Category:      "Microcontrollers",
		Family:        &family,
		UnitPrice:     decimal.RequireFromString(price),
		Currency:      "USD",
		StockQuantity: 15000,
		IsActive:      true,
	}
}

func testOrder(customerID, number string, items ...*OrderItem) *Order {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return &Order{
		ID:          uuid.NewString(),
		OrderNumber: number,
		CustomerID:  customerID,
		Status:      "pending",
		TotalAmount: total,
		Currency:    "USD",
		OrderedAt:   time.Now().UTC(),
		Items:       items,
	}
}

func testItem(productID string, qty int, price string) *OrderItem {
	unitPrice := decimal.RequireFromString(price)
	return &OrderItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	assert.NotNil(t, storage)
	assert.NotNil(t, storage.db)
}

func TestPing(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	assert.NoError(t, storage.Ping(context.Background()))
}

func TestCreateCustomer(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()

	err := storage.CreateCustomer(ctx, customer)
	require.NoError(t, err)
	assert.False(t, customer.CreatedAt.IsZero())
	assert.False(t, customer.UpdatedAt.IsZero())

	retrieved, err := storage.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.CompanyName, retrieved.CompanyName)
	assert.Equal(t, customer.ContactEmail, retrieved.ContactEmail)
	require.NotNil(t, retrieved.Phone)
	assert.Equal(t, *customer.Phone, *retrieved.Phone)
	assert.Nil(t, retrieved.Address)
}

func TestGetCustomer_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	_, err := storage.GetCustomer(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCustomer(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))

	customer.CompanyName = "TechFusion AG"
	city := "Berlin"
	customer.City = &city
	require.NoError(t, storage.UpdateCustomer(ctx, customer))

	retrieved, err := storage.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechFusion AG", retrieved.CompanyName)
	require.NotNil(t, retrieved.City)
	assert.Equal(t, "Berlin", *retrieved.City)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	customer := testCustomer()
	err := storage.UpdateCustomer(context.Background(), customer)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCustomers_Filters(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	first := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, first))

	second := testCustomer()
	second.ID = uuid.NewString()
	second.CompanyName = "Sakura Electronics Co."
	second.ContactName = "Yuki Tanaka"
	second.ContactEmail = "y.tanaka@sakuraelec.jp"
	japan := "Japan"
	second.Country = &japan
	require.NoError(t, storage.CreateCustomer(ctx, second))

	all, err := storage.ListCustomers(ctx, CustomerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bySearch, err := storage.ListCustomers(ctx, CustomerFilter{Search: "Sakura"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, second.ID, bySearch[0].ID)

	byCountry, err := storage.ListCustomers(ctx, CustomerFilter{Country: "Germany"})
	require.NoError(t, err)
	require.Len(t, byCountry, 1)
	assert.Equal(t, first.ID, byCountry[0].ID)
}

func TestCreateProduct(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("STM32F407VGT6", "8.5200")

	err := storage.CreateProduct(ctx, product)
	require.NoError(t, err)

	retrieved, err := storage.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "STM32F407VGT6", retrieved.PartNumber)
	assert.True(t, retrieved.UnitPrice.Equal(decimal.RequireFromString("8.52")))
	assert.True(t, retrieved.IsActive)
}

func TestCreateProduct_DuplicatePartNumber(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	require.NoError(t, storage.CreateProduct(ctx, testProduct("STM32F407VGT6", "8.5200")))

	err := storage.CreateProduct(ctx, testProduct("STM32F407VGT6", "9.0000"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestListProducts_ActiveOnly(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	active := testProduct("STM32F407VGT6", "8.5200")
	require.NoError(t, storage.CreateProduct(ctx, active))

	inactive := testProduct("STM32F103C8T6", "2.1500")
	inactive.IsActive = false
	require.NoError(t, storage.CreateProduct(ctx, inactive))

	all, err := storage.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeList, err := storage.ListProducts(ctx, ProductFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, activeList, 1)
	assert.Equal(t, active.ID, activeList[0].ID)
}

func TestListProducts_SearchAndCategory(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	mcu := testProduct("STM32F407VGT6", "8.5200")
	require.NoError(t, storage.CreateProduct(ctx, mcu))

	sensor := testProduct("LIS3DHTR", "1.1500")
	sensor.Name = "LIS3DH 3-axis Accelerometer"
	sensor.Category = "MEMS Sensors"
	lis := "LIS"
	sensor.Family = &lis
	require.NoError(t, storage.CreateProduct(ctx, sensor))

	byCategory, err := storage.ListProducts(ctx, ProductFilter{Category: "MEMS"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, sensor.ID, byCategory[0].ID)

	bySearch, err := storage.ListProducts(ctx, ProductFilter{Search: "STM32F407"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, mcu.ID, bySearch[0].ID)
}

func TestCreateOrder_WithItems(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))
	product := testProduct("STM32F407VGT6", "8.5200")
	require.NoError(t, storage.CreateProduct(ctx, product))

	order := testOrder(customer.ID, "ST-ORD-202608-0001",
		testItem(product.ID, 100, "8.5200"))
	require.NoError(t, storage.CreateOrder(ctx, order))

	retrieved, err := storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ST-ORD-202608-0001", retrieved.OrderNumber)
	assert.Equal(t, "pending", retrieved.Status)
	assert.True(t, retrieved.TotalAmount.Equal(decimal.RequireFromString("852.00")))
	require.Len(t, retrieved.Items, 1)
	assert.Equal(t, product.ID, retrieved.Items[0].ProductID)
	assert.Equal(t, 100, retrieved.Items[0].Quantity)
	assert.Nil(t, retrieved.ShippedAt)
	assert.Nil(t, retrieved.DeliveredAt)
}

func TestCreateOrder_DuplicateNumber(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))

	require.NoError(t, storage.CreateOrder(ctx, testOrder(customer.ID, "ST-ORD-202608-0001")))
	err := storage.CreateOrder(ctx, testOrder(customer.ID, "ST-ORD-202608-0001"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdateOrder_Timestamps(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))

	order := testOrder(customer.ID, "ST-ORD-202608-0001")
	require.NoError(t, storage.CreateOrder(ctx, order))

	shipped := time.Now().UTC()
	order.Status = "shipped"
	order.ShippedAt = &shipped
	require.NoError(t, storage.UpdateOrder(ctx, order))

	retrieved, err := storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "shipped", retrieved.Status)
	require.NotNil(t, retrieved.ShippedAt)
	assert.WithinDuration(t, shipped, *retrieved.ShippedAt, time.Second)
	assert.Nil(t, retrieved.DeliveredAt)
}

func TestListOrders_FiltersAndOrdering(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))

	other := testCustomer()
	other.ID = uuid.NewString()
	other.ContactEmail = "other@example.com"
	require.NoError(t, storage.CreateCustomer(ctx, other))

	older := testOrder(customer.ID, "ST-ORD-202607-0001")
	older.OrderedAt = time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, storage.CreateOrder(ctx, older))

	newer := testOrder(customer.ID, "ST-ORD-202608-0002")
	newer.Status = "shipped"
	require.NoError(t, storage.CreateOrder(ctx, newer))

	foreign := testOrder(other.ID, "ST-ORD-202608-0003")
	require.NoError(t, storage.CreateOrder(ctx, foreign))

	// Most recent first
	byCustomer, err := storage.ListOrders(ctx, OrderFilter{CustomerID: customer.ID})
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)
	assert.Equal(t, newer.ID, byCustomer[0].ID)
	assert.Equal(t, older.ID, byCustomer[1].ID)

	byStatus, err := storage.ListOrders(ctx, OrderFilter{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, newer.ID, byStatus[0].ID)
}

func TestCountOrdersByNumberPrefix(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))

	require.NoError(t, storage.CreateOrder(ctx, testOrder(customer.ID, "ST-ORD-202608-0001")))
	require.NoError(t, storage.CreateOrder(ctx, testOrder(customer.ID, "ST-ORD-202608-0002")))
	require.NoError(t, storage.CreateOrder(ctx, testOrder(customer.ID, "ST-ORD-202607-0001")))

	count, err := storage.CountOrdersByNumberPrefix(ctx, "ST-ORD-202608-")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = storage.CountOrdersByNumberPrefix(ctx, "ST-ORD-202601-")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDeleteOrder_CascadesItems(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))
	product := testProduct("STM32F407VGT6", "8.5200")
	require.NoError(t, storage.CreateProduct(ctx, product))

	order := testOrder(customer.ID, "ST-ORD-202608-0001",
		testItem(product.ID, 10, "8.5200"))
	require.NoError(t, storage.CreateOrder(ctx, order))

	require.NoError(t, storage.DeleteOrder(ctx, order.ID))

	_, err := storage.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	err = storage.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM order_items WHERE order_id = ?", order.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, 100, listLimit(0))
	assert.Equal(t, 100, listLimit(-5))
	assert.Equal(t, 10, listLimit(10))
	// Windows above 100 pass through; the services clamp to their
	// configured maximum before reaching storage
	assert.Equal(t, 250, listLimit(250))
}

func TestTransaction_RollbackDiscardsWrites(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)

	customer := testCustomer()
	require.NoError(t, tx.CreateCustomer(ctx, customer))
	require.NoError(t, tx.Rollback())

	_, err = storage.GetCustomer(ctx, customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransaction_CommitPersistsOrder(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	customer := testCustomer()
	require.NoError(t, storage.CreateCustomer(ctx, customer))
	product := testProduct("STM32F407VGT6", "8.5200")
	require.NoError(t, storage.CreateProduct(ctx, product))

	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)

	count, err := tx.CountOrdersByNumberPrefix(ctx, "ST-ORD-202608-")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	order := testOrder(customer.ID, "ST-ORD-202608-0001",
		testItem(product.ID, 50, "8.5200"))
	require.NoError(t, tx.CreateOrder(ctx, order))
	require.NoError(t, tx.Commit())

	retrieved, err := storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Items, 1)
}

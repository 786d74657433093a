package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semidist/storders/internal/catalog"
	"github.com/semidist/storders/internal/customer"
	"github.com/semidist/storders/internal/order"
	"github.com/semidist/storders/internal/storage"
)

func setupTestServer(t *testing.T) *httptest.Server {
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handler := NewHandler(order.New(store), catalog.New(store), customer.New(store), store)
	srv := httptest.NewServer(NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createCustomerViaAPI(t *testing.T, srv *httptest.Server) CustomerResponse {
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/customers", map[string]interface{}{
		"company_name":  "TechFusion GmbH",
		"contact_name":  "Klaus Weber",
		"contact_email": "k.weber@techfusion.de",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[CustomerResponse](t, resp)
}

func createProductViaAPI(t *testing.T, srv *httptest.Server, partNumber, price string) ProductResponse {
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", map[string]interface{}{
		"part_number": partNumber,
		"name":        partNumber + " test part",
		"category":    "Microcontrollers",
		"unit_price":  price,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[ProductResponse](t, resp)
}

func TestHealth(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "healthy", body["status"])

	resp, err = http.Get(srv.URL + "/health/db")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode[map[string]string](t, resp)
	assert.Equal(t, "connected", body["database"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics_PathLabelUsesRoutePattern(t *testing.T) {
	srv := setupTestServer(t)

	// Distinct ids must collapse into one series per route template
	for i := 0; i < 5; i++ {
		resp, err := http.Get(srv.URL + "/api/v1/orders/" + uuid.NewString())
		require.NoError(t, err)
		resp.Body.Close()
	}

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	paths := map[string]bool{}
	for _, family := range families {
		if family.GetName() != "storders_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "path" {
					paths[label.GetValue()] = true
				}
			}
		}
	}

	assert.True(t, paths["/api/v1/orders/{id}"], "expected route template label, got %v", paths)
	for path := range paths {
		assert.NotRegexp(t, `[0-9a-f]{8}-[0-9a-f]{4}`, path, "raw id leaked into path label")
	}
}

func TestCustomerLifecycle(t *testing.T) {
	srv := setupTestServer(t)

	created := createCustomerViaAPI(t, srv)
	assert.NotEmpty(t, created.ID)

	resp, err := http.Get(srv.URL + "/api/v1/customers/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decode[CustomerResponse](t, resp)
	assert.Equal(t, "TechFusion GmbH", fetched.CompanyName)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/customers/"+created.ID, map[string]interface{}{
		"city": "Berlin",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[CustomerResponse](t, resp)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Berlin", *updated.City)
	assert.Equal(t, "TechFusion GmbH", updated.CompanyName)
}

func TestCreateCustomer_MissingFields(t *testing.T) {
	srv := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/customers", map[string]interface{}{
		"company_name": "Incomplete Inc.",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "invalid_request", body.Error)
}

func TestGetCustomer_NotFound(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/customers/" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCustomer_InvalidID(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/customers/not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductDeleteDeactivates(t *testing.T) {
	srv := setupTestServer(t)

	product := createProductViaAPI(t, srv, "STM32F407VGT6", "8.5200")

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/products/"+product.ID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decode[ProductResponse](t, resp)
	assert.False(t, deleted.IsActive)

	// Listings hide it, direct fetch still works
	resp, err = http.Get(srv.URL + "/api/v1/products")
	require.NoError(t, err)
	listed := decode[[]ProductResponse](t, resp)
	assert.Empty(t, listed)

	resp, err = http.Get(srv.URL + "/api/v1/products/" + product.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	srv := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", map[string]interface{}{
		"part_number": "STM32F407VGT6",
		"name":        "STM32F407 MCU",
		"category":    "Microcontrollers",
		"unit_price":  "-1.00",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "invalid_request", body.Error)
}

func TestCreateOrder(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	product := createProductViaAPI(t, srv, "STM32F407VGT6", "8.5200")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 100},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[OrderResponse](t, resp)

	assert.Regexp(t, `^ST-ORD-\d{6}-0001$`, created.OrderNumber)
	assert.Equal(t, "pending", created.Status)
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("852.00")))
	require.Len(t, created.Items, 1)
	assert.Equal(t, 100, created.Items[0].Quantity)
	assert.Nil(t, created.ShippedAt)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": uuid.NewString(), "quantity": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "product_not_found", body.Error)
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	product := createProductViaAPI(t, srv, "STM32F407VGT6", "8.5200")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 0},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "invalid_quantity", body.Error)
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items":       []map[string]interface{}{},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[OrderResponse](t, resp)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/orders/"+created.ID, map[string]interface{}{
		"status": "shipped",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[OrderResponse](t, resp)
	assert.Equal(t, "shipped", updated.Status)
	assert.NotNil(t, updated.ShippedAt)
}

func TestUpdateOrder_InvalidStatus(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[OrderResponse](t, resp)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/orders/"+created.ID, map[string]interface{}{
		"status": "SHIPPED",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "invalid_status", body.Error)
}

func TestCancelOrder(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customer.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[OrderResponse](t, resp)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/orders/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cancelled := decode[OrderResponse](t, resp)
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestListOrders_StatusFilter(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	var ids []string
	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
			"customer_id": customer.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		ids = append(ids, decode[OrderResponse](t, resp).ID)
	}

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v1/orders/"+ids[0], map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/v1/orders?status=confirmed")
	require.NoError(t, err)
	listed := decode[[]OrderResponse](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, ids[0], listed[0].ID)

	resp, err = http.Get(srv.URL + "/api/v1/orders?status=bogus")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderNumbersIncrement(t *testing.T) {
	srv := setupTestServer(t)

	customer := createCustomerViaAPI(t, srv)
	for i := 1; i <= 3; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", map[string]interface{}{
			"customer_id": customer.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decode[OrderResponse](t, resp)
		assert.Regexp(t, fmt.Sprintf(`^ST-ORD-\d{6}-%04d$`, i), created.OrderNumber)
	}
}

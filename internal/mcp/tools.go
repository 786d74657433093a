package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeAPIError      = -32001 // The REST API rejected the request
)

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// forward performs an HTTP request against the REST API and wraps the
// response body as a tool result. API-level failures (4xx/5xx) surface
// as MCP errors carrying the API's JSON error payload.
func (s *Server) forward(ctx context.Context, method, path string, query url.Values, body interface{}) (*mcp.CallToolResult, error) {
	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to encode request", nil)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to build request", nil)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "API request failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read API response", nil)
	}

	if resp.StatusCode >= 400 {
		return nil, newMCPError(ErrorCodeAPIError, fmt.Sprintf("API returned %d", resp.StatusCode), map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(data),
		})
	}

	return mcp.NewToolResultText(string(data)), nil
}

func toolArgs(request mcp.CallToolRequest) (map[string]interface{}, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	return args, nil
}

// requireString extracts a mandatory string parameter
func requireString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key].(string)
	if !ok || val == "" {
		return "", newMCPError(ErrorCodeInvalidParams, key+" parameter is required", map[string]interface{}{
			"param":  key,
			"reason": "missing or empty",
		})
	}
	return val, nil
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// handleListProducts handles the list_products tool invocation
func (s *Server) handleListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if category := getStringDefault(args, "category", ""); category != "" {
		query.Set("category", category)
	}
	if family := getStringDefault(args, "family", ""); family != "" {
		query.Set("family", family)
	}
	if search := getStringDefault(args, "search", ""); search != "" {
		query.Set("search", search)
	}

	return s.forward(ctx, http.MethodGet, "/api/v1/products", query, nil)
}

// handleGetProduct handles the get_product tool invocation
func (s *Server) handleGetProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	productID, err := requireString(args, "product_id")
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, http.MethodGet, "/api/v1/products/"+productID, nil, nil)
}

// handleListCustomers handles the list_customers tool invocation
func (s *Server) handleListCustomers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if search := getStringDefault(args, "search", ""); search != "" {
		query.Set("search", search)
	}
	if country := getStringDefault(args, "country", ""); country != "" {
		query.Set("country", country)
	}

	return s.forward(ctx, http.MethodGet, "/api/v1/customers", query, nil)
}

// handleGetCustomer handles the get_customer tool invocation
func (s *Server) handleGetCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	customerID, err := requireString(args, "customer_id")
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, http.MethodGet, "/api/v1/customers/"+customerID, nil, nil)
}

// handleListOrders handles the list_orders tool invocation
func (s *Server) handleListOrders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if status := getStringDefault(args, "status", ""); status != "" {
		query.Set("status", status)
	}
	if customerID := getStringDefault(args, "customer_id", ""); customerID != "" {
		query.Set("customer_id", customerID)
	}

	return s.forward(ctx, http.MethodGet, "/api/v1/orders", query, nil)
}

// handleGetOrder handles the get_order tool invocation
func (s *Server) handleGetOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	orderID, err := requireString(args, "order_id")
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, http.MethodGet, "/api/v1/orders/"+orderID, nil, nil)
}

// handleCreateOrder handles the create_order tool invocation
func (s *Server) handleCreateOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}

	customerID, err := requireString(args, "customer_id")
	if err != nil {
		return nil, err
	}

	rawItems, ok := args["items"].([]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "items parameter is required", map[string]interface{}{
			"param":  "items",
			"reason": "missing or not an array",
		})
	}

	items := make([]map[string]interface{}, 0, len(rawItems))
	for i, raw := range rawItems {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid item", map[string]interface{}{
				"index":  i,
				"reason": "each item must be an object with product_id and quantity",
			})
		}
		productID, ok := item["product_id"].(string)
		if !ok || productID == "" {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid item", map[string]interface{}{
				"index":  i,
				"reason": "product_id is required",
			})
		}
		quantity, ok := item["quantity"].(float64)
		if !ok || quantity < 1 || quantity != math.Trunc(quantity) {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid item", map[string]interface{}{
				"index":  i,
				"reason": "quantity must be a positive integer",
			})
		}
		items = append(items, map[string]interface{}{
			"product_id": productID,
			"quantity":   int(quantity),
		})
	}

	payload := map[string]interface{}{
		"customer_id": customerID,
		"items":       items,
	}
	if addr := getStringDefault(args, "shipping_address", ""); addr != "" {
		payload["shipping_address"] = addr
	}
	if notes := getStringDefault(args, "notes", ""); notes != "" {
		payload["notes"] = notes
	}

	return s.forward(ctx, http.MethodPost, "/api/v1/orders", nil, payload)
}

// handleUpdateOrderStatus handles the update_order_status tool invocation
func (s *Server) handleUpdateOrderStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	orderID, err := requireString(args, "order_id")
	if err != nil {
		return nil, err
	}
	status, err := requireString(args, "status")
	if err != nil {
		return nil, err
	}
	payload := map[string]interface{}{"status": status}
	return s.forward(ctx, http.MethodPut, "/api/v1/orders/"+orderID, nil, payload)
}

// handleCancelOrder handles the cancel_order tool invocation
func (s *Server) handleCancelOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := toolArgs(request)
	if err != nil {
		return nil, err
	}
	orderID, err := requireString(args, "order_id")
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, http.MethodDelete, "/api/v1/orders/"+orderID, nil, nil)
}

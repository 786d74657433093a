package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the MCP server name
	ServerName = "storders-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the HTTP client used to reach the
// REST API. Tools do not touch the database directly; every call is
// forwarded to the API so both surfaces share one implementation.
type Server struct {
	mcp     *server.MCPServer
	client  *http.Client
	baseURL string
}

// NewServer creates a new MCP server forwarding to the given API base URL
func NewServer(baseURL string) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
	}

	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(listProductsTool(), s.handleListProducts)
	s.mcp.AddTool(getProductTool(), s.handleGetProduct)
	s.mcp.AddTool(listCustomersTool(), s.handleListCustomers)
	s.mcp.AddTool(getCustomerTool(), s.handleGetCustomer)
	s.mcp.AddTool(listOrdersTool(), s.handleListOrders)
	s.mcp.AddTool(getOrderTool(), s.handleGetOrder)
	s.mcp.AddTool(createOrderTool(), s.handleCreateOrder)
	s.mcp.AddTool(updateOrderStatusTool(), s.handleUpdateOrderStatus)
	s.mcp.AddTool(cancelOrderTool(), s.handleCancelOrder)
}

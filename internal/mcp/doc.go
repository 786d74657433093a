// Package mcp implements the Model Context Protocol (MCP) server for storders.
//
// The MCP server exposes the order-management REST API as tools that AI
// assistants (Claude Code, Codex CLI) can call:
//   - list_products / get_product: Browse the component catalog
//   - list_customers / get_customer: Look up customer accounts
//   - list_orders / get_order: Inspect orders and their line items
//   - create_order: Place a new order for a customer
//   - update_order_status: Move an order through its lifecycle
//   - cancel_order: Cancel an order
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server is a thin adapter: every tool call is forwarded as an HTTP
// request to the storders REST API, and the API's JSON response is returned
// verbatim as the tool result. Validation, pricing, and persistence all
// happen in the API process.
//
// # Basic Usage
//
// Start the REST API first, then the MCP server pointed at it:
//
//	storders
//	storders-mcp
//
// The MCP server reads the API base URL from STORDERS_API_BASE_URL
// (default http://localhost:8000), listens on stdin for MCP protocol
// messages, and writes responses to stdout. Logs go to stderr so the
// stdio transport stays clean.
//
// # Tool: create_order
//
// Place an order for a customer:
//
//	Request:
//	{
//	  "name": "create_order",
//	  "arguments": {
//	    "customer_id": "3f2a...",
//	    "items": [
//	      {"product_id": "9b1c...", "quantity": 100}
//	    ],
//	    "shipping_address": "12 Rue de la Paix, Paris",
//	    "notes": "expedite"
//	  }
//	}
//
//	Response: the created order as JSON, including the generated
//	order_number (ST-ORD-YYYYMM-NNNN) and computed totals.
//
// # Error Handling
//
// Invalid parameters are rejected with JSON-RPC code -32602 before any
// HTTP request is made. API-level failures (4xx/5xx) are returned as
// code -32001 with the API's status and error body attached as data.
package mcp

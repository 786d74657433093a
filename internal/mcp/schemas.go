package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var statusValues = []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"}

// listProductsTool returns the tool definition for list_products
func listProductsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_products",
		Description: "List ST Micro semiconductor products. Filter by category, product family, or search term.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Filter by product category (e.g. 'Microcontrollers', 'MEMS Sensors')",
				},
				"family": map[string]interface{}{
					"type":        "string",
					"description": "Filter by product family (e.g. 'STM32F4')",
				},
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Search term matched against name, part number and description",
				},
			},
		},
	}
}

// getProductTool returns the tool definition for get_product
func getProductTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_product",
		Description: "Get details of a specific product by its ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"product_id": map[string]interface{}{
					"type":        "string",
					"description": "Product UUID",
				},
			},
			Required: []string{"product_id"},
		},
	}
}

// listCustomersTool returns the tool definition for list_customers
func listCustomersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_customers",
		Description: "List customers. Filter by search term or country.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Search term matched against company and contact name",
				},
				"country": map[string]interface{}{
					"type":        "string",
					"description": "Filter by country",
				},
			},
		},
	}
}

// getCustomerTool returns the tool definition for get_customer
func getCustomerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_customer",
		Description: "Get details of a specific customer by their ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"customer_id": map[string]interface{}{
					"type":        "string",
					"description": "Customer UUID",
				},
			},
			Required: []string{"customer_id"},
		},
	}
}

// listOrdersTool returns the tool definition for list_orders
func listOrdersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_orders",
		Description: "List orders. Filter by status or customer_id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"status": map[string]interface{}{
					"type":        "string",
					"description": "Filter by order status",
					"enum":        statusValues,
				},
				"customer_id": map[string]interface{}{
					"type":        "string",
					"description": "Filter by customer UUID",
				},
			},
		},
	}
}

// getOrderTool returns the tool definition for get_order
func getOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_order",
		Description: "Get details of a specific order by its ID, including line items",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"order_id": map[string]interface{}{
					"type":        "string",
					"description": "Order UUID",
				},
			},
			Required: []string{"order_id"},
		},
	}
}

// createOrderTool returns the tool definition for create_order
func createOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "create_order",
		Description: "Create a new order. Line prices are taken from the current catalog; the order number is assigned automatically.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"customer_id": map[string]interface{}{
					"type":        "string",
					"description": "Customer UUID the order belongs to",
				},
				"items": map[string]interface{}{
					"type":        "array",
					"description": "Requested lines",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"product_id": map[string]interface{}{
								"type":        "string",
								"description": "Product UUID",
							},
							"quantity": map[string]interface{}{
								"type":        "integer",
								"description": "Positive quantity",
								"minimum":     1,
							},
						},
						"required": []string{"product_id", "quantity"},
					},
				},
				"shipping_address": map[string]interface{}{
					"type":        "string",
					"description": "Optional shipping address",
				},
				"notes": map[string]interface{}{
					"type":        "string",
					"description": "Optional free-text notes",
				},
			},
			Required: []string{"customer_id", "items"},
		},
	}
}

// updateOrderStatusTool returns the tool definition for update_order_status
func updateOrderStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "update_order_status",
		Description: "Update an order's status. Valid statuses: pending, confirmed, processing, shipped, delivered, cancelled.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"order_id": map[string]interface{}{
					"type":        "string",
					"description": "Order UUID",
				},
				"status": map[string]interface{}{
					"type":        "string",
					"description": "New status",
					"enum":        statusValues,
				},
			},
			Required: []string{"order_id", "status"},
		},
	}
}

// cancelOrderTool returns the tool definition for cancel_order
func cancelOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "cancel_order",
		Description: "Cancel an order by its ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"order_id": map[string]interface{}{
					"type":        "string",
					"description": "Order UUID",
				},
			},
			Required: []string{"order_id"},
		},
	}
}

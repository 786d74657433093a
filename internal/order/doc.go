// Package order implements the order lifecycle engine: creation with
// authoritative catalog pricing, sequential order numbers, status
// transitions and the derived shipment/delivery timestamps.
//
// # Order numbers
//
// Numbers have the form ST-ORD-YYYYMM-NNNN where NNNN is a 1-based,
// zero-padded sequence counted among all orders created in the same
// calendar month. Counting and insertion run in one transaction so the
// sequence is gapless under serialized creation; a duplicate number at
// commit (possible with an external writer on the same file) retries the
// whole creation a bounded number of times.
//
// # Pricing
//
// Each line's unit price is a copy of the catalog price at the moment of
// creation; line totals and the order total are computed once and never
// recomputed. A status-only update does not touch the total.
//
// # Basic Usage
//
//	svc := order.New(store)
//
//	created, err := svc.Create(ctx, order.CreateRequest{
//	    CustomerID: customerID,
//	    Items:      []order.CreateItem{{ProductID: productID, Quantity: 100}},
//	})
//
//	shipped := order.StatusShipped
//	updated, err := svc.Update(ctx, created.ID, order.UpdateRequest{Status: &shipped})
package order

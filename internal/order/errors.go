package order

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the target order does not exist
var ErrNotFound = errors.New("order not found")

// ProductNotFoundError reports a line item referencing a product that is
// not in the catalog. The whole creation fails; nothing is persisted.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

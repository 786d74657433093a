package order

import (
	"context"
	"fmt"
	"time"

	"github.com/semidist/storders/internal/storage"
)

const (
	// numberPrefix starts every order number
	numberPrefix = "ST-ORD"
	// maxSequence is the largest sequence the 4-digit format can carry
	maxSequence = 9999
)

// monthPrefix returns the order-number prefix for the given instant,
// e.g. "ST-ORD-202608-".
func monthPrefix(now time.Time) string {
	return fmt.Sprintf("%s-%s-", numberPrefix, now.UTC().Format("200601"))
}

// nextOrderNumber derives the next sequential order number for the month
// containing now: count of existing numbers sharing the month prefix,
// plus one, zero-padded to 4 digits. The store must be the creation
// transaction so count and insert are serial per prefix.
func nextOrderNumber(ctx context.Context, store storage.Storage, now time.Time) (string, error) {
	prefix := monthPrefix(now)
	count, err := store.CountOrdersByNumberPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to count orders for %s: %w", prefix, err)
	}
	seq := count + 1
	if seq > maxSequence {
		// Emitting a 5-digit sequence would break the fixed-width format
		// and the uniqueness of downstream parsers; fail instead.
		return "", fmt.Errorf("order number sequence exhausted for prefix %s", prefix)
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

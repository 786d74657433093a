package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semidist/storders/internal/storage"
)

// countStore stubs the prefix count; other Storage methods are unused
type countStore struct {
	storage.Storage
	count int
}

func (c *countStore) CountOrdersByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	return c.count, nil
}

func TestMonthPrefix(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "ST-ORD-202608-", monthPrefix(now))

	// Local times normalize to UTC before formatting
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2026, 9, 1, 3, 0, 0, 0, loc) // still Aug 31 in UTC
	assert.Equal(t, "ST-ORD-202608-", monthPrefix(late))
}

func TestNextOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	number, err := nextOrderNumber(context.Background(), &countStore{count: 0}, now)
	require.NoError(t, err)
	assert.Equal(t, "ST-ORD-202608-0001", number)

	number, err = nextOrderNumber(context.Background(), &countStore{count: 41}, now)
	require.NoError(t, err)
	assert.Equal(t, "ST-ORD-202608-0042", number)
}

func TestNextOrderNumber_SequenceExhausted(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	number, err := nextOrderNumber(context.Background(), &countStore{count: 9998}, now)
	require.NoError(t, err)
	assert.Equal(t, "ST-ORD-202608-9999", number)

	_, err = nextOrderNumber(context.Background(), &countStore{count: 9999}, now)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, status := range AllStatuses {
		parsed, ok := ParseStatus(string(status))
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseStatus("SHIPPED")
	assert.False(t, ok)
	_, ok = ParseStatus("unknown")
	assert.False(t, ok)
}

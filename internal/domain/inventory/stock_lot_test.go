package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockLot(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()

	t.Run("creates a lot", func(t *testing.T) {
		lot, err := NewStockLot(tenantID, productID, "LOT-2026-08", decimal.NewFromInt(100), decimal.NewFromFloat(3.25))
		require.NoError(t, err)
		assert.Equal(t, productID, lot.ProductID)
		assert.True(t, lot.Quantity.Equal(decimal.NewFromInt(100)))
		assert.Nil(t, lot.ExpiresAt)
	})

	t.Run("rejects empty lot number", func(t *testing.T) {
		_, err := NewStockLot(tenantID, productID, "", decimal.NewFromInt(10), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects non-positive received quantity", func(t *testing.T) {
		_, err := NewStockLot(tenantID, productID, "LOT-1", decimal.Zero, decimal.Zero)
		require.Error(t, err)
	})
}

func TestStockLot_Adjust(t *testing.T) {
	lot, err := NewStockLot(uuid.New(), uuid.New(), "LOT-2026-08", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	t.Run("applies negative delta past zero", func(t *testing.T) {
		require.NoError(t, lot.Adjust(decimal.NewFromInt(-25)))
		assert.True(t, lot.Quantity.Equal(decimal.NewFromInt(-5)))
	})

	t.Run("rejects zero delta", func(t *testing.T) {
		require.Error(t, lot.Adjust(decimal.Zero))
	})
}

func TestStockLot_IsExpired(t *testing.T) {
	lot, err := NewStockLot(uuid.New(), uuid.New(), "LOT-2026-08", decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)
	now := time.Now()

	assert.False(t, lot.IsExpired(now))

	lot.SetExpiry(now.Add(-24 * time.Hour))
	assert.True(t, lot.IsExpired(now))

	lot.SetExpiry(now.Add(24 * time.Hour))
	assert.False(t, lot.IsExpired(now))
}

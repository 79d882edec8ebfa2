package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct(tenantID, "AMOX-500", "Amoxicillin 500mg", "box")
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, tenantID, product.TenantID)
		assert.Equal(t, "AMOX-500", product.SKU)
		assert.Equal(t, "Amoxicillin 500mg", product.Name)
		assert.Equal(t, "box", product.Unit)
		assert.True(t, product.PurchasePrice.IsZero())
		assert.True(t, product.SellingPrice.IsZero())
		assert.Equal(t, ProductStatusActive, product.Status)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("converts SKU to uppercase", func(t *testing.T) {
		product, err := NewProduct(tenantID, "amox-500", "Amoxicillin 500mg", "box")
		require.NoError(t, err)
		assert.Equal(t, "AMOX-500", product.SKU)
	})

	t.Run("fails with empty SKU", func(t *testing.T) {
		_, err := NewProduct(tenantID, "", "Amoxicillin 500mg", "box")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU cannot be empty")
	})

	t.Run("fails with invalid SKU characters", func(t *testing.T) {
		_, err := NewProduct(tenantID, "AMOX 500!", "Amoxicillin 500mg", "box")
		require.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct(tenantID, "AMOX-500", "", "box")
		require.Error(t, err)
	})

	t.Run("fails with empty unit", func(t *testing.T) {
		_, err := NewProduct(tenantID, "AMOX-500", "Amoxicillin 500mg", "")
		require.Error(t, err)
	})
}

func TestProduct_SetPrices(t *testing.T) {
	tenantID := uuid.New()
	product, err := NewProduct(tenantID, "IBU-400", "Ibuprofen 400mg", "box")
	require.NoError(t, err)

	t.Run("sets valid prices", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromFloat(3.50), decimal.NewFromFloat(7.90))
		require.NoError(t, err)
		assert.True(t, product.PurchasePrice.Equal(decimal.NewFromFloat(3.50)))
		assert.True(t, product.SellingPrice.Equal(decimal.NewFromFloat(7.90)))
		assert.Equal(t, 2, product.GetVersion())
	})

	t.Run("rejects negative purchase price", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(-1), decimal.NewFromInt(5))
		require.Error(t, err)
	})

	t.Run("rejects negative selling price", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(1), decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestProduct_StatusTransitions(t *testing.T) {
	tenantID := uuid.New()

	t.Run("deactivate then reactivate", func(t *testing.T) {
		product, err := NewProduct(tenantID, "PARA-500", "Paracetamol 500mg", "box")
		require.NoError(t, err)

		require.NoError(t, product.Deactivate())
		assert.Equal(t, ProductStatusInactive, product.Status)
		assert.False(t, product.IsActive())

		require.NoError(t, product.Activate())
		assert.True(t, product.IsActive())
	})

	t.Run("cannot activate a discontinued product", func(t *testing.T) {
		product, err := NewProduct(tenantID, "PARA-500", "Paracetamol 500mg", "box")
		require.NoError(t, err)

		require.NoError(t, product.Discontinue())
		err = product.Activate()
		require.Error(t, err)
		assert.Equal(t, ProductStatusDiscontinued, product.Status)
	})

	t.Run("deactivate is idempotent-guarded", func(t *testing.T) {
		product, err := NewProduct(tenantID, "PARA-500", "Paracetamol 500mg", "box")
		require.NoError(t, err)

		require.NoError(t, product.Deactivate())
		require.Error(t, product.Deactivate())
	})
}

func TestProduct_SetRegistryInfo(t *testing.T) {
	product, err := NewProduct(uuid.New(), "OMEP-20", "Omeprazole 20mg", "box")
	require.NoError(t, err)

	require.NoError(t, product.SetRegistryInfo("REG-123456", "capsule", true))
	assert.Equal(t, "REG-123456", product.RegistryCode)
	assert.Equal(t, "capsule", product.DosageForm)
	assert.True(t, product.RequiresPrescription)
}

package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates active customer", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "  Maria Souza  ")
		require.NoError(t, err)

		assert.Equal(t, "Maria Souza", customer.Name)
		assert.Equal(t, tenantID, customer.TenantID)
		assert.True(t, customer.IsActive())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer(tenantID, "   ")
		require.Error(t, err)
	})
}

func TestCustomer_Update(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "Maria Souza")
	require.NoError(t, err)

	require.NoError(t, customer.Update("Maria S. Souza", "123.456.789-00", "+55 11 99999-0000", "maria@example.com", "Rua A, 10", "prefers generics"))
	assert.Equal(t, "Maria S. Souza", customer.Name)
	assert.Equal(t, "123.456.789-00", customer.Document)

	assert.Error(t, customer.Update("", "", "", "", "", ""))
}

func TestCustomer_StatusTransitions(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "Maria Souza")
	require.NoError(t, err)

	customer.Deactivate()
	assert.False(t, customer.IsActive())

	customer.Activate()
	assert.True(t, customer.IsActive())
}

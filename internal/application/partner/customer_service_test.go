package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pharmacy/backend/internal/domain/partner"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)

	repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

	resp, err := service.Create(ctx, tenantID, CreateCustomerRequest{
		Name:  "Maria Souza",
		Phone: "+55 11 99999-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", resp.Name)
	assert.Equal(t, "active", resp.Status)
	repo.AssertExpectations(t)
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	customer, err := partner.NewCustomer(tenantID, "Maria Souza")
	require.NoError(t, err)

	t.Run("applies partial changes", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		phone := "+55 11 88888-0000"
		resp, err := service.Update(ctx, tenantID, customer.ID, UpdateCustomerRequest{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", resp.Name)
		assert.Equal(t, phone, resp.Phone)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		id := uuid.New()
		repo.On("FindByIDForTenant", ctx, tenantID, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, tenantID, id, UpdateCustomerRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerService_Deactivate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	customer, err := partner.NewCustomer(tenantID, "Maria Souza")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)

	repo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
	repo.On("Save", ctx, customer).Return(nil)

	resp, err := service.Deactivate(ctx, tenantID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
}

package insights

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pharmacy/backend/internal/domain/catalog"
	"github.com/pharmacy/backend/internal/domain/insights"
	"github.com/pharmacy/backend/internal/domain/shared"
)

type restockFixture struct {
	service            *RestockService
	productRepo        *MockProductRepository
	salesRepo          *MockSalesHistoryRepository
	stockRepo          *MockStockLotRepository
	classificationRepo *MockClassificationRepository
	exclusionRepo      *MockExclusionRepository
	snapshotRepo       *MockSnapshotRepository
}

func newRestockFixture() *restockFixture {
	f := &restockFixture{
		productRepo:        new(MockProductRepository),
		salesRepo:          new(MockSalesHistoryRepository),
		stockRepo:          new(MockStockLotRepository),
		classificationRepo: new(MockClassificationRepository),
		exclusionRepo:      new(MockExclusionRepository),
		snapshotRepo:       new(MockSnapshotRepository),
	}
	f.service = NewRestockService(
		f.productRepo, f.salesRepo, f.stockRepo,
		f.classificationRepo, f.exclusionRepo, f.snapshotRepo, 0, 0,
	)
	return f
}

func (f *restockFixture) expectComputation(ctx context.Context, tenantID uuid.UUID, products []catalog.Product, sales map[uuid.UUID]insights.ProductSalesTotals, onHand map[uuid.UUID]decimal.Decimal, classes map[uuid.UUID]insights.Class) {
	f.productRepo.On("FindActive", ctx, tenantID).Return(products, nil)
	f.salesRepo.On("TotalsByProduct", ctx, tenantID, mock.AnythingOfType("time.Time"), insights.RestockExcludedStatuses).
		Return(sales, nil)
	f.stockRepo.On("SumOnHandByProduct", ctx, tenantID).Return(onHand, nil)
	f.classificationRepo.On("ClassByProduct", ctx, tenantID).Return(classes, nil)
	f.exclusionRepo.On("ActiveProductIDs", ctx, tenantID, mock.AnythingOfType("time.Time")).
		Return(map[uuid.UUID]struct{}{}, nil)
}

func mustProduct(t *testing.T, tenantID uuid.UUID, sku, name string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(tenantID, sku, name, "box")
	require.NoError(t, err)
	return product
}

func TestRestockService_Recommendations(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("returns list with product details", func(t *testing.T) {
		f := newRestockFixture()
		product := mustProduct(t, tenantID, "IBU-200", "Ibuprofen 200mg")

		f.expectComputation(ctx, tenantID,
			[]catalog.Product{*product},
			map[uuid.UUID]insights.ProductSalesTotals{
				product.ID: {Quantity: decimal.NewFromInt(300), Value: decimal.NewFromInt(3000)},
			},
			map[uuid.UUID]decimal.Decimal{product.ID: decimal.NewFromInt(20)},
			map[uuid.UUID]insights.Class{product.ID: insights.ClassB},
		)

		responses, err := f.service.Recommendations(ctx, tenantID)
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "Ibuprofen 200mg", responses[0].ProductName)
		assert.Equal(t, "IBU-200", responses[0].ProductSKU)
		assert.Equal(t, "B", responses[0].Classification)
		assert.InDelta(t, 10.0, responses[0].VMD, 1e-9)
		assert.InDelta(t, 2.0, responses[0].DaysToEmpty, 1e-9)
		assert.Equal(t, int64(190), responses[0].SuggestedQuantity)
		assert.Equal(t, "red", responses[0].Priority)
	})

	t.Run("no active products yields empty list", func(t *testing.T) {
		f := newRestockFixture()
		f.productRepo.On("FindActive", ctx, tenantID).Return([]catalog.Product{}, nil)

		responses, err := f.service.Recommendations(ctx, tenantID)
		require.NoError(t, err)
		assert.Empty(t, responses)
		f.salesRepo.AssertNotCalled(t, "TotalsByProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRestockService_Snooze(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("defaults the snooze window", func(t *testing.T) {
		f := newRestockFixture()
		product := mustProduct(t, tenantID, "PARA-500", "Paracetamol 500mg")

		f.productRepo.On("FindByIDForTenant", ctx, tenantID, product.ID).Return(product, nil)
		f.exclusionRepo.On("Insert", ctx, mock.MatchedBy(func(e *insights.RestockExclusion) bool {
			return e.ProductID == product.ID && e.TenantID == tenantID
		})).Return(nil)

		resp, err := f.service.Snooze(ctx, tenantID, SnoozeRequest{ProductID: product.ID.String()})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, insights.DefaultSnoozeDays), resp.BlockedUntil, time.Minute)
	})

	t.Run("uses the configured default duration", func(t *testing.T) {
		f := newRestockFixture()
		f.service = NewRestockService(
			f.productRepo, f.salesRepo, f.stockRepo,
			f.classificationRepo, f.exclusionRepo, f.snapshotRepo, 0, 14,
		)
		product := mustProduct(t, tenantID, "DICLO-50", "Diclofenac 50mg")

		f.productRepo.On("FindByIDForTenant", ctx, tenantID, product.ID).Return(product, nil)
		f.exclusionRepo.On("Insert", ctx, mock.Anything).Return(nil)

		resp, err := f.service.Snooze(ctx, tenantID, SnoozeRequest{ProductID: product.ID.String()})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), resp.BlockedUntil, time.Minute)
	})

	t.Run("explicit days override the configured default", func(t *testing.T) {
		f := newRestockFixture()
		f.service = NewRestockService(
			f.productRepo, f.salesRepo, f.stockRepo,
			f.classificationRepo, f.exclusionRepo, f.snapshotRepo, 0, 14,
		)
		product := mustProduct(t, tenantID, "NAPRO-250", "Naproxen 250mg")

		f.productRepo.On("FindByIDForTenant", ctx, tenantID, product.ID).Return(product, nil)
		f.exclusionRepo.On("Insert", ctx, mock.Anything).Return(nil)

		resp, err := f.service.Snooze(ctx, tenantID, SnoozeRequest{ProductID: product.ID.String(), Days: 3})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), resp.BlockedUntil, time.Minute)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		f := newRestockFixture()
		productID := uuid.New()

		f.productRepo.On("FindByIDForTenant", ctx, tenantID, productID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Snooze(ctx, tenantID, SnoozeRequest{ProductID: productID.String()})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.exclusionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed product id", func(t *testing.T) {
		f := newRestockFixture()

		_, err := f.service.Snooze(ctx, tenantID, SnoozeRequest{ProductID: "not-a-uuid"})
		assert.Error(t, err)
	})
}

func TestRestockService_SaveShoppingList(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("persists the provided lines as pending snapshots", func(t *testing.T) {
		f := newRestockFixture()
		productID := uuid.New()

		f.snapshotRepo.On("InsertBatch", ctx, mock.MatchedBy(func(snapshots []insights.RestockSnapshot) bool {
			return len(snapshots) == 1 &&
				snapshots[0].ProductID == productID &&
				snapshots[0].TenantID == tenantID &&
				snapshots[0].Status == insights.SnapshotStatusPending &&
				snapshots[0].SuggestedQuantity == 190 &&
				snapshots[0].Priority == insights.PriorityYellow &&
				snapshots[0].VMD.Equal(decimal.NewFromInt(10)) &&
				snapshots[0].CurrentStock.Equal(decimal.NewFromInt(20))
		})).Return(nil)

		resp, err := f.service.SaveShoppingList(ctx, tenantID, ShoppingListRequest{
			Items: []ShoppingListItemRequest{{
				ProductID:         productID.String(),
				VMD:               10,
				CurrentStock:      20,
				SuggestedQuantity: 190,
				Priority:          "yellow",
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.ItemsSaved)
		f.snapshotRepo.AssertExpectations(t)
	})

	t.Run("archives what the caller saw, not a fresh computation", func(t *testing.T) {
		f := newRestockFixture()
		productID := uuid.New()

		f.snapshotRepo.On("InsertBatch", ctx, mock.MatchedBy(func(snapshots []insights.RestockSnapshot) bool {
			return len(snapshots) == 1 && snapshots[0].SuggestedQuantity == 5
		})).Return(nil)

		// No repository expectations beyond the insert: sales, stock and
		// exclusions moving between the read and the save must not change
		// the archived rows.
		_, err := f.service.SaveShoppingList(ctx, tenantID, ShoppingListRequest{
			Items: []ShoppingListItemRequest{{
				ProductID:         productID.String(),
				VMD:               0.5,
				CurrentStock:      1,
				SuggestedQuantity: 5,
				Priority:          "red",
			}},
		})
		require.NoError(t, err)
		f.productRepo.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything)
		f.salesRepo.AssertNotCalled(t, "TotalsByProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.exclusionRepo.AssertNotCalled(t, "ActiveProductIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty list saves nothing", func(t *testing.T) {
		f := newRestockFixture()

		resp, err := f.service.SaveShoppingList(ctx, tenantID, ShoppingListRequest{})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.ItemsSaved)
		f.snapshotRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed product id", func(t *testing.T) {
		f := newRestockFixture()

		_, err := f.service.SaveShoppingList(ctx, tenantID, ShoppingListRequest{
			Items: []ShoppingListItemRequest{{ProductID: "not-a-uuid", SuggestedQuantity: 1, Priority: "green"}},
		})
		assert.Error(t, err)
		f.snapshotRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	})
}

package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmacy/backend/internal/domain/catalog"
	"github.com/pharmacy/backend/internal/domain/insights"
	"github.com/pharmacy/backend/internal/domain/inventory"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// RestockService computes the demand-driven restock list and manages the
// exclusions and shopping list snapshots around it. The list is always
// computed from live sales and stock; only the ABC class is read from the
// last persisted classification.
type RestockService struct {
	productRepo        catalog.ProductRepository
	salesRepo          insights.SalesHistoryRepository
	stockRepo          inventory.StockLotRepository
	classificationRepo insights.ClassificationRepository
	exclusionRepo      insights.ExclusionRepository
	snapshotRepo       insights.SnapshotRepository
	windowDays         int
	snoozeDays         int
}

// NewRestockService creates a new RestockService. A non-positive windowDays
// or snoozeDays falls back to the corresponding default.
func NewRestockService(
	productRepo catalog.ProductRepository,
	salesRepo insights.SalesHistoryRepository,
	stockRepo inventory.StockLotRepository,
	classificationRepo insights.ClassificationRepository,
	exclusionRepo insights.ExclusionRepository,
	snapshotRepo insights.SnapshotRepository,
	windowDays int,
	snoozeDays int,
) *RestockService {
	if windowDays <= 0 {
		windowDays = insights.DefaultRestockWindowDays
	}
	if snoozeDays <= 0 {
		snoozeDays = insights.DefaultSnoozeDays
	}
	return &RestockService{
		productRepo:        productRepo,
		salesRepo:          salesRepo,
		stockRepo:          stockRepo,
		classificationRepo: classificationRepo,
		exclusionRepo:      exclusionRepo,
		snapshotRepo:       snapshotRepo,
		windowDays:         windowDays,
		snoozeDays:         snoozeDays,
	}
}

// Recommendations returns the current restock list for a tenant, most
// urgent first.
func (s *RestockService) Recommendations(ctx context.Context, tenantID uuid.UUID) ([]RecommendationResponse, error) {
	recommendations, products, err := s.compute(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]RecommendationResponse, len(recommendations))
	for i, rec := range recommendations {
		resp := RecommendationResponse{
			ProductID:         rec.ProductID.String(),
			Classification:    rec.Classification.String(),
			VMD:               toFloat64(rec.VMD),
			CurrentStock:      toFloat64(rec.CurrentStock),
			DaysToEmpty:       toFloat64(rec.DaysToEmpty),
			SuggestedQuantity: rec.SuggestedQuantity,
			Priority:          rec.Priority.String(),
			Reason:            rec.Reason,
		}
		if p, ok := products[rec.ProductID]; ok {
			resp.ProductName = p.Name
			resp.ProductSKU = p.SKU
		}
		responses[i] = resp
	}

	return responses, nil
}

// Snooze hides a product from the restock list. The product must exist for
// the tenant; days defaults when the request leaves it at zero.
func (s *RestockService) Snooze(ctx context.Context, tenantID uuid.UUID, req SnoozeRequest) (*SnoozeResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product id")
	}

	if _, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID); err != nil {
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = s.snoozeDays
	}

	exclusion, err := insights.NewRestockExclusion(tenantID, productID, days, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.exclusionRepo.Insert(ctx, exclusion); err != nil {
		return nil, err
	}

	return &SnoozeResponse{
		ProductID:    productID.String(),
		BlockedUntil: exclusion.BlockedUntil,
	}, nil
}

// SaveShoppingList archives the provided recommendation lines as pending
// snapshot rows for purchasing follow-up. Lines are persisted exactly as
// given so the archive matches what the caller was shown, even when sales
// or exclusions have moved since; the list is never recomputed here. An
// empty list saves nothing.
func (s *RestockService) SaveShoppingList(ctx context.Context, tenantID uuid.UUID, req ShoppingListRequest) (*ShoppingListResponse, error) {
	if len(req.Items) == 0 {
		return &ShoppingListResponse{ItemsSaved: 0}, nil
	}

	snapshots := make([]insights.RestockSnapshot, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product id")
		}
		snapshots[i] = *insights.NewRestockSnapshot(tenantID, insights.Recommendation{
			ProductID:         productID,
			VMD:               decimal.NewFromFloat(item.VMD),
			CurrentStock:      decimal.NewFromFloat(item.CurrentStock),
			SuggestedQuantity: item.SuggestedQuantity,
			Priority:          insights.Priority(item.Priority),
		})
	}
	if err := s.snapshotRepo.InsertBatch(ctx, snapshots); err != nil {
		return nil, err
	}

	return &ShoppingListResponse{ItemsSaved: len(snapshots)}, nil
}

func (s *RestockService) compute(ctx context.Context, tenantID uuid.UUID) ([]insights.Recommendation, map[uuid.UUID]catalog.Product, error) {
	now := time.Now()

	active, err := s.productRepo.FindActive(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	if len(active) == 0 {
		return nil, nil, nil
	}

	productIDs := make([]uuid.UUID, len(active))
	byID := make(map[uuid.UUID]catalog.Product, len(active))
	for i, p := range active {
		productIDs[i] = p.ID
		byID[p.ID] = p
	}

	sales, err := s.salesRepo.TotalsByProduct(ctx, tenantID, now.AddDate(0, 0, -s.windowDays), insights.RestockExcludedStatuses)
	if err != nil {
		return nil, nil, err
	}

	onHand, err := s.stockRepo.SumOnHandByProduct(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	classes, err := s.classificationRepo.ClassByProduct(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	excluded, err := s.exclusionRepo.ActiveProductIDs(ctx, tenantID, now)
	if err != nil {
		return nil, nil, err
	}

	return insights.BuildRecommendations(productIDs, sales, onHand, classes, excluded, s.windowDays), byID, nil
}

package insights

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pharmacy/backend/internal/domain/catalog"
	"github.com/pharmacy/backend/internal/domain/insights"
	"github.com/pharmacy/backend/internal/domain/inventory"
)

// ClassificationService orchestrates the ABC analysis: it aggregates the
// trailing sales window, runs the ranking walk and persists one row per
// sold product. Rows are upserted individually without a surrounding
// transaction; a failure mid-run leaves earlier rows in place and surfaces
// the error.
type ClassificationService struct {
	salesRepo          insights.SalesHistoryRepository
	stockRepo          inventory.StockLotRepository
	classificationRepo insights.ClassificationRepository
	productRepo        catalog.ProductRepository
	windowDays         int
}

// NewClassificationService creates a new ClassificationService. A
// non-positive windowDays falls back to the default window.
func NewClassificationService(
	salesRepo insights.SalesHistoryRepository,
	stockRepo inventory.StockLotRepository,
	classificationRepo insights.ClassificationRepository,
	productRepo catalog.ProductRepository,
	windowDays int,
) *ClassificationService {
	if windowDays <= 0 {
		windowDays = insights.DefaultClassificationWindowDays
	}
	return &ClassificationService{
		salesRepo:          salesRepo,
		stockRepo:          stockRepo,
		classificationRepo: classificationRepo,
		productRepo:        productRepo,
		windowDays:         windowDays,
	}
}

// Recompute rebuilds the classification for a tenant. With no sales in the
// window nothing is written and the previous classification stays intact.
func (s *ClassificationService) Recompute(ctx context.Context, tenantID uuid.UUID) (*RecomputeClassificationResponse, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -s.windowDays)

	sales, err := s.salesRepo.TotalsByProduct(ctx, tenantID, since, insights.ClassificationExcludedStatuses)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return &RecomputeClassificationResponse{ProductsClassified: 0, CalculatedAt: now}, nil
	}

	stockByProduct, err := s.stockRepo.SumByProduct(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rows := insights.BuildClassification(tenantID, sales, stockByProduct, now)
	for i := range rows {
		if err := s.classificationRepo.Upsert(ctx, &rows[i]); err != nil {
			return nil, err
		}
	}

	return &RecomputeClassificationResponse{ProductsClassified: len(rows), CalculatedAt: now}, nil
}

// List returns the persisted classification ordered by revenue share,
// optionally filtered to one class. classFilter is the raw query value;
// empty means all classes.
func (s *ClassificationService) List(ctx context.Context, tenantID uuid.UUID, classFilter string) ([]ClassificationResponse, error) {
	var class *insights.Class
	if classFilter != "" {
		parsed, err := insights.ParseClass(classFilter)
		if err != nil {
			return nil, err
		}
		class = &parsed
	}

	rows, err := s.classificationRepo.FindForTenant(ctx, tenantID, class)
	if err != nil {
		return nil, err
	}

	products, err := s.lookupProducts(ctx, tenantID, rows)
	if err != nil {
		return nil, err
	}

	responses := make([]ClassificationResponse, len(rows))
	for i, row := range rows {
		resp := ClassificationResponse{
			ProductID:         row.ProductID.String(),
			Classification:    row.Classification.String(),
			ParticipationPct:  toFloat64(row.ParticipationPct),
			AccumulatedPct:    toFloat64(row.AccumulatedPct),
			TotalSoldAmount:   toFloat64(row.TotalSoldAmount),
			TotalSoldQuantity: toFloat64(row.TotalSoldQuantity),
			TurnoverRate:      toFloat64(row.TurnoverRate),
			AverageStock:      toFloat64(row.AverageStock),
			LastCalculated:    row.LastCalculated,
		}
		if p, ok := products[row.ProductID]; ok {
			resp.ProductName = p.Name
			resp.ProductSKU = p.SKU
		}
		responses[i] = resp
	}

	return responses, nil
}

func (s *ClassificationService) lookupProducts(ctx context.Context, tenantID uuid.UUID, rows []insights.ProductClassification) (map[uuid.UUID]catalog.Product, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ProductID
	}

	products, err := s.productRepo.FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

package inventory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmacy/backend/internal/domain/catalog"
	"github.com/pharmacy/backend/internal/domain/inventory"
	"github.com/pharmacy/backend/internal/domain/shared"
)

// StockService handles lot-level stock operations
type StockService struct {
	stockRepo   inventory.StockLotRepository
	productRepo catalog.ProductRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockLotRepository, productRepo catalog.ProductRepository) *StockService {
	return &StockService{stockRepo: stockRepo, productRepo: productRepo}
}

// ReceiveLot registers a received batch for an existing product
func (s *StockService) ReceiveLot(ctx context.Context, tenantID uuid.UUID, req ReceiveLotRequest) (*StockLotResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product id")
	}

	if _, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID); err != nil {
		return nil, err
	}

	unitCost := decimal.Zero
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	lot, err := inventory.NewStockLot(tenantID, productID, req.LotNumber, req.Quantity, unitCost)
	if err != nil {
		return nil, err
	}
	if req.ExpiresAt != nil {
		lot.SetExpiry(*req.ExpiresAt)
	}

	if err := s.stockRepo.Save(ctx, lot); err != nil {
		return nil, err
	}

	return toStockLotResponse(lot), nil
}

// AdjustLot applies a signed quantity delta to an existing lot
func (s *StockService) AdjustLot(ctx context.Context, tenantID, lotID uuid.UUID, req AdjustLotRequest) (*StockLotResponse, error) {
	lot, err := s.stockRepo.FindByIDForTenant(ctx, tenantID, lotID)
	if err != nil {
		return nil, err
	}

	if err := lot.Adjust(req.Delta); err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, lot); err != nil {
		return nil, err
	}

	return toStockLotResponse(lot), nil
}

// ListLots returns all lots of one product, newest first
func (s *StockService) ListLots(ctx context.Context, tenantID, productID uuid.UUID) ([]StockLotResponse, error) {
	lots, err := s.stockRepo.FindByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	responses := make([]StockLotResponse, len(lots))
	for i := range lots {
		responses[i] = *toStockLotResponse(&lots[i])
	}
	return responses, nil
}

// StockLevels returns the per-product lot sums for a tenant. Products with
// no lots at all are absent.
func (s *StockService) StockLevels(ctx context.Context, tenantID uuid.UUID) ([]StockLevelResponse, error) {
	total, err := s.stockRepo.SumByProduct(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	onHand, err := s.stockRepo.SumOnHandByProduct(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]StockLevelResponse, 0, len(total))
	for productID, sum := range total {
		responses = append(responses, StockLevelResponse{
			ProductID: productID.String(),
			Total:     toFloat64(sum),
			OnHand:    toFloat64(onHand[productID]),
		})
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].ProductID < responses[j].ProductID
	})
	return responses, nil
}

package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pharmacy/backend/internal/domain/catalog"
	"github.com/pharmacy/backend/internal/domain/partner"
	"github.com/pharmacy/backend/internal/domain/shared"
	"github.com/pharmacy/backend/internal/domain/trade"
)

// SalesOrderService handles sales order business operations. Orders carry
// a snapshot of the product name, SKU and unit price at the time of sale;
// later catalog edits never touch past orders.
type SalesOrderService struct {
	orderRepo    trade.SalesOrderRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Create creates a pending sales order with its items
func (s *SalesOrderService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewSalesOrder(tenantID, orderNumber)
	if err != nil {
		return nil, err
	}
	order.Remark = req.Remark

	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, *req.CustomerID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
			}
			return nil, err
		}
		if !customer.IsActive() {
			return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer is inactive")
		}
		order.SetCustomer(customer.ID)
	}

	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product id")
		}

		product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive() {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is not active: "+product.SKU)
		}

		unitPrice := product.SellingPrice
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		if err := order.AddItem(product.ID, product.Name, product.SKU, item.Quantity, unitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return toSalesOrderResponse(order), nil
}

// Complete marks a pending order as completed
func (s *SalesOrderService) Complete(ctx context.Context, tenantID, id uuid.UUID) (*SalesOrderResponse, error) {
	return s.transition(ctx, tenantID, id, (*trade.SalesOrder).Complete)
}

// Cancel marks a pending order as cancelled
func (s *SalesOrderService) Cancel(ctx context.Context, tenantID, id uuid.UUID) (*SalesOrderResponse, error) {
	return s.transition(ctx, tenantID, id, (*trade.SalesOrder).Cancel)
}

func (s *SalesOrderService) transition(ctx context.Context, tenantID, id uuid.UUID, apply func(*trade.SalesOrder) error) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order), nil
}

// Get returns a single order with its items
func (s *SalesOrderService) Get(ctx context.Context, tenantID, id uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order), nil
}

// List returns a paginated order list
func (s *SalesOrderService) List(ctx context.Context, tenantID uuid.UUID, filter SalesOrderListFilter) (*shared.Paginated[SalesOrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *toSalesOrderResponse(&orders[i])
	}

	paginated := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &paginated, nil
}

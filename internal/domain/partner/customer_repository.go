package partner

import (
	"github.com/pharmacy/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence contract for customers
type CustomerRepository interface {
	shared.TenantRepository[Customer]
}

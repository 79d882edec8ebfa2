package partner

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pharmacy/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer is a pharmacy customer. Orders reference customers optionally;
// walk-in sales carry no customer at all.
type Customer struct {
	shared.TenantAggregateRoot
	Name     string         `gorm:"type:varchar(200);not null"`
	Document string         `gorm:"type:varchar(50);index"` // national id or tax number
	Phone    string         `gorm:"type:varchar(50);index"`
	Email    string         `gorm:"type:varchar(200);index"`
	Address  string         `gorm:"type:text"`
	Notes    string         `gorm:"type:text"`
	Status   CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new active customer
func NewCustomer(tenantID uuid.UUID, name string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		Status:              CustomerStatusActive,
	}, nil
}

// Update changes the customer's editable details
func (c *Customer) Update(name, document, phone, email, address, notes string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Document = strings.TrimSpace(document)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Address = strings.TrimSpace(address)
	c.Notes = notes
	return nil
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	c.Status = CustomerStatusActive
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	c.Status = CustomerStatusInactive
}

// IsActive checks whether the customer can be attached to new orders
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

func validateCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

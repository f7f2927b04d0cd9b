package core

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerStore is the persistence gateway for customers. The *gorm.DB handle
// is injected by the application root; the store owns no connection state of
// its own.
type CustomerStore struct {
	db *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// Migrate creates or updates the customers table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Customer{})
}

// Create inserts a new row and assigns the id and timestamps. Any store
// failure is wrapped into a DataValidationError; GORM runs the insert in its
// own transaction, so nothing is left half-applied.
func (s *CustomerStore) Create(ctx context.Context, c *Customer) error {
	if err := checkRequiredColumns(c); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return &DataValidationError{Message: "failed to create " + c.String(), Cause: err}
	}
	return nil
}

// Update persists the entity's current field values. The entity must already
// have an id. updated_at advances on success.
func (s *CustomerStore) Update(ctx context.Context, c *Customer) error {
	if c.ID == uuid.Nil {
		return &DataValidationError{Message: "update called with no id"}
	}
	if err := checkRequiredColumns(c); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return &DataValidationError{Message: "failed to update " + c.String(), Cause: err}
	}
	return nil
}

// Delete removes the row matching the entity's id. Deleting an id that does
// not exist is a no-op; whether absence is an error is the caller's decision.
func (s *CustomerStore) Delete(ctx context.Context, c *Customer) error {
	if err := s.db.WithContext(ctx).Delete(&Customer{}, "id = ?", c.ID).Error; err != nil {
		return &DataValidationError{Message: "failed to delete " + c.String(), Cause: err}
	}
	return nil
}

// Find returns the customer with the given id, or nil when there is none.
func (s *CustomerStore) Find(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var c Customer
	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// All returns every customer in store-default order.
func (s *CustomerStore) All(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := s.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

// Suspend marks the customer suspended and persists via the update path.
// Suspending an already-suspended customer succeeds and changes nothing.
func (s *CustomerStore) Suspend(ctx context.Context, c *Customer) error {
	c.Suspended = true
	return s.Update(ctx, c)
}

// Unsuspend clears the suspended flag and persists via the update path.
func (s *CustomerStore) Unsuspend(ctx context.Context, c *Customer) error {
	c.Suspended = false
	return s.Update(ctx, c)
}

// checkRequiredColumns is the gateway half of the blank-field defense; the
// table's NOT NULL and TRIM checks are the other half.
func checkRequiredColumns(c *Customer) error {
	for key, value := range map[string]string{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"address":    c.Address,
	} {
		if strings.TrimSpace(value) == "" {
			return &DataValidationError{Message: key + " must not be null or blank"}
		}
	}
	return nil
}

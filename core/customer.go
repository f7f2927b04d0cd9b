package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DataValidationError is the single domain error for validation failures and
// failed store commits. Not-found is never an error; finders return nil.
type DataValidationError struct {
	Message string
	Cause   error
}

func (e *DataValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DataValidationError) Unwrap() error { return e.Cause }

// Customer is one row in the customers table. The id is assigned on first
// insert; the timestamps are owned by the store. The TRIM checks back up the
// deserialization rules at the constraint level.
type Customer struct {
	ID        uuid.UUID `gorm:"primaryKey;size:36"`
	FirstName string    `gorm:"size:255;not null;check:chk_customers_first_name,TRIM(first_name) <> ''"`
	LastName  string    `gorm:"size:255;not null;check:chk_customers_last_name,TRIM(last_name) <> ''"`
	Address   string    `gorm:"size:255;not null;check:chk_customers_address,TRIM(address) <> ''"`
	Suspended bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer %s %s", c.FirstName, c.LastName)
}

// Deserialize populates the entity from an untyped field map, the shape a
// parsed JSON request body arrives in. first_name, last_name and address are
// required and trimmed; suspended is optional and, when absent, keeps the
// entity's current value. Unknown keys are ignored; id and the timestamps are
// server-controlled and never read from the map.
func (c *Customer) Deserialize(data map[string]any) error {
	if data == nil {
		return &DataValidationError{Message: "invalid customer: body was not a field map"}
	}

	first, err := requiredTextField(data, "first_name")
	if err != nil {
		return err
	}
	last, err := requiredTextField(data, "last_name")
	if err != nil {
		return err
	}
	address, err := requiredTextField(data, "address")
	if err != nil {
		return err
	}

	if raw, ok := data["suspended"]; ok && raw != nil {
		suspended, ok := raw.(bool)
		if !ok {
			return &DataValidationError{Message: "invalid customer: suspended must be a boolean"}
		}
		c.Suspended = suspended
	}

	c.FirstName = first
	c.LastName = last
	c.Address = address
	return nil
}

func requiredTextField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", &DataValidationError{Message: "invalid customer: missing " + key}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &DataValidationError{Message: "invalid customer: " + key + " must be a string"}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &DataValidationError{Message: "invalid customer: " + key + " must not be blank"}
	}
	return value, nil
}

// Serialize renders the entity as the wire-format field map. The id and the
// timestamps are nil until the entity has been persisted.
func (c *Customer) Serialize() map[string]any {
	data := map[string]any{
		"id":         nil,
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"address":    c.Address,
		"suspended":  c.Suspended,
		"created_at": nil,
		"updated_at": nil,
	}
	if c.ID != uuid.Nil {
		data["id"] = c.ID.String()
	}
	if !c.CreatedAt.IsZero() {
		data["created_at"] = c.CreatedAt.Format(time.RFC3339Nano)
	}
	if !c.UpdatedAt.IsZero() {
		data["updated_at"] = c.UpdatedAt.Format(time.RFC3339Nano)
	}
	return data
}

package console

import (
	"github.com/axleworks/customers/core"
	"gorm.io/gorm"
)

// EnsureTables creates any missing tables without touching existing ones.
func EnsureTables(db *gorm.DB) error {
	models := []any{
		&core.Customer{},
	}

	for _, m := range models {
		if db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().CreateTable(m); err != nil {
			return err
		}
	}
	return nil
}

func ListCustomers(db *gorm.DB) ([]core.Customer, error) {
	var customers []core.Customer
	err := db.Find(&customers).Error
	return customers, err
}

package console

import (
	"context"
	"fmt"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/infrastructure/devops"
	"github.com/axleworks/customers/utils"
	"gorm.io/gorm"
)

// Connect opens the customers database using the credentials published in the
// devops SSM configuration.
func Connect(ctx context.Context) (*gorm.DB, error) {
	databases, err := devops.LoadDBConfig(ctx)
	if err != nil {
		return nil, err
	}

	dbconfig := utils.Find(databases, func(db devops.DBEntry) bool {
		return db.Name == "customers"
	})
	if dbconfig == nil {
		return nil, fmt.Errorf("customers database parameter not found")
	}

	return core.Open(dbconfig.Driver, BuildDSN(*dbconfig), 5, core.LogLevelSilent)
}

// BuildDSN renders the driver-specific connection string for a config entry.
func BuildDSN(entry devops.DBEntry) string {
	if entry.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			entry.Username,
			entry.Password,
			entry.Host,
			entry.Name,
		)
	}
	return fmt.Sprintf("host=%s user=%s password='%s' dbname=%s port=5432 sslmode=require",
		entry.Host,
		entry.Username,
		entry.Password,
		entry.Name,
	)
}

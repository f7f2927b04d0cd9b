package main

import (
	"context"
	"log"
	"os"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/utils"
)

// Seeds customers from a CSV of first_name,last_name,address rows (header
// expected). Usage: seed <file.csv>, with DSN/DB_DRIVER from the environment.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: seed <file.csv>")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	records, err := utils.ParseCSV(f)
	if err != nil {
		log.Fatal(err)
	}
	if len(records) < 2 {
		log.Fatal("no data rows in file")
	}

	db, err := core.Open(os.Getenv("DB_DRIVER"), os.Getenv("DSN"), 5, core.LogLevelSilent)
	if err != nil {
		log.Fatal(err)
	}
	if err := core.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	store := core.NewCustomerStore(db)

	created := 0
	for _, row := range records[1:] {
		if len(row) != 3 {
			log.Fatalf("expected 3 columns, got %d: %v", len(row), row)
		}
		customer := &core.Customer{}
		if err := customer.Deserialize(map[string]any{
			"first_name": row[0],
			"last_name":  row[1],
			"address":    row[2],
		}); err != nil {
			log.Fatal(err)
		}
		if err := store.Create(ctx, customer); err != nil {
			log.Fatal(err)
		}
		created++
	}

	log.Printf("created %d customers", created)
}

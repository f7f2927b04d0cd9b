package main

import (
	"context"
	"fmt"
	"log"

	"github.com/axleworks/customers/console"
)

func main() {
	ctx := context.Background()

	db, err := console.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if err := console.EnsureTables(db); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}
	fmt.Println("Database tables created")
}

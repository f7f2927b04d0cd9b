package main

import (
	"log"
	"os"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/web/handlers"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN not set")
	}

	db, err := core.Open(os.Getenv("DB_DRIVER"), dsn, 10, core.ParseLogLevel(os.Getenv("DB_LOG_LEVEL")))
	if err != nil {
		log.Fatal(err)
	}
	if err := core.Migrate(db); err != nil {
		log.Fatal("failed to run migrations: ", err)
	}

	r := handlers.NewRouter(core.NewCustomerStore(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatal(err)
	}
}

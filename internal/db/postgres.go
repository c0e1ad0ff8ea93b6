package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	ordersTableSQL := `
		CREATE TABLE IF NOT EXISTS tiffin_orders (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			mobile_number VARCHAR(10) NOT NULL,
			region VARCHAR(100) NOT NULL,
			village VARCHAR(255) NOT NULL,
			from_date TIMESTAMPTZ NOT NULL,
			till_date TIMESTAMPTZ NOT NULL,
			lunch_count INT NOT NULL DEFAULT 0,
			dinner_count INT NOT NULL DEFAULT 0,
			total_bill DOUBLE PRECISION NOT NULL,
			payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersTableSQL); err != nil {
		return err
	}

	// Delivery lists filter on the subscription window every day.
	windowIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_tiffin_orders_window
		ON tiffin_orders (from_date, till_date)
	`
	if _, err := db.Exec(ctx, windowIndexSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}

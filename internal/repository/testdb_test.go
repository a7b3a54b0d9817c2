package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rlwai/shop-api/internal/database"
)

// setupTestDB connects to TEST_DATABASE_URL and creates temporary tables that
// shadow the real ones for the lifetime of the single pooled connection.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.Connect(url)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.Exec(`
		CREATE TEMP TABLE images (
			id SERIAL PRIMARY KEY,
			product_code TEXT NOT NULL,
			subprod_code TEXT,
			img_data BYTEA,
			image_path TEXT,
			is_primary BOOLEAN
		);
		CREATE TEMP TABLE categories (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL,
			title_ua TEXT, title_pl TEXT, title_en TEXT, title_ru TEXT
		);
		CREATE TEMP TABLE products (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL,
			category_code TEXT,
			title_ua TEXT, title_pl TEXT, title_en TEXT, title_ru TEXT,
			descr_ua TEXT, descr_pl TEXT, descr_en TEXT, descr_ru TEXT,
			is_active BOOLEAN DEFAULT TRUE,
			is_variative BOOLEAN DEFAULT FALSE,
			updated_at TIMESTAMP
		);
		CREATE TEMP TABLE price_list (
			product_code TEXT,
			product_id INT,
			currency_code TEXT,
			price NUMERIC(12, 2),
			stock_quantity INT
		);
		CREATE TEMP TABLE orders (
			id SERIAL PRIMARY KEY,
			customer_id INT,
			order_date TIMESTAMP,
			invoice_date TIMESTAMP,
			invoice_number TEXT,
			delivery_date TIMESTAMP,
			total NUMERIC(12, 2),
			status TEXT
		);
		CREATE TEMP TABLE order_items (
			id SERIAL PRIMARY KEY,
			order_id INT,
			product_id INT,
			quantity INT,
			price NUMERIC(12, 2)
		);
	`)
	require.NoError(t, err)

	return db
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rlwai/shop-api/internal/model"
)

type ProductRepository interface {
	List(ctx context.Context, params model.ProductListParams) ([]model.ProductListItem, error)
	FindActiveByID(ctx context.Context, id int64, currency, lang string) (*model.ProductDetail, error)
	// FindPrice returns nil when the product has no price in currency.
	FindPrice(ctx context.Context, productID int64, currency string) (*float64, error)
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) ProductRepository
}

type productRepo struct {
	db sqlxDB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) WithTx(tx *sqlx.Tx) ProductRepository {
	return &productRepo{db: tx}
}

func (r *productRepo) List(ctx context.Context, params model.ProductListParams) ([]model.ProductListItem, error) {
	title := localizedColumn("title", params.Language)
	descr := localizedColumn("descr", params.Language)

	query := fmt.Sprintf(`
		SELECT
			p.id AS product_id,
			p.code AS product_code,
			c.code AS category_name,
			p.%[1]s AS product_title,
			p.%[2]s AS product_descr,
			COALESCE(pl.price, 0) AS price,
			COALESCE(pl.stock_quantity, 0) AS quantity,
			COALESCE(p.is_variative, FALSE) AS is_variative
		FROM products p
		LEFT JOIN categories c ON p.category_code = c.code
		LEFT JOIN price_list pl ON p.code = pl.product_code AND pl.currency_code = $1
		WHERE p.is_active = TRUE
			AND ($2 = '' OR c.code = $2)
		ORDER BY c.code, p.%[1]s
		LIMIT $3 OFFSET $4
	`, title, descr)

	var items []model.ProductListItem
	err := r.db.SelectContext(ctx, &items, query,
		params.Currency, params.Category, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *productRepo) FindActiveByID(ctx context.Context, id int64, currency, lang string) (*model.ProductDetail, error) {
	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.code AS product_code,
			c.id AS category_id,
			c.code AS category,
			p.is_active,
			p.%s AS title,
			p.%s AS description,
			p.updated_at,
			COALESCE(pl.price, 0) AS price,
			COALESCE(pl.stock_quantity, 0) AS quantity
		FROM products p
		LEFT JOIN categories c ON p.category_code = c.code
		LEFT JOIN price_list pl ON p.code = pl.product_code AND pl.currency_code = $1
		WHERE p.id = $2 AND p.is_active = TRUE
	`, localizedColumn("title", lang), localizedColumn("descr", lang))

	var product model.ProductDetail
	err := r.db.GetContext(ctx, &product, query, currency, id)
	return HandleNotFound(&product, err)
}

func (r *productRepo) FindPrice(ctx context.Context, productID int64, currency string) (*float64, error) {
	var price float64
	err := r.db.GetContext(ctx, &price, `
		SELECT pl.price
		FROM products p
		INNER JOIN price_list pl ON pl.product_code = p.code AND pl.currency_code = $2
		WHERE p.id = $1
		LIMIT 1
	`, productID, currency)
	return HandleNotFound(&price, err)
}

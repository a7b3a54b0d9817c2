package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rlwai/shop-api/internal/model"
)

type CartRepository interface {
	FindByCustomerID(ctx context.Context, customerID int64, currency, lang string) ([]model.CartItem, error)
}

type cartRepo struct {
	db sqlxDB
}

func NewCartRepository(db *sqlx.DB) CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByCustomerID(ctx context.Context, customerID int64, currency, lang string) ([]model.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.product_id,
			pr.code AS product_code,
			cat.code AS category,
			pr.%s AS title,
			pr.%s AS description,
			c.quantity,
			pl.price,
			c.quantity * pl.price AS summ
		FROM carts c
		INNER JOIN products pr ON pr.id = c.product_id
		INNER JOIN price_list pl ON pl.product_code = pr.code AND pl.currency_code = $2
		LEFT JOIN categories cat ON cat.code = pr.category_code
		WHERE c.customer_id = $1
		ORDER BY c.id
	`, localizedColumn("title", lang), localizedColumn("descr", lang))

	var items []model.CartItem
	err := r.db.SelectContext(ctx, &items, query, customerID, currency)
	if err != nil {
		return nil, err
	}
	return items, nil
}

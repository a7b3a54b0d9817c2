package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rlwai/shop-api/internal/model"
)

type CatalogRepository interface {
	FindLanguages(ctx context.Context) ([]model.Language, error)
	FindCurrencies(ctx context.Context, lang string) ([]model.Currency, error)
	FindCategories(ctx context.Context, lang string) ([]model.Category, error)
}

type catalogRepo struct {
	db sqlxDB
}

func NewCatalogRepository(db *sqlx.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) FindLanguages(ctx context.Context) ([]model.Language, error) {
	var languages []model.Language
	err := r.db.SelectContext(ctx, &languages, `
		SELECT TRIM(code) AS code, title FROM languages ORDER BY title
	`)
	return languages, err
}

func (r *catalogRepo) FindCurrencies(ctx context.Context, lang string) ([]model.Currency, error) {
	var currencies []model.Currency
	err := r.db.SelectContext(ctx, &currencies, fmt.Sprintf(`
		SELECT TRIM(code) AS code, %s AS title FROM currencies ORDER BY code
	`, localizedColumn("title", lang)))
	return currencies, err
}

func (r *catalogRepo) FindCategories(ctx context.Context, lang string) ([]model.Category, error) {
	col := localizedColumn("title", lang)

	var categories []model.Category
	err := r.db.SelectContext(ctx, &categories, fmt.Sprintf(`
		SELECT
			c.id,
			TRIM(c.code) AS code,
			c.%[1]s AS title,
			COUNT(p.id) AS prod_count
		FROM categories c
		LEFT JOIN products p ON c.code = p.category_code
		GROUP BY c.id, c.code, c.%[1]s
		ORDER BY c.code
	`, col))
	return categories, err
}

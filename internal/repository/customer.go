package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rlwai/shop-api/internal/model"
)

type CustomerRepository interface {
	FindEnabledByLogin(ctx context.Context, login string) (*model.Customer, error)
}

type customerRepo struct {
	db sqlxDB
}

func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) FindEnabledByLogin(ctx context.Context, login string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, `
		SELECT
			id,
			login,
			COALESCE(first_name, '') AS first_name,
			COALESCE(last_name, '') AS last_name,
			phone,
			COALESCE(phrase, '') AS phrase
		FROM customers
		WHERE enabled = TRUE AND login = $1
	`, login)
	return HandleNotFound(&customer, err)
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rlwai/shop-api/internal/model"
)

// sqlxDB is an interface satisfied by both *sqlx.DB and *sqlx.Tx
type sqlxDB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// HandleNotFound processes a database query result, converting sql.ErrNoRows
// to a nil result without error. This is a common pattern for Find* operations
// where a missing row is not an error condition.
//
// Usage:
//
//	var item model.Item
//	err := r.db.GetContext(ctx, &item, query, args...)
//	return HandleNotFound(&item, err)
func HandleNotFound[T any](result *T, err error) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// localizedColumn returns the per-language column name, e.g. title_pl.
// Only whitelisted languages ever reach the SQL text.
func localizedColumn(prefix, lang string) string {
	for _, l := range model.Languages {
		if l == lang {
			return prefix + "_" + l
		}
	}
	return prefix + "_" + model.DefaultLanguage
}

package model

import "time"

type ProductListItem struct {
	ID          int64   `db:"product_id"`
	Code        string  `db:"product_code"`
	Category    *string `db:"category_name"`
	Title       *string `db:"product_title"`
	Description *string `db:"product_descr"`
	Price       float64 `db:"price"`
	Quantity    int     `db:"quantity"`
	IsVariative bool    `db:"is_variative"`
}

type ProductDetail struct {
	ID          int64      `db:"id"`
	Code        string     `db:"product_code"`
	CategoryID  *int64     `db:"category_id"`
	Category    *string    `db:"category"`
	IsActive    bool       `db:"is_active"`
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	UpdatedAt   *time.Time `db:"updated_at"`
	Price       float64    `db:"price"`
	Quantity    int        `db:"quantity"`
}

type ProductListParams struct {
	Currency string
	Language string
	Category string
	Limit    int
	Offset   int
}

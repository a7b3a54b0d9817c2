package model

type Language struct {
	Code  string `db:"code" json:"code"`
	Title string `db:"title" json:"title"`
}

type Currency struct {
	Code  string  `db:"code" json:"code"`
	Title *string `db:"title" json:"title"`
}

type Category struct {
	ID           int64   `db:"id" json:"id"`
	Code         string  `db:"code" json:"code"`
	Title        *string `db:"title" json:"title"`
	ProductCount int     `db:"prod_count" json:"prod_count"`
}

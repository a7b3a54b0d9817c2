package model

type CartItem struct {
	ID          int64   `db:"id"`
	ProductID   int64   `db:"product_id"`
	ProductCode string  `db:"product_code"`
	Category    *string `db:"category"`
	Title       *string `db:"title"`
	Description *string `db:"description"`
	Quantity    int     `db:"quantity"`
	Price       float64 `db:"price"`
	Summ        float64 `db:"summ"`
}

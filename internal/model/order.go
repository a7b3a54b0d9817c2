package model

import "time"

type Order struct {
	ID            int64      `db:"id" json:"id"`
	CustomerID    int64      `db:"customer_id" json:"-"`
	OrderDate     *time.Time `db:"order_date" json:"date_ordered"`
	InvoiceDate   *time.Time `db:"invoice_date" json:"-"`
	InvoiceNumber *string    `db:"invoice_number" json:"TTN"`
	DeliveryDate  *time.Time `db:"delivery_date" json:"date_delivered"`
	Total         float64    `db:"total" json:"summ"`
	Status        *string    `db:"status" json:"status"`
}

type OrderItem struct {
	ID          int64   `db:"id" json:"order_item_id"`
	ProductID   int64   `db:"product_id" json:"product_id"`
	ProductName *string `db:"product_name" json:"product_name"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Price       float64 `db:"price" json:"price"`
}

type CreateOrderItemParams struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     float64
}

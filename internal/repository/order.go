package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rlwai/shop-api/internal/model"
)

type OrderRepository interface {
	FindByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	FindByIDForCustomer(ctx context.Context, id, customerID int64) (*model.Order, error)
	FindItems(ctx context.Context, orderID int64, lang string) ([]model.OrderItem, error)
	Create(ctx context.Context, customerID int64, status model.OrderStatus) (int64, error)
	CreateItem(ctx context.Context, params model.CreateOrderItemParams) error
	UpdateTotal(ctx context.Context, id int64, total float64) error
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) OrderRepository
}

type orderRepo struct {
	db sqlxDB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) WithTx(tx *sqlx.Tx) OrderRepository {
	return &orderRepo{db: tx}
}

const orderColumns = `
	o.id,
	o.customer_id,
	o.order_date,
	o.invoice_date,
	o.invoice_number,
	o.delivery_date,
	COALESCE(o.total, 0) AS total,
	o.status
`

func (r *orderRepo) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.SelectContext(ctx, &orders, `
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.customer_id = $1
		ORDER BY o.id DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) FindByIDForCustomer(ctx context.Context, id, customerID int64) (*model.Order, error) {
	var order model.Order
	err := r.db.GetContext(ctx, &order, `
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = $1 AND o.customer_id = $2
	`, id, customerID)
	return HandleNotFound(&order, err)
}

func (r *orderRepo) FindItems(ctx context.Context, orderID int64, lang string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.SelectContext(ctx, &items, fmt.Sprintf(`
		SELECT
			oi.id,
			oi.product_id,
			p.%s AS product_name,
			oi.quantity,
			oi.price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, localizedColumn("title", lang)), orderID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepo) Create(ctx context.Context, customerID int64, status model.OrderStatus) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO orders (customer_id, order_date, status, total)
		VALUES ($1, CURRENT_TIMESTAMP, $2, 0)
		RETURNING id
	`, customerID, status)
	return id, err
}

func (r *orderRepo) CreateItem(ctx context.Context, params model.CreateOrderItemParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
	`, params.OrderID, params.ProductID, params.Quantity, params.Price)
	return err
}

func (r *orderRepo) UpdateTotal(ctx context.Context, id int64, total float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE orders SET total = $2 WHERE id = $1`, id, total)
	return err
}

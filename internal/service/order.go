package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/rlwai/shop-api/internal/database"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/repository"
	"github.com/rlwai/shop-api/internal/util"
)

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn database.TxFunc) error
}

type OrderLine struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderInput struct {
	Currency string      `json:"currency"`
	Products []OrderLine `json:"products"`
}

type OrderDetail struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

type OrderService struct {
	db          TxRunner
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(db TxRunner, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *OrderService) List(ctx context.Context, customerID int64) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	return nonNil(orders), nil
}

// Get only returns orders that belong to customerID.
func (s *OrderService) Get(ctx context.Context, id, customerID int64, lang string) (*OrderDetail, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("order_id", "must be a positive integer")
	}

	order, err := s.orderRepo.FindByIDForCustomer(ctx, id, customerID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, apperrors.NotFound("Order")
	}

	items, err := s.orderRepo.FindItems(ctx, id, NormalizeLanguage(lang))
	if err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}

	return &OrderDetail{Order: *order, Items: nonNil(items)}, nil
}

func (input CreateOrderInput) Validate() error {
	if input.Currency == "" {
		return apperrors.MissingRequired("currency")
	}
	if !util.IsValidEnum(input.Currency, model.Currencies) {
		return apperrors.InvalidInput("currency", "unsupported currency")
	}
	if len(input.Products) == 0 {
		return apperrors.MissingRequired("products")
	}
	for _, line := range input.Products {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return apperrors.InvalidInput("products", "every item needs a positive id and quantity")
		}
	}
	return nil
}

// Create prices every line from the price list and stores the order in a
// single transaction. A line without a price rolls the whole order back.
func (s *OrderService) Create(ctx context.Context, customerID int64, input CreateOrderInput) (int64, error) {
	input.Currency = strings.ToLower(strings.TrimSpace(input.Currency))
	if err := input.Validate(); err != nil {
		return 0, err
	}

	var orderID int64
	err := s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		orders := s.orderRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)

		id, err := orders.Create(ctx, customerID, model.OrderStatusNew)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		var total float64
		for _, line := range input.Products {
			price, err := products.FindPrice(ctx, line.ProductID, input.Currency)
			if err != nil {
				return fmt.Errorf("find price: %w", err)
			}
			if price == nil {
				return apperrors.InvalidInput("products",
					fmt.Sprintf("product %d has no price in %s", line.ProductID, input.Currency))
			}

			if err := orders.CreateItem(ctx, model.CreateOrderItemParams{
				OrderID:   id,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     *price,
			}); err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
			total += *price * float64(line.Quantity)
		}

		if err := orders.UpdateTotal(ctx, id, math.Round(total*100)/100); err != nil {
			return fmt.Errorf("update order total: %w", err)
		}

		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("orderId", orderID).
		Int64("customerId", customerID).
		Int("items", len(input.Products)).
		Msg("order created")

	return orderID, nil
}

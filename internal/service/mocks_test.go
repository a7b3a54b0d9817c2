package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"github.com/rlwai/shop-api/internal/database"
	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/repository"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindEnabledByLogin(ctx context.Context, login string) (*model.Customer, error) {
	args := m.Called(ctx, login)
	customer, _ := args.Get(0).(*model.Customer)
	return customer, args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) List(ctx context.Context, params model.ProductListParams) ([]model.ProductListItem, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]model.ProductListItem)
	return items, args.Error(1)
}

func (m *mockProductRepo) FindActiveByID(ctx context.Context, id int64, currency, lang string) (*model.ProductDetail, error) {
	args := m.Called(ctx, id, currency, lang)
	product, _ := args.Get(0).(*model.ProductDetail)
	return product, args.Error(1)
}

func (m *mockProductRepo) FindPrice(ctx context.Context, productID int64, currency string) (*float64, error) {
	args := m.Called(ctx, productID, currency)
	price, _ := args.Get(0).(*float64)
	return price, args.Error(1)
}

func (m *mockProductRepo) WithTx(tx *sqlx.Tx) repository.ProductRepository {
	return m
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) FindByCustomerID(ctx context.Context, customerID int64, currency, lang string) ([]model.CartItem, error) {
	args := m.Called(ctx, customerID, currency, lang)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepo) FindByIDForCustomer(ctx context.Context, id, customerID int64) (*model.Order, error) {
	args := m.Called(ctx, id, customerID)
	order, _ := args.Get(0).(*model.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepo) FindItems(ctx context.Context, orderID int64, lang string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID, lang)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *mockOrderRepo) Create(ctx context.Context, customerID int64, status model.OrderStatus) (int64, error) {
	args := m.Called(ctx, customerID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) CreateItem(ctx context.Context, params model.CreateOrderItemParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *mockOrderRepo) UpdateTotal(ctx context.Context, id int64, total float64) error {
	return m.Called(ctx, id, total).Error(0)
}

func (m *mockOrderRepo) WithTx(tx *sqlx.Tx) repository.OrderRepository {
	return m
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) FindLanguages(ctx context.Context) ([]model.Language, error) {
	args := m.Called(ctx)
	languages, _ := args.Get(0).([]model.Language)
	return languages, args.Error(1)
}

func (m *mockCatalogRepo) FindCurrencies(ctx context.Context, lang string) ([]model.Currency, error) {
	args := m.Called(ctx, lang)
	currencies, _ := args.Get(0).([]model.Currency)
	return currencies, args.Error(1)
}

func (m *mockCatalogRepo) FindCategories(ctx context.Context, lang string) ([]model.Category, error) {
	args := m.Called(ctx, lang)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

// fakeTx runs fn without a real transaction and records the outcome.
type fakeTx struct {
	calls      int
	rolledBack bool
}

func (f *fakeTx) WithTx(ctx context.Context, fn database.TxFunc) error {
	f.calls++
	if err := fn(nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

// stubImages answers from a fixed map and records requested keys.
type stubImages struct {
	paths     map[model.ImageKey]string
	requested [][]model.ImageKey
}

func (s *stubImages) Resolve(_ context.Context, keys []model.ImageKey) map[model.ImageKey]string {
	s.requested = append(s.requested, keys)
	out := make(map[model.ImageKey]string, len(keys))
	for _, key := range keys {
		out[key] = s.paths[key]
	}
	return out
}

func testImageURL(path string) string {
	if path == "" {
		return ""
	}
	return "/images/" + path
}

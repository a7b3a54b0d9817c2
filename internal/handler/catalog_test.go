package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/service"
)

type fakeCatalog struct {
	lang string
	err  error
}

func (f *fakeCatalog) Languages(context.Context) ([]model.Language, error) {
	return []model.Language{{Code: "ua", Title: "Українська"}, {Code: "en", Title: "English"}}, f.err
}

func (f *fakeCatalog) Currencies(_ context.Context, lang string) ([]model.Currency, error) {
	f.lang = lang
	return []model.Currency{{Code: "uah"}}, f.err
}

func (f *fakeCatalog) Categories(_ context.Context, lang string) ([]model.Category, error) {
	f.lang = lang
	return []model.Category{}, f.err
}

type fakeCartReader struct {
	customerID int64
}

func (f *fakeCartReader) Get(_ context.Context, customerID int64, _, _ string) (*service.CartView, error) {
	f.customerID = customerID
	return &service.CartView{Count: 0, Products: []service.CartItemView{}}, nil
}

func TestCatalogHandler(t *testing.T) {
	t.Run("languages", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewCatalogHandler(&fakeCatalog{}).Languages(rec, httptest.NewRequest("GET", "/languages", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(2), body["count"])
		assert.Len(t, body["languages"], 2)
	})

	t.Run("currencies pass lang", func(t *testing.T) {
		catalog := &fakeCatalog{}
		rec := httptest.NewRecorder()
		NewCatalogHandler(catalog).Currencies(rec, httptest.NewRequest("GET", "/currencies?lang=pl", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pl", catalog.lang)
	})

	t.Run("empty categories encode as list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewCatalogHandler(&fakeCatalog{}).Categories(rec, httptest.NewRequest("GET", "/categories", nil))

		body := decodeBody(t, rec)
		assert.Equal(t, []any{}, body["categories"])
	})

	t.Run("failure is 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewCatalogHandler(&fakeCatalog{err: errors.New("down")}).Categories(rec, httptest.NewRequest("GET", "/categories", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCartHandler(t *testing.T) {
	reader := &fakeCartReader{}
	rec := httptest.NewRecorder()
	NewCartHandler(reader).Get(rec, asCustomer(httptest.NewRequest("GET", "/cart", nil), 42))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), reader.customerID)
}

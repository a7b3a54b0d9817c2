package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/model"
)

func TestProductQuery_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		in    ProductQuery
		want  ProductQuery
		isErr bool
	}{
		{
			name: "defaults for unknown enums",
			in:   ProductQuery{Start: 0, Limit: 50, Currency: "btc", Language: "de"},
			want: ProductQuery{Start: 0, Limit: 50, Currency: "uah", Language: "ua"},
		},
		{
			name: "clamps paging",
			in:   ProductQuery{Start: -5, Limit: 1000, Currency: "USD", Language: "EN"},
			want: ProductQuery{Start: 0, Limit: 250, Currency: "usd", Language: "en"},
		},
		{
			name: "limit at least one",
			in:   ProductQuery{Limit: 0},
			want: ProductQuery{Limit: 1, Currency: "uah", Language: "ua"},
		},
		{
			name: "category is lower-cased",
			in:   ProductQuery{Limit: 10, Category: "  Cat_Profile "},
			want: ProductQuery{Limit: 10, Category: "cat_profile", Currency: "uah", Language: "ua"},
		},
		{
			name:  "category too long",
			in:    ProductQuery{Limit: 10, Category: strings.Repeat("x", 51)},
			isErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if tt.isErr {
				assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductService_List(t *testing.T) {
	category := "cat_profile"
	title := "Profile"
	repo := &mockProductRepo{}
	repo.On("List", mock.Anything, model.ProductListParams{
		Currency: "pln", Language: "pl", Category: "cat_profile", Limit: 2, Offset: 4,
	}).Return([]model.ProductListItem{
		{ID: 1, Code: "P1", Category: &category, Title: &title, Price: 2.5, Quantity: 3, IsVariative: true},
		{ID: 2, Code: "P2", Price: 1},
	}, nil)

	images := &stubImages{paths: map[model.ImageKey]string{{ProductCode: "P1"}: "P1_10.jpg"}}
	svc := NewProductService(repo, images, testImageURL)

	result, err := svc.List(context.Background(), ProductQuery{
		Start: 4, Limit: 2, Category: "cat_profile", Currency: "pln", Language: "pl",
	})
	require.NoError(t, err)

	assert.Equal(t, "pln", result.Currency)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 4, result.Start)
	assert.Equal(t, 2, result.Limit)
	require.Len(t, result.Products, 2)

	first := result.Products[0]
	assert.Equal(t, "/images/P1_10.jpg", first.Image)
	assert.Equal(t, "cat_profile", first.Category)
	assert.Equal(t, "Profile", first.Title)
	assert.True(t, first.IsVariative)

	second := result.Products[1]
	assert.Equal(t, "", second.Image)
	assert.Equal(t, "", second.Title)

	require.Len(t, images.requested, 1)
	assert.Equal(t, []model.ImageKey{{ProductCode: "P1"}, {ProductCode: "P2"}}, images.requested[0])
}

func TestProductService_ListRepoError(t *testing.T) {
	repo := &mockProductRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	svc := NewProductService(repo, &stubImages{}, testImageURL)

	_, err := svc.List(context.Background(), ProductQuery{Limit: 10})
	assert.Error(t, err)
}

func TestProductService_Get(t *testing.T) {
	updated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	product := &model.ProductDetail{ID: 9, Code: "P9", IsActive: true, Price: 10, Quantity: 1, UpdatedAt: &updated}

	t.Run("base product", func(t *testing.T) {
		repo := &mockProductRepo{}
		repo.On("FindActiveByID", mock.Anything, int64(9), "uah", "ua").Return(product, nil)
		images := &stubImages{paths: map[model.ImageKey]string{{ProductCode: "P9"}: "P9_1.png"}}
		svc := NewProductService(repo, images, testImageURL)

		view, err := svc.Get(context.Background(), 9, "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "/images/P9_1.png", view.Image)
		assert.Equal(t, []string{"/images/P9_1.png"}, view.Images)
		assert.Equal(t, "2025-01-02T03:04:05Z", *view.UpdatedAt)
		assert.Empty(t, view.VariantCode)
		assert.Equal(t, [][]model.ImageKey{{{ProductCode: "P9"}}}, images.requested)
	})

	t.Run("variant image preferred", func(t *testing.T) {
		repo := &mockProductRepo{}
		repo.On("FindActiveByID", mock.Anything, int64(9), "eur", "en").Return(product, nil)
		images := &stubImages{paths: map[model.ImageKey]string{
			{ProductCode: "P9"}:                     "P9_1.png",
			{ProductCode: "P9", VariantCode: "RED"}: "P9_RED_2.png",
		}}
		svc := NewProductService(repo, images, testImageURL)

		view, err := svc.Get(context.Background(), 9, "RED", "eur", "en")
		require.NoError(t, err)
		assert.Equal(t, "/images/P9_RED_2.png", view.Image)
		assert.Equal(t, []string{"/images/P9_1.png", "/images/P9_RED_2.png"}, view.Images)
		assert.Equal(t, "RED", view.VariantCode)
	})

	t.Run("variant falls back to base image", func(t *testing.T) {
		repo := &mockProductRepo{}
		repo.On("FindActiveByID", mock.Anything, int64(9), "uah", "ua").Return(product, nil)
		images := &stubImages{paths: map[model.ImageKey]string{{ProductCode: "P9"}: "P9_1.png"}}
		svc := NewProductService(repo, images, testImageURL)

		view, err := svc.Get(context.Background(), 9, "BLUE", "", "")
		require.NoError(t, err)
		assert.Equal(t, "/images/P9_1.png", view.Image)
		assert.Equal(t, []string{"/images/P9_1.png"}, view.Images)
	})

	t.Run("no images at all", func(t *testing.T) {
		repo := &mockProductRepo{}
		repo.On("FindActiveByID", mock.Anything, int64(9), "uah", "ua").Return(product, nil)
		svc := NewProductService(repo, &stubImages{}, testImageURL)

		view, err := svc.Get(context.Background(), 9, "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "", view.Image)
		assert.NotNil(t, view.Images)
		assert.Empty(t, view.Images)
	})

	t.Run("missing product", func(t *testing.T) {
		repo := &mockProductRepo{}
		repo.On("FindActiveByID", mock.Anything, int64(404), "uah", "ua").Return(nil, nil)
		images := &stubImages{}
		svc := NewProductService(repo, images, testImageURL)

		_, err := svc.Get(context.Background(), 404, "", "", "")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
		assert.Empty(t, images.requested)
	})
}

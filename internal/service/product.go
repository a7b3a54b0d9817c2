package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rlwai/shop-api/internal/config"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/repository"
)

// ImageSource resolves image keys to stored file paths.
type ImageSource interface {
	Resolve(ctx context.Context, keys []model.ImageKey) map[model.ImageKey]string
}

// ImageURLFunc maps a stored file path to its public URL.
type ImageURLFunc func(path string) string

type ProductQuery struct {
	Start    int
	Limit    int
	Category string
	Currency string
	Language string
}

type ProductView struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	Measure     string  `json:"measure"`
	IsVariative bool    `json:"is_variative"`
}

type ProductListResult struct {
	Currency string        `json:"currency"`
	Count    int           `json:"count"`
	Start    int           `json:"start"`
	Limit    int           `json:"limit"`
	Products []ProductView `json:"products"`
}

type ProductDetailView struct {
	ID          int64    `json:"id"`
	ProductCode string   `json:"product_code"`
	CategoryID  *int64   `json:"category_id"`
	Category    *string  `json:"category"`
	Active      bool     `json:"active"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	UpdatedAt   *string  `json:"updated_at"`
	VariantCode string   `json:"subprod_code,omitempty"`
}

type ProductService struct {
	productRepo repository.ProductRepository
	images      ImageSource
	imageURL    ImageURLFunc
}

func NewProductService(productRepo repository.ProductRepository, images ImageSource, imageURL ImageURLFunc) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		images:      images,
		imageURL:    imageURL,
	}
}

// Normalize clamps paging and falls back to default language and currency.
func (q ProductQuery) Normalize() (ProductQuery, error) {
	if q.Start < 0 {
		q.Start = 0
	}
	if q.Limit <= 0 {
		q.Limit = 1
	}
	if q.Limit > config.MaxPageLimit {
		q.Limit = config.MaxPageLimit
	}

	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	if len(q.Category) > config.MaxCategoryLength {
		return q, apperrors.InvalidInput("category", "too long")
	}

	q.Currency = NormalizeCurrency(q.Currency)
	q.Language = NormalizeLanguage(q.Language)
	return q, nil
}

func (s *ProductService) List(ctx context.Context, query ProductQuery) (*ProductListResult, error) {
	query, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	items, err := s.productRepo.List(ctx, model.ProductListParams{
		Currency: query.Currency,
		Language: query.Language,
		Category: query.Category,
		Limit:    query.Limit,
		Offset:   query.Start,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	keys := make([]model.ImageKey, len(items))
	for i, item := range items {
		keys[i] = model.ImageKey{ProductCode: item.Code}
	}
	paths := s.images.Resolve(ctx, keys)

	products := make([]ProductView, len(items))
	for i, item := range items {
		products[i] = ProductView{
			ID:          item.ID,
			Category:    derefOr(item.Category, ""),
			Title:       derefOr(item.Title, ""),
			Description: derefOr(item.Description, ""),
			Price:       item.Price,
			Quantity:    item.Quantity,
			Image:       s.imageURL(paths[keys[i]]),
			IsVariative: item.IsVariative,
		}
	}

	return &ProductListResult{
		Currency: query.Currency,
		Count:    len(products),
		Start:    query.Start,
		Limit:    query.Limit,
		Products: products,
	}, nil
}

// Get returns an active product. With a variant code the variant image is
// preferred and the base image is used as fallback.
func (s *ProductService) Get(ctx context.Context, id int64, variantCode, currency, lang string) (*ProductDetailView, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id, NormalizeCurrency(currency), NormalizeLanguage(lang))
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product")
	}

	baseKey := model.ImageKey{ProductCode: product.Code}
	mainKey := model.ImageKey{ProductCode: product.Code, VariantCode: variantCode}
	keys := []model.ImageKey{mainKey}
	if mainKey.HasVariant() {
		keys = append(keys, baseKey)
	}
	paths := s.images.Resolve(ctx, keys)

	mainImage := paths[mainKey]
	if mainImage == "" {
		mainImage = paths[baseKey]
	}

	images := []string{}
	if p := paths[baseKey]; p != "" {
		images = append(images, s.imageURL(p))
	}
	if mainKey.HasVariant() && paths[mainKey] != "" {
		images = append(images, s.imageURL(paths[mainKey]))
	}

	view := &ProductDetailView{
		ID:          product.ID,
		ProductCode: product.Code,
		CategoryID:  product.CategoryID,
		Category:    product.Category,
		Active:      product.IsActive,
		Title:       derefOr(product.Title, ""),
		Description: derefOr(product.Description, ""),
		Price:       product.Price,
		Quantity:    product.Quantity,
		Image:       s.imageURL(mainImage),
		Images:      images,
		VariantCode: variantCode,
	}
	if product.UpdatedAt != nil {
		updated := product.UpdatedAt.Format(time.RFC3339)
		view.UpdatedAt = &updated
	}
	return view, nil
}

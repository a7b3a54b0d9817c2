package service

import (
	"context"
	"fmt"

	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/repository"
)

type CartItemView struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Title    string  `json:"title"`
	Image    string  `json:"image"`
	Measure  string  `json:"measure"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Summ     float64 `json:"summ"`
}

type CartView struct {
	Count    int            `json:"count"`
	Total    float64        `json:"total"`
	Products []CartItemView `json:"products"`
}

type CartService struct {
	cartRepo repository.CartRepository
	images   ImageSource
	imageURL ImageURLFunc
}

func NewCartService(cartRepo repository.CartRepository, images ImageSource, imageURL ImageURLFunc) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		images:   images,
		imageURL: imageURL,
	}
}

func (s *CartService) Get(ctx context.Context, customerID int64, currency, lang string) (*CartView, error) {
	items, err := s.cartRepo.FindByCustomerID(ctx, customerID, NormalizeCurrency(currency), NormalizeLanguage(lang))
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}

	keys := make([]model.ImageKey, len(items))
	for i, item := range items {
		keys[i] = model.ImageKey{ProductCode: item.ProductCode}
	}
	paths := s.images.Resolve(ctx, keys)

	view := &CartView{
		Count:    len(items),
		Products: make([]CartItemView, len(items)),
	}
	for i, item := range items {
		view.Products[i] = CartItemView{
			ID:       item.ProductID,
			Category: derefOr(item.Category, ""),
			Title:    derefOr(item.Title, ""),
			Image:    s.imageURL(paths[keys[i]]),
			Measure:  model.DefaultMeasure,
			Quantity: item.Quantity,
			Price:    item.Price,
			Summ:     item.Summ,
		}
		view.Total += item.Summ
	}
	return view, nil
}

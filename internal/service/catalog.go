package service

import (
	"context"
	"fmt"

	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/repository"
)

type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) Languages(ctx context.Context) ([]model.Language, error) {
	languages, err := s.catalogRepo.FindLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("find languages: %w", err)
	}
	return nonNil(languages), nil
}

func (s *CatalogService) Currencies(ctx context.Context, lang string) ([]model.Currency, error) {
	currencies, err := s.catalogRepo.FindCurrencies(ctx, NormalizeLanguage(lang))
	if err != nil {
		return nil, fmt.Errorf("find currencies: %w", err)
	}
	return nonNil(currencies), nil
}

func (s *CatalogService) Categories(ctx context.Context, lang string) ([]model.Category, error) {
	categories, err := s.catalogRepo.FindCategories(ctx, NormalizeLanguage(lang))
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return nonNil(categories), nil
}

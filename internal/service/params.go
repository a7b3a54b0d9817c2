package service

import (
	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/util"
)

// NormalizeLanguage falls back to the default language for unknown values.
func NormalizeLanguage(lang string) string {
	return util.NormalizeEnum(lang, model.Languages, model.DefaultLanguage)
}

func NormalizeCurrency(currency string) string {
	return util.NormalizeEnum(currency, model.Currencies, model.DefaultCurrency)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

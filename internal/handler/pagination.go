package handler

import (
	"net/http"
	"strconv"

	"github.com/rlwai/shop-api/internal/config"
	apperrors "github.com/rlwai/shop-api/internal/errors"
)

type PaginationParams struct {
	Start int
	Limit int
}

// ParsePagination reads start and limit. Missing values take defaults;
// values that are not integers are rejected. Clamping happens in the service.
func ParsePagination(r *http.Request) (PaginationParams, error) {
	params := PaginationParams{Start: 0, Limit: config.DefaultPageLimit}
	query := r.URL.Query()

	if raw := query.Get("start"); raw != "" {
		start, err := strconv.Atoi(raw)
		if err != nil {
			return params, apperrors.ValidationError("Invalid start or limit")
		}
		params.Start = start
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, apperrors.ValidationError("Invalid start or limit")
		}
		params.Limit = limit
	}

	return params, nil
}

package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
	"github.com/rlwai/shop-api/internal/service"
)

type ProductReader interface {
	List(ctx context.Context, query service.ProductQuery) (*service.ProductListResult, error)
	Get(ctx context.Context, id int64, variantCode, currency, lang string) (*service.ProductDetailView, error)
}

type ProductHandler struct {
	products ProductReader
}

func NewProductHandler(products ProductReader) *ProductHandler {
	return &ProductHandler{products: products}
}

// GET /products?start=&limit=&category=&currency=&lang=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePagination(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	query := r.URL.Query()
	result, err := h.products.List(r.Context(), service.ProductQuery{
		Start:    page.Start,
		Limit:    page.Limit,
		Category: query.Get("category"),
		Currency: query.Get("currency"),
		Language: query.Get("lang"),
	})
	if err != nil {
		writeError(w, r, err, "failed to list products")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GET /products/{ref} where ref is "123" or "123|VARIANT"
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref, err := url.PathUnescape(chi.URLParam(r, "ref"))
	if err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Invalid product identifier"))
		return
	}

	id, variant, ok := ParseProductRef(ref)
	if !ok {
		httputil.WriteError(w, apperrors.ValidationError("Invalid product identifier"))
		return
	}

	query := r.URL.Query()
	product, err := h.products.Get(r.Context(), id, variant, query.Get("currency"), query.Get("lang"))
	if err != nil {
		writeError(w, r, err, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ParseProductRef splits "123|VAR" into id and variant code.
func ParseProductRef(ref string) (id int64, variant string, ok bool) {
	idPart, variantPart, _ := strings.Cut(strings.TrimSpace(ref), "|")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, strings.TrimSpace(variantPart), true
}

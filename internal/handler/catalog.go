package handler

import (
	"context"
	"net/http"

	"github.com/rlwai/shop-api/internal/model"
)

type CatalogReader interface {
	Languages(ctx context.Context) ([]model.Language, error)
	Currencies(ctx context.Context, lang string) ([]model.Currency, error)
	Categories(ctx context.Context, lang string) ([]model.Category, error)
}

type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /languages
func (h *CatalogHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.catalog.Languages(r.Context())
	if err != nil {
		writeError(w, r, err, "failed to list languages")
		return
	}
	writeJSON(w, http.StatusOK, listResponse("languages", len(languages), languages))
}

// GET /currencies?lang=
func (h *CatalogHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.catalog.Currencies(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, r, err, "failed to list currencies")
		return
	}
	writeJSON(w, http.StatusOK, listResponse("currencies", len(currencies), currencies))
}

// GET /categories?lang=
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, r, err, "failed to list categories")
		return
	}
	writeJSON(w, http.StatusOK, listResponse("categories", len(categories), categories))
}

package handler

import (
	"context"
	"net/http"

	"github.com/rlwai/shop-api/internal/middleware"
	"github.com/rlwai/shop-api/internal/service"
)

type CartReader interface {
	Get(ctx context.Context, customerID int64, currency, lang string) (*service.CartView, error)
}

type CartHandler struct {
	carts CartReader
}

func NewCartHandler(carts CartReader) *CartHandler {
	return &CartHandler{carts: carts}
}

// GET /cart?currency=&lang=
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	query := r.URL.Query()

	cart, err := h.carts.Get(r.Context(), identity.UserID, query.Get("currency"), query.Get("lang"))
	if err != nil {
		writeError(w, r, err, "failed to get cart")
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

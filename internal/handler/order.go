package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rlwai/shop-api/internal/audit"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
	"github.com/rlwai/shop-api/internal/middleware"
	"github.com/rlwai/shop-api/internal/model"
	"github.com/rlwai/shop-api/internal/service"
)

type OrderManager interface {
	List(ctx context.Context, customerID int64) ([]model.Order, error)
	Get(ctx context.Context, id, customerID int64, lang string) (*service.OrderDetail, error)
	Create(ctx context.Context, customerID int64, input service.CreateOrderInput) (int64, error)
}

type OrderHandler struct {
	orders OrderManager
}

func NewOrderHandler(orders OrderManager) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/new", h.Create)
	r.Get("/{orderID}", h.Get)

	return r
}

// GET /orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	orders, err := h.orders.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err, "failed to list orders")
		return
	}

	writeJSON(w, http.StatusOK, listResponse("orders", len(orders), orders))
}

// GET /orders/{orderID}?lang=
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("order_id", "must be an integer"))
		return
	}

	identity := middleware.GetIdentity(r.Context())
	order, err := h.orders.Get(r.Context(), id, identity.UserID, r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, r, err, "failed to get order")
		return
	}

	writeJSON(w, http.StatusOK, listResponse("orders", 1, []*service.OrderDetail{order}))
}

// POST /orders/new
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Missing data"))
		return
	}

	identity := middleware.GetIdentity(r.Context())
	orderID, err := h.orders.Create(r.Context(), identity.UserID, input)
	if err != nil {
		writeError(w, r, err, "failed to create order")
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventOrderCreate,
		UserID:  strconv.FormatInt(identity.UserID, 10),
		Details: map[string]interface{}{"order_id": orderID},
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

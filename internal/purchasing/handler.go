package purchasing

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/toriyu-water/toriyu-pos/internal/auth"
	"github.com/toriyu-water/toriyu-pos/internal/catalog"
	"github.com/toriyu-water/toriyu-pos/internal/platform/httpx"
	"github.com/toriyu-water/toriyu-pos/internal/shared"
)

// Handler manages purchase order endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	authmw    auth.Middleware
}

// NewHandler builds a purchasing Handler.
func NewHandler(logger *slog.Logger, service *Service, authmw auth.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		authmw:    authmw,
	}
}

// MountRoutes registers purchasing routes. Recording purchases is admin only,
// resellers can still review the history.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authmw.RequireUser)
		r.Get("/", h.list)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authmw.RequireRole(auth.RoleAdmin))
		r.Post("/", h.create)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	order, err := h.service.CreateOrder(r.Context(), shared.UserIDFromContext(r.Context()), req)
	if err != nil {
		h.logger.Error("create purchase order", slog.Any("error", err))
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	req := ListOrdersRequest{
		ProductID: r.URL.Query().Get("product_id"),
		Page:      page,
		PerPage:   perPage,
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			req.From = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			req.To = &t
		}
	}

	orders, total, err := h.service.ListOrders(r.Context(), req)
	if err != nil {
		h.logger.Error("list purchase orders", slog.Any("error", err))
		h.respondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"orders":     orders,
		"pagination": shared.NewPagination(req.Page, req.PerPage, total),
	})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidProduct), errors.Is(err, catalog.ErrInvalidQuantity):
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	default:
		httpx.RespondError(w, err)
	}
}

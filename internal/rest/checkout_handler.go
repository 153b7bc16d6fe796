package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fjod/go_techstore/internal/checkout"
	"github.com/fjod/go_techstore/internal/schedule"
	"github.com/fjod/go_techstore/internal/session"
)

// RecordPublisher forwards finished records to the record service. It is
// optional: the storefront persists locally and only publishes when
// explicitly configured to.
type RecordPublisher interface {
	CreateOrder(ctx context.Context, order checkout.Order) (string, error)
	CreateAppointment(ctx context.Context, appt schedule.Appointment) (string, error)
}

type CheckoutHandler struct {
	session   *session.Session
	publisher RecordPublisher // nil when publishing is disabled
}

func NewCheckoutHandler(s *session.Session, publisher RecordPublisher) *CheckoutHandler {
	return &CheckoutHandler{session: s, publisher: publisher}
}

type CheckoutRequestDTO struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	buyer := checkout.Buyer{
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		PaymentMethod: checkout.PaymentMethod(req.PaymentMethod),
	}
	if buyer.PaymentMethod == "" {
		buyer.PaymentMethod = checkout.PaymentCard
	}

	order, err := h.session.Checkout(r.Context(), buyer)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusConflict, "empty_cart", err.Error())
		case errors.Is(err, checkout.ErrMissingBuyerField), errors.Is(err, checkout.ErrInvalidPaymentMethod):
			respondError(w, http.StatusBadRequest, "invalid_buyer", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}

	slog.InfoContext(r.Context(), "order confirmed", "order_id", order.ID, "total", order.Total)
	h.publishOrder(r.Context(), order)

	respondJSON(w, http.StatusCreated, order)
}

// GET /api/v1/orders
func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Orders())
}

// publishOrder forwards the order best-effort in the background. Failures
// are logged and never retried.
func (h *CheckoutHandler) publishOrder(ctx context.Context, order checkout.Order) {
	if h.publisher == nil {
		return
	}
	// Detach from the request context so the response is not held up.
	ctx = context.WithoutCancel(ctx)
	go func() {
		if _, err := h.publisher.CreateOrder(ctx, order); err != nil {
			slog.WarnContext(ctx, "order publish failed", "order_id", order.ID, "error", err)
		}
	}()
}

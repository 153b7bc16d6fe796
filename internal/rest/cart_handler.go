package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_techstore/internal/cart"
	"github.com/fjod/go_techstore/internal/session"
)

type CartHandler struct {
	session *session.Session
}

func NewCartHandler(s *session.Session) *CartHandler {
	return &CartHandler{session: s}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponseDTO struct {
	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	if err := h.session.AddToCart(r.Context(), req.ProductID); err != nil {
		if errors.Is(err, session.ErrUnknownProduct) {
			respondError(w, http.StatusNotFound, "product_not_found", "unknown product id")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, h.cartResponse())
}

// PATCH /api/v1/cart/items/{product_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be non-zero")
		return
	}

	h.session.SetQty(r.Context(), productID, req.Delta)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	h.session.RemoveFromCart(r.Context(), productID)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	return CartResponseDTO{
		Items: h.session.CartLines(),
		Total: h.session.CartTotal(),
		Count: h.session.CartCount(),
	}
}

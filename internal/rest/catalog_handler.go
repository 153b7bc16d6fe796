package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_techstore/internal/catalog"
	"github.com/fjod/go_techstore/internal/session"
)

type CatalogHandler struct {
	session *session.Session
}

func NewCatalogHandler(s *session.Session) *CatalogHandler {
	return &CatalogHandler{session: s}
}

// GET /api/v1/catalog?category=&q=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(r.URL.Query().Get("category"))
	query := r.URL.Query().Get("q")

	respondJSON(w, http.StatusOK, h.session.Products(category, query))
}

// GET /api/v1/catalog/{product_id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	p, ok := h.session.Product(id)
	if !ok {
		respondError(w, http.StatusNotFound, "product_not_found", "unknown product id")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

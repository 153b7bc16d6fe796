package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fjod/go_techstore/internal/session"
)

// NewRouter builds the storefront API surface on top of a single session.
func NewRouter(s *session.Session, publisher RecordPublisher, requestTimeout time.Duration) http.Handler {
	catalogHandler := NewCatalogHandler(s)
	cartHandler := NewCartHandler(s)
	checkoutHandler := NewCheckoutHandler(s, publisher)
	scheduleHandler := NewScheduleHandler(s, publisher)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Get("/{product_id}", catalogHandler.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.Checkout)
		r.Get("/orders", checkoutHandler.ListOrders)

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/slots", scheduleHandler.Slots)
			r.Get("/issues", scheduleHandler.Issues)
			r.Get("/draft", scheduleHandler.GetDraft)
			r.Put("/draft", scheduleHandler.UpdateDraft)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", scheduleHandler.ListAppointments)
			r.Post("/", scheduleHandler.CreateAppointment)
			r.Delete("/{appointment_id}", scheduleHandler.CancelAppointment)
		})
	})

	return r
}

// Package session owns the storefront state for one client session: the
// cart, the order history, the appointment history and the scheduling draft.
// Every mutation is persisted immediately under its own dedicated key;
// persistence is best-effort and storage failures are never surfaced.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/fjod/go_techstore/internal/cart"
	"github.com/fjod/go_techstore/internal/catalog"
	"github.com/fjod/go_techstore/internal/checkout"
	"github.com/fjod/go_techstore/internal/ids"
	"github.com/fjod/go_techstore/internal/schedule"
	"github.com/fjod/go_techstore/internal/storage"
)

// Persisted-state keys, one per collection. No schema version: a format
// change falls back to the default value on load.
const (
	KeyCart         = "ts_cart"
	KeyOrders       = "ts_orders"
	KeyAppointments = "ts_appts"
	KeyDraft        = "ts_schedule_draft"
)

var ErrUnknownProduct = errors.New("unknown product")

type Session struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	store   storage.Store
	gen     ids.Generator
	now     func() time.Time

	cart         *cart.Cart
	orders       []checkout.Order
	appointments []schedule.Appointment
	draft        schedule.Form
}

type Option func(*Session)

// WithIDGenerator replaces the default random generator.
func WithIDGenerator(gen ids.Generator) Option {
	return func(s *Session) { s.gen = gen }
}

// WithClock replaces the wall clock used for order timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New restores a session from the store. Missing or corrupt state silently
// falls back to the empty defaults.
func New(ctx context.Context, cat *catalog.Catalog, store storage.Store, opts ...Option) *Session {
	s := &Session{
		catalog: cat,
		store:   store,
		gen:     ids.NewRandGenerator(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cart = cart.New(loadJSON[[]cart.Line](ctx, store, KeyCart, nil))
	s.orders = loadJSON[[]checkout.Order](ctx, store, KeyOrders, nil)
	s.appointments = loadJSON[[]schedule.Appointment](ctx, store, KeyAppointments, nil)
	s.draft = loadJSON[schedule.Form](ctx, store, KeyDraft, schedule.DefaultForm())
	return s
}

// Products filters the catalog by category and free-text query.
func (s *Session) Products(category catalog.Category, query string) []catalog.Product {
	return s.catalog.Filter(category, query)
}

func (s *Session) Product(id string) (catalog.Product, bool) {
	return s.catalog.Get(id)
}

// AddToCart merges the product into the cart and persists the result.
func (s *Session) AddToCart(ctx context.Context, productID string) error {
	p, ok := s.catalog.Get(productID)
	if !ok {
		return ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
	s.saveCart(ctx)
	return nil
}

// SetQty applies a quantity delta to a cart line, flooring at one.
func (s *Session) SetQty(ctx context.Context, productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQty(productID, delta)
	s.saveCart(ctx)
}

// RemoveFromCart deletes a cart line, no-op if absent.
func (s *Session) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.saveCart(ctx)
}

func (s *Session) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// Checkout confirms the cart into a new Order, prepends it to the order
// history (most-recent-first) and empties the cart. Cart and history are
// untouched when the preconditions fail.
func (s *Session) Checkout(ctx context.Context, buyer checkout.Buyer) (checkout.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := checkout.Confirm(s.cart, buyer, s.gen, s.now())
	if err != nil {
		return checkout.Order{}, err
	}

	s.orders = append([]checkout.Order{order}, s.orders...)
	s.saveCart(ctx)
	saveJSON(ctx, s.store, KeyOrders, s.orders)
	return order, nil
}

func (s *Session) Orders() []checkout.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]checkout.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Schedule creates an appointment from a complete form and prepends it to
// the appointment history.
func (s *Session) Schedule(ctx context.Context, form schedule.Form) (schedule.Appointment, error) {
	appt, err := schedule.New(form, s.gen)
	if err != nil {
		return schedule.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append([]schedule.Appointment{appt}, s.appointments...)
	saveJSON(ctx, s.store, KeyAppointments, s.appointments)
	return appt, nil
}

// CancelAppointment removes the appointment with the given id, no-op if absent.
func (s *Session) CancelAppointment(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			break
		}
	}
	saveJSON(ctx, s.store, KeyAppointments, s.appointments)
}

func (s *Session) Appointments() []schedule.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schedule.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Session) Draft() schedule.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// UpdateDraft replaces the in-progress scheduling form and persists it.
func (s *Session) UpdateDraft(ctx context.Context, form schedule.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = form
	saveJSON(ctx, s.store, KeyDraft, s.draft)
}

// saveCart persists the cart lines, callers hold the lock.
func (s *Session) saveCart(ctx context.Context) {
	saveJSON(ctx, s.store, KeyCart, s.cart.Lines())
}

// loadJSON returns the stored value for key or def when the key is absent or
// the stored data does not deserialize.
func loadJSON[T any](ctx context.Context, store storage.Store, key string, def T) T {
	data, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.DebugContext(ctx, "state load failed, using default", "key", key, "error", err)
		}
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.DebugContext(ctx, "corrupt state, using default", "key", key, "error", err)
		return def
	}
	return v
}

// saveJSON persists best-effort: failures are logged and swallowed.
func saveJSON(ctx context.Context, store storage.Store, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.WarnContext(ctx, "state marshal failed", "key", key, "error", err)
		return
	}
	if err := store.Save(ctx, key, data); err != nil {
		slog.WarnContext(ctx, "state save failed", "key", key, "error", err)
	}
}

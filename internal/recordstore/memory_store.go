package recordstore

import "sync"

// MemoryStore implements Store with in-process slices.
type MemoryStore struct {
	mu           sync.RWMutex
	orders       []Record
	appointments []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateOrder(r Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]Record{r}, s.orders...)
	return r.ID
}

func (s *MemoryStore) CreateAppointment(r Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append([]Record{r}, s.appointments...)
	return r.ID
}

func (s *MemoryStore) ListOrders() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *MemoryStore) ListAppointments() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.appointments))
	copy(out, s.appointments)
	return out
}

package recordstore

import "encoding/json"

// Record is a client-supplied JSON document plus whatever id it carried.
// No schema is enforced and duplicate ids coexist.
type Record struct {
	ID   string
	Body json.RawMessage
}

// Store holds two independent append-only collections, reset on restart.
// All operations are total: there are no error conditions.
type Store interface {
	// CreateOrder prepends the record to the orders collection and returns
	// its id.
	CreateOrder(r Record) string

	// CreateAppointment prepends the record to the appointments collection
	// and returns its id.
	CreateAppointment(r Record) string

	// ListOrders returns the orders collection, most-recently-created first.
	ListOrders() []Record

	// ListAppointments returns the appointments collection,
	// most-recently-created first.
	ListAppointments() []Record
}

package recordhttp

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/fjod/go_techstore/internal/recordstore"
)

// Handler serves the record endpoints. Records are appended unconditionally:
// no schema validation, no duplicate-id detection.
type Handler struct {
	store recordstore.Store
}

func NewHandler(store recordstore.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	id := h.store.CreateOrder(rec)
	slog.InfoContext(r.Context(), "order record created", "id", id)
	respondJSON(w, http.StatusOK, CreateResponse{OK: true, ID: id})
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	id := h.store.CreateAppointment(rec)
	slog.InfoContext(r.Context(), "appointment record created", "id", id)
	respondJSON(w, http.StatusOK, CreateResponse{OK: true, ID: id})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rawBodies(h.store.ListOrders()))
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rawBodies(h.store.ListAppointments()))
}

// decodeRecord reads the request body and extracts the client-supplied id.
// Only well-formed JSON is required, the body is stored as-is otherwise.
func decodeRecord(w http.ResponseWriter, r *http.Request) (recordstore.Record, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to read body")
		return recordstore.Record{}, false
	}

	var idOnly struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &idOnly); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "body must be a JSON object")
		return recordstore.Record{}, false
	}

	return recordstore.Record{ID: idOnly.ID, Body: body}, true
}

func rawBodies(records []recordstore.Record) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		out = append(out, r.Body)
	}
	return out
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

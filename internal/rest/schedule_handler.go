package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_techstore/internal/schedule"
	"github.com/fjod/go_techstore/internal/session"
)

type ScheduleHandler struct {
	session   *session.Session
	publisher RecordPublisher // nil when publishing is disabled
}

func NewScheduleHandler(s *session.Session, publisher RecordPublisher) *ScheduleHandler {
	return &ScheduleHandler{session: s, publisher: publisher}
}

type SlotsResponseDTO struct {
	Slots []string `json:"slots"`
}

type IssuesResponseDTO struct {
	Type   schedule.EquipmentType `json:"type"`
	Issues []string               `json:"issues"`
}

// GET /api/v1/schedule/slots
func (h *ScheduleHandler) Slots(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SlotsResponseDTO{Slots: schedule.Slots()})
}

// GET /api/v1/schedule/issues?type=
func (h *ScheduleHandler) Issues(w http.ResponseWriter, r *http.Request) {
	t := schedule.EquipmentType(r.URL.Query().Get("type"))

	issues := schedule.IssuesFor(t)
	if issues == nil {
		respondError(w, http.StatusBadRequest, "invalid_type", "type must be notebook, smartphone or pc")
		return
	}
	respondJSON(w, http.StatusOK, IssuesResponseDTO{Type: t, Issues: issues})
}

// POST /api/v1/appointments
func (h *ScheduleHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var form schedule.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	appt, err := h.session.Schedule(r.Context(), form)
	if err != nil {
		if errors.Is(err, schedule.ErrMissingField) {
			respondError(w, http.StatusBadRequest, "incomplete_form", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	slog.InfoContext(r.Context(), "appointment created",
		"appointment_id", appt.ID, "date", appt.Date, "time", appt.Time)
	h.publishAppointment(r.Context(), appt)

	respondJSON(w, http.StatusCreated, appt)
}

// DELETE /api/v1/appointments/{appointment_id}
func (h *ScheduleHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "appointment_id")

	h.session.CancelAppointment(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/appointments
func (h *ScheduleHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Appointments())
}

// GET /api/v1/schedule/draft
func (h *ScheduleHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Draft())
}

// PUT /api/v1/schedule/draft
func (h *ScheduleHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var form schedule.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.session.UpdateDraft(r.Context(), form)
	respondJSON(w, http.StatusOK, form)
}

func (h *ScheduleHandler) publishAppointment(ctx context.Context, appt schedule.Appointment) {
	if h.publisher == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if _, err := h.publisher.CreateAppointment(ctx, appt); err != nil {
			slog.WarnContext(ctx, "appointment publish failed", "appointment_id", appt.ID, "error", err)
		}
	}()
}

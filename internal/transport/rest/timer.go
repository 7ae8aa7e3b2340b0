package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/tracknox/timetrack-backend/internal/domain"
)

// timerService defines the minimal interface needed by TimerHandler.
type timerService interface {
	Start(ctx context.Context, activityID uuid.UUID) (*domain.ActivityLogEntry, error)
	Pause(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	Resume(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	Heartbeat(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	Stop(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	Reset(ctx context.Context, id uuid.UUID) error
	Recover(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, domain.RecoveryAction, error)
	GetCurrent(ctx context.Context) (*domain.ActivityLogEntry, error)
}

// TimerHandler serves timer lifecycle REST endpoints.
type TimerHandler struct {
	svc timerService
	log *slog.Logger
}

// NewTimerHandler creates a TimerHandler.
func NewTimerHandler(svc timerService, logger *slog.Logger) *TimerHandler {
	return &TimerHandler{svc: svc, log: logger.With("handler", "timer")}
}

type startTimerRequest struct {
	ActivityID string `json:"activityId"`
}

// recoverResponse reports what the recovery pass did to the session.
type recoverResponse struct {
	Action string         `json:"action"`
	Entry  *entryResponse `json:"entry,omitempty"`
}

// Start handles POST /api/timer/start.
func (h *TimerHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activityId")
		return
	}

	entry, err := h.svc.Start(r.Context(), activityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Pause handles POST /api/timer/{id}/pause.
func (h *TimerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Pause)
}

// Resume handles POST /api/timer/{id}/resume.
func (h *TimerHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Resume)
}

// Heartbeat handles POST /api/timer/{id}/heartbeat.
func (h *TimerHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Heartbeat)
}

// Stop handles POST /api/timer/{id}/stop.
func (h *TimerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Stop)
}

func (h *TimerHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, uuid.UUID) (*domain.ActivityLogEntry, error),
) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Reset handles DELETE /api/timer/{id}. The live session is discarded
// without producing a log entry.
func (h *TimerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Reset(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Recover handles POST /api/timer/{id}/recover. Clients call it on launch
// to reconcile a session that outlived its process.
func (h *TimerHandler) Recover(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, action, err := h.svc.Recover(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := recoverResponse{Action: action.String()}
	if entry != nil {
		e := toEntryResponse(entry)
		resp.Entry = &e
	}
	writeJSON(w, http.StatusOK, resp)
}

// Current handles GET /api/timer/current. Responds 204 when no live
// session exists.
func (h *TimerHandler) Current(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetCurrent(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if entry == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

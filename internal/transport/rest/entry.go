package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tracknox/timetrack-backend/internal/domain"
	"github.com/tracknox/timetrack-backend/internal/service/entry"
)

// entryService defines the minimal interface needed by EntryHandler.
type entryService interface {
	CreateManual(ctx context.Context, input entry.CreateEntryInput) (*domain.ActivityLogEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ActivityLogEntry, error)
	List(ctx context.Context, input entry.ListEntriesInput) ([]*domain.ActivityLogEntry, int, error)
	Update(ctx context.Context, id uuid.UUID, input entry.UpdateEntryInput) (*domain.ActivityLogEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryHandler serves activity log REST endpoints.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

type createEntryRequest struct {
	ActivityID string    `json:"activityId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

type updateEntryRequest struct {
	ActivityID *string    `json:"activityId"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
}

type listEntriesResponse struct {
	Items      []entryResponse `json:"items"`
	TotalCount int             `json:"totalCount"`
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activityId")
		return
	}

	created, err := h.svc.CreateManual(r.Context(), entry.CreateEntryInput{
		ActivityID: activityID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(created))
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(found))
}

// List handles GET /api/entries with optional filters:
// from, to (RFC 3339), activityId, type, status, limit, offset.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	input := entry.ListEntriesInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		input.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		input.To = &t
	}
	if v := q.Get("activityId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid activityId")
			return
		}
		input.ActivityID = &id
	}
	if v := q.Get("type"); v != "" {
		et := domain.EntryType(v)
		input.EntryType = &et
	}
	if v := q.Get("status"); v != "" {
		st := domain.SessionStatus(v)
		input.Status = &st
	}

	entries, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listEntriesResponse{
		Items:      toEntryResponses(entries),
		TotalCount: total,
	})
}

// Update handles PATCH /api/entries/{id}. Only manual entries can be edited.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := entry.UpdateEntryInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if req.ActivityID != nil {
		activityID, err := uuid.Parse(*req.ActivityID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid activityId")
			return
		}
		input.ActivityID = &activityID
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(updated))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

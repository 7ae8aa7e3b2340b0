package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tracknox/timetrack-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// activeTimerResponse is the 409 body when starting a timer while another
// live session holds the slot. The live session is included so clients can
// offer to stop or resume it.
type activeTimerResponse struct {
	Error       string        `json:"error"`
	ActiveTimer entryResponse `json:"activeTimer"`
}

// overlapResponse is the 409 body when a manual interval collides with a
// committed entry.
type overlapResponse struct {
	Error    string           `json:"error"`
	Conflict conflictResponse `json:"conflict"`
}

type conflictResponse struct {
	EntryID      string    `json:"entryId"`
	ActivityID   string    `json:"activityId"`
	ActivityName string    `json:"activityName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
}

// handleError maps service errors to HTTP responses. Conflict errors carry
// structured payloads so the frontend can render the colliding session or
// interval without a second round trip.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		activeErr     *domain.ActiveTimerError
		overlapErr    *domain.OverlapError
	)
	switch {
	case errors.As(err, &activeErr):
		writeJSON(w, http.StatusConflict, activeTimerResponse{
			Error:       activeErr.Error(),
			ActiveTimer: toEntryResponse(activeErr.Session),
		})
	case errors.As(err, &overlapErr):
		writeJSON(w, http.StatusConflict, overlapResponse{
			Error: overlapErr.Error(),
			Conflict: conflictResponse{
				EntryID:      overlapErr.Conflict.EntryID.String(),
				ActivityID:   overlapErr.Conflict.ActivityID.String(),
				ActivityName: overlapErr.Conflict.ActivityName,
				StartTime:    overlapErr.Conflict.StartTime,
				EndTime:      overlapErr.Conflict.EndTime,
			},
		})
	case errors.As(err, &validationErr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range validationErr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

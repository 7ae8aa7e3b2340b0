package rest

import (
	"time"

	"github.com/tracknox/timetrack-backend/internal/domain"
)

type entryResponse struct {
	ID            string          `json:"id"`
	ActivityID    string          `json:"activityId"`
	EntryType     string          `json:"entryType"`
	Status        string          `json:"status"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       *time.Time      `json:"endTime,omitempty"`
	LastHeartbeat time.Time       `json:"lastHeartbeat"`
	PauseHistory  []pauseResponse `json:"pauseHistory"`
	Duration      *int64          `json:"durationSeconds,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type pauseResponse struct {
	PauseTime  time.Time  `json:"pauseTime"`
	ResumeTime *time.Time `json:"resumeTime,omitempty"`
}

func toEntryResponse(e *domain.ActivityLogEntry) entryResponse {
	pauses := make([]pauseResponse, 0, len(e.PauseHistory))
	for _, p := range e.PauseHistory {
		pauses = append(pauses, pauseResponse{PauseTime: p.PauseTime, ResumeTime: p.ResumeTime})
	}
	return entryResponse{
		ID:            e.ID.String(),
		ActivityID:    e.ActivityID.String(),
		EntryType:     e.EntryType.String(),
		Status:        e.Status.String(),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		LastHeartbeat: e.LastHeartbeat,
		PauseHistory:  pauses,
		Duration:      e.Duration,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toEntryResponses(entries []*domain.ActivityLogEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

type activityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type usageResponse struct {
	ActivityID   string `json:"activityId"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	Entries      int    `json:"entries"`
	TotalSeconds int64  `json:"totalSeconds"`
}

func toUsageResponse(u domain.ActivityUsage) usageResponse {
	return usageResponse{
		ActivityID:   u.ActivityID.String(),
		Name:         u.Name,
		Color:        u.Color,
		Entries:      u.Entries,
		TotalSeconds: u.TotalSeconds,
	}
}

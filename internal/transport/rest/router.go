package rest

import (
	"net/http"
)

// Handlers bundles the REST handlers mounted by NewRouter.
type Handlers struct {
	Timer    *TimerHandler
	Entry    *EntryHandler
	Activity *ActivityHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/timer/start", h.Timer.Start)
	mux.HandleFunc("GET /api/timer/current", h.Timer.Current)
	mux.HandleFunc("POST /api/timer/{id}/pause", h.Timer.Pause)
	mux.HandleFunc("POST /api/timer/{id}/resume", h.Timer.Resume)
	mux.HandleFunc("POST /api/timer/{id}/heartbeat", h.Timer.Heartbeat)
	mux.HandleFunc("POST /api/timer/{id}/stop", h.Timer.Stop)
	mux.HandleFunc("POST /api/timer/{id}/recover", h.Timer.Recover)
	mux.HandleFunc("DELETE /api/timer/{id}", h.Timer.Reset)

	mux.HandleFunc("POST /api/entries", h.Entry.Create)
	mux.HandleFunc("GET /api/entries", h.Entry.List)
	mux.HandleFunc("GET /api/entries/{id}", h.Entry.Get)
	mux.HandleFunc("PATCH /api/entries/{id}", h.Entry.Update)
	mux.HandleFunc("DELETE /api/entries/{id}", h.Entry.Delete)

	mux.HandleFunc("POST /api/activities", h.Activity.Create)
	mux.HandleFunc("GET /api/activities", h.Activity.List)
	mux.HandleFunc("GET /api/activities/stats", h.Activity.Stats)
	mux.HandleFunc("GET /api/activities/{id}", h.Activity.Get)
	mux.HandleFunc("PATCH /api/activities/{id}", h.Activity.Update)
	mux.HandleFunc("DELETE /api/activities/{id}", h.Activity.Delete)

	return mux
}

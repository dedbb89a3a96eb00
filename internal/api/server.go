package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/leadgen-os/pulse/internal/inbox"
	"github.com/leadgen-os/pulse/internal/unify"
	"github.com/leadgen-os/pulse/internal/workflow"
)

// ViewStatus reports the freshness of one served view.
type ViewStatus struct {
	View        string    `json:"view"`
	SnapshotID  string    `json:"snapshotId,omitempty"`
	RefreshedAt time.Time `json:"refreshedAt,omitzero"`
}

// Views are the read closures the server renders. A closure returning nil
// serves an empty array: an un-refreshed or degraded view is empty data,
// never an error.
type Views struct {
	Leads         func() []unify.Lead
	Conversations func() []inbox.Conversation
	Meetings      func() []unify.Meeting
	WebLeads      func() []unify.WebLead
	WorkflowLogs  func() []workflow.Log
	Agents        func() []workflow.AgentActivity
	Status        func() []ViewStatus
}

type Server struct {
	router *chi.Mux
	port   int
	views  Views
}

func NewServer(port int, views Views) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		views:  views,
	}

	router.Get("/health", s.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.status)
		r.Get("/leads", listOf(views.Leads))
		r.Get("/conversations", listOf(views.Conversations))
		r.Get("/meetings", listOf(views.Meetings))
		r.Get("/web-leads", listOf(views.WebLeads))
		r.Get("/workflow-logs", listOf(views.WorkflowLogs))
		r.Get("/agents", listOf(views.Agents))
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	var statuses []ViewStatus
	if s.views.Status != nil {
		statuses = s.views.Status()
	}
	if statuses == nil {
		statuses = []ViewStatus{}
	}
	writeJSON(w, statuses)
}

// listOf renders a view closure as a JSON array, serving [] when the view
// has no data yet.
func listOf[T any](view func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []T
		if view != nil {
			items = view()
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, items)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

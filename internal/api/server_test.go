package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leadgen-os/pulse/internal/inbox"
	"github.com/leadgen-os/pulse/internal/unify"
	"github.com/leadgen-os/pulse/internal/workflow"
)

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := NewServer(8760, Views{})

	w := get(t, srv, "/health")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestLeadsEndpoint(t *testing.T) {
	srv := NewServer(8760, Views{
		Leads: func() []unify.Lead {
			return []unify.Lead{{ID: "L1", Email: "a@x.com", FirstName: "Ada"}}
		},
	})

	w := get(t, srv, "/api/v1/leads")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var leads []unify.Lead
	if err := json.NewDecoder(w.Body).Decode(&leads); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(leads) != 1 || leads[0].Email != "a@x.com" {
		t.Errorf("leads = %+v", leads)
	}
}

func TestUnrefreshedViewServesEmptyArray(t *testing.T) {
	srv := NewServer(8760, Views{})

	for _, path := range []string{
		"/api/v1/leads",
		"/api/v1/conversations",
		"/api/v1/meetings",
		"/api/v1/web-leads",
		"/api/v1/workflow-logs",
		"/api/v1/agents",
	} {
		w := get(t, srv, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if got := w.Body.String(); got != "[]\n" {
			t.Errorf("%s: body = %q, want empty array", path, got)
		}
	}
}

func TestConversationsEndpoint(t *testing.T) {
	srv := NewServer(8760, Views{
		Conversations: func() []inbox.Conversation {
			return []inbox.Conversation{{ID: "t1", LeadEmail: "a@x.com", Lead: nil}}
		},
	})

	w := get(t, srv, "/api/v1/conversations")

	var convs []inbox.Conversation
	if err := json.NewDecoder(w.Body).Decode(&convs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(convs) != 1 || convs[0].ID != "t1" {
		t.Errorf("conversations = %+v", convs)
	}
	if convs[0].Lead != nil {
		t.Error("nil lead must survive the round trip")
	}
}

func TestAgentsEndpoint(t *testing.T) {
	srv := NewServer(8760, Views{
		Agents: func() []workflow.AgentActivity {
			return []workflow.AgentActivity{{AgentName: "Lead Scraper", Status: workflow.StateRunning}}
		},
	})

	w := get(t, srv, "/api/v1/agents")

	var agents []workflow.AgentActivity
	if err := json.NewDecoder(w.Body).Decode(&agents); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(agents) != 1 || agents[0].Status != workflow.StateRunning {
		t.Errorf("agents = %+v", agents)
	}
}

func TestStatusEndpoint(t *testing.T) {
	refreshed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := NewServer(8760, Views{
		Status: func() []ViewStatus {
			return []ViewStatus{{View: "leads", SnapshotID: "abc", RefreshedAt: refreshed}}
		},
	})

	w := get(t, srv, "/api/v1/status")

	var statuses []ViewStatus
	if err := json.NewDecoder(w.Body).Decode(&statuses); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(statuses) != 1 || statuses[0].View != "leads" {
		t.Errorf("statuses = %+v", statuses)
	}
	if !statuses[0].RefreshedAt.Equal(refreshed) {
		t.Errorf("refreshedAt = %v", statuses[0].RefreshedAt)
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := NewServer(8760, Views{})

	w := get(t, srv, "/nonexistent")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

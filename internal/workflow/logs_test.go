package workflow

import (
	"context"
	"log/slog"
	"testing"

	"github.com/leadgen-os/pulse/internal/config"
	"github.com/leadgen-os/pulse/internal/layout"
	"github.com/leadgen-os/pulse/internal/sheets"
)

type stubFetcher struct {
	rows []sheets.Row
}

func (s *stubFetcher) Fetch(_ context.Context, _, _ string) sheets.Result {
	return sheets.Result{Rows: s.rows}
}

func rowWith(cells map[int]string) sheets.Row {
	size := 0
	for col := range cells {
		if col+1 > size {
			size = col + 1
		}
	}
	row := make(sheets.Row, size)
	for col, v := range cells {
		row[col] = v
	}
	return row
}

func testLogs(rows []sheets.Row) *Assembler {
	return NewAssembler(&stubFetcher{rows: rows}, config.Source{SpreadsheetID: "logs"}, slog.Default())
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"SUCCESS", StatusSuccess},
		{"success", StatusSuccess},
		{" Success ", StatusSuccess},
		{"RUNNING", StatusRunning},
		{"running", StatusRunning},
		{"FAILED", StatusFailed},
		{"error", StatusFailed},
		{"", StatusFailed}, // blank counts as Failed, the shipped behaviour
		{"pending", StatusFailed},
	}

	for _, tt := range tests {
		if got := classifyStatus(tt.raw); got != tt.want {
			t.Errorf("classifyStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLogs_NewestFirst(t *testing.T) {
	a := testLogs([]sheets.Row{
		rowWith(map[int]string{layout.LogID: "r1", layout.LogWorkflow: "Lead Scraper"}),
		rowWith(map[int]string{layout.LogID: "r2", layout.LogWorkflow: "Research Agent"}),
		rowWith(map[int]string{layout.LogID: "r3", layout.LogWorkflow: "Analyzer AI Agent"}),
	})

	logs := a.Logs(context.Background())

	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	if logs[0].ID != "r3" || logs[2].ID != "r1" {
		t.Errorf("order = %q..%q, want source order reversed", logs[0].ID, logs[2].ID)
	}
}

func TestLogs_FieldMappingAndDefaults(t *testing.T) {
	a := testLogs([]sheets.Row{
		rowWith(map[int]string{
			layout.LogID:          "run-9",
			layout.LogWorkflow:    "Email Outreach Agent",
			layout.LogMessage:     "sent 12 emails",
			layout.LogTimestamp:   "2024-05-01T09:00:00Z",
			layout.LogDuration:    "5400",
			layout.LogStatus:      "SUCCESS",
			layout.LogHealthScore: "88",
			layout.LogNextRun:     "2024-05-01T10:00:00Z",
		}),
		rowWith(map[int]string{layout.LogWorkflow: "Lead Scraper", layout.LogDuration: "fast"}),
	})

	logs := a.Logs(context.Background())

	full := logs[1]
	if full.Status != StatusSuccess || full.Duration != 5400 || full.HealthScore != 88 {
		t.Errorf("full log = %+v", full)
	}
	if full.Message != "sent 12 emails" || full.NextRun != "2024-05-01T10:00:00Z" {
		t.Errorf("full log = %+v", full)
	}

	sparse := logs[0]
	if sparse.ID != "log-0" {
		t.Errorf("synthesized id = %q, want log-0 (newest first)", sparse.ID)
	}
	if sparse.Duration != 0 {
		t.Errorf("unparseable duration = %d, want 0", sparse.Duration)
	}
	if sparse.HealthScore != 100 {
		t.Errorf("missing health score = %d, want 100", sparse.HealthScore)
	}
	if sparse.Status != StatusFailed {
		t.Errorf("blank status = %q, want Failed", sparse.Status)
	}
}

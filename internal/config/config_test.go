package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PULSE_PORT", "LOG_LEVEL", "GOOGLE_SHEETS_API_KEY",
		"PULSE_POLL_LEADS", "PULSE_POLL_INBOX", "PULSE_POLL_OPS",
		"SHEET_LEAD_GEN_ID", "SHEET_LEAD_GEN_RANGE",
		"SHEET_SALES_AI_ID", "SHEET_SALES_AI_RANGE",
		"SHEET_APPOINTMENT_ID", "SHEET_APPOINTMENT_RANGE",
		"SHEET_WEB_AI_ID", "SHEET_WEB_AI_RANGE",
		"SHEET_WORKFLOW_LOGS_ID", "SHEET_WORKFLOW_LOGS_RANGE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8760 {
		t.Errorf("expected default port 8760, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.GoogleAPIKey != "" {
		t.Errorf("expected empty default api key, got %s", cfg.GoogleAPIKey)
	}
	if cfg.PollLeads != 15*time.Second {
		t.Errorf("expected 15s leads poll interval, got %s", cfg.PollLeads)
	}
	if cfg.PollInbox != 10*time.Second {
		t.Errorf("expected 10s inbox poll interval, got %s", cfg.PollInbox)
	}
	if cfg.Sheets.LeadGen.Range != "LeadDataMaster!A2:BP" {
		t.Errorf("expected default lead gen range, got %s", cfg.Sheets.LeadGen.Range)
	}
	if cfg.Sheets.SalesAI.Range != "Full_context test!A2:BD" {
		t.Errorf("expected default sales range, got %s", cfg.Sheets.SalesAI.Range)
	}
	if cfg.Sheets.WorkflowLogs.Range != "Sheet1!A2:Z" {
		t.Errorf("expected default workflow range, got %s", cfg.Sheets.WorkflowLogs.Range)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PULSE_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GOOGLE_SHEETS_API_KEY", "test-key")
	t.Setenv("PULSE_POLL_LEADS", "30s")
	t.Setenv("SHEET_LEAD_GEN_ID", "sheet-abc")
	t.Setenv("SHEET_LEAD_GEN_RANGE", "Master!A2:ZZ")

	cfg := Load()

	if cfg.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.GoogleAPIKey != "test-key" {
		t.Errorf("expected custom api key, got %s", cfg.GoogleAPIKey)
	}
	if cfg.PollLeads != 30*time.Second {
		t.Errorf("expected 30s leads poll interval, got %s", cfg.PollLeads)
	}
	if cfg.Sheets.LeadGen.SpreadsheetID != "sheet-abc" {
		t.Errorf("expected custom sheet id, got %s", cfg.Sheets.LeadGen.SpreadsheetID)
	}
	if cfg.Sheets.LeadGen.Range != "Master!A2:ZZ" {
		t.Errorf("expected custom range, got %s", cfg.Sheets.LeadGen.Range)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PULSE_PORT", "notanumber")
	t.Setenv("PULSE_POLL_INBOX", "soon")

	cfg := Load()

	if cfg.Port != 8760 {
		t.Errorf("expected default port on invalid value, got %d", cfg.Port)
	}
	if cfg.PollInbox != 10*time.Second {
		t.Errorf("expected default inbox interval on invalid value, got %s", cfg.PollInbox)
	}
}

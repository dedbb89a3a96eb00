package config

import (
	"os"
	"strconv"
	"time"
)

// Source addresses one spreadsheet-backed data source: the spreadsheet ID
// plus the A1-notation range to pull (sheet name + cell range).
type Source struct {
	SpreadsheetID string
	Range         string
}

// Sheets holds the five raw sources the dashboard reconciles.
type Sheets struct {
	LeadGen      Source
	SalesAI      Source
	Appointment  Source
	WebLeads     Source
	WorkflowLogs Source
}

type Config struct {
	Port         int
	LogLevel     string
	GoogleAPIKey string

	// Per-view refresh intervals. Views poll independently; the same
	// source may be fetched by more than one view per cycle.
	PollLeads time.Duration
	PollInbox time.Duration
	PollOps   time.Duration

	Sheets Sheets
}

func Load() Config {
	return Config{
		Port:         envInt("PULSE_PORT", 8760),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		GoogleAPIKey: envStr("GOOGLE_SHEETS_API_KEY", ""),
		PollLeads:    envDur("PULSE_POLL_LEADS", 15*time.Second),
		PollInbox:    envDur("PULSE_POLL_INBOX", 10*time.Second),
		PollOps:      envDur("PULSE_POLL_OPS", 15*time.Second),
		Sheets: Sheets{
			LeadGen: Source{
				SpreadsheetID: envStr("SHEET_LEAD_GEN_ID", ""),
				Range:         envStr("SHEET_LEAD_GEN_RANGE", "LeadDataMaster!A2:BP"),
			},
			SalesAI: Source{
				SpreadsheetID: envStr("SHEET_SALES_AI_ID", ""),
				Range:         envStr("SHEET_SALES_AI_RANGE", "Full_context test!A2:BD"),
			},
			Appointment: Source{
				SpreadsheetID: envStr("SHEET_APPOINTMENT_ID", ""),
				Range:         envStr("SHEET_APPOINTMENT_RANGE", "Sheet1!A2:U"),
			},
			WebLeads: Source{
				SpreadsheetID: envStr("SHEET_WEB_AI_ID", ""),
				Range:         envStr("SHEET_WEB_AI_RANGE", "Lead Data!A2:Z"),
			},
			WorkflowLogs: Source{
				SpreadsheetID: envStr("SHEET_WORKFLOW_LOGS_ID", ""),
				Range:         envStr("SHEET_WORKFLOW_LOGS_RANGE", "Sheet1!A2:Z"),
			},
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

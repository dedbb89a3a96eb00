package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leadgen-os/pulse/internal/config"
	"github.com/leadgen-os/pulse/internal/layout"
	"github.com/leadgen-os/pulse/internal/sheets"
)

type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
	StatusRunning Status = "Running"
)

// Log is one workflow run recorded by the automation runner.
type Log struct {
	ID           string `json:"id"`
	WorkflowName string `json:"workflowName"`
	Status       Status `json:"status"`
	Duration     int    `json:"duration"` // milliseconds
	Timestamp    string `json:"timestamp"`
	Message      string `json:"message"`
	HealthScore  int    `json:"healthScore"`
	NextRun      string `json:"nextRun,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Fetcher pulls one raw cell range. Satisfied by sheets.Client.
type Fetcher interface {
	Fetch(ctx context.Context, spreadsheetID, rangeExpr string) sheets.Result
}

// Assembler maps the workflow-log sheet into Log records.
type Assembler struct {
	fetcher Fetcher
	source  config.Source
	logger  *slog.Logger
}

func NewAssembler(fetcher Fetcher, source config.Source, logger *slog.Logger) *Assembler {
	return &Assembler{fetcher: fetcher, source: source, logger: logger}
}

// Logs fetches and maps the log sheet, newest entry first (the sheet is
// appended oldest-first).
func (a *Assembler) Logs(ctx context.Context) []Log {
	res := a.fetcher.Fetch(ctx, a.source.SpreadsheetID, a.source.Range)

	logs := make([]Log, 0, len(res.Rows))
	for i := len(res.Rows) - 1; i >= 0; i-- {
		row := res.Rows[i]
		logs = append(logs, Log{
			ID:           orSynthetic(row.Get(layout.LogID), len(res.Rows)-1-i),
			WorkflowName: row.Get(layout.LogWorkflow),
			Status:       classifyStatus(row.Get(layout.LogStatus)),
			Duration:     row.Int(layout.LogDuration),
			Timestamp:    row.Get(layout.LogTimestamp),
			Message:      row.Get(layout.LogMessage),
			HealthScore:  healthScore(row),
			NextRun:      row.Get(layout.LogNextRun),
			Error:        row.Get(layout.LogError),
		})
	}
	return logs
}

// classifyStatus maps the raw status cell to the tri-state. Anything other
// than a recognized success/running marker counts as Failed, including
// blank — that is the behaviour the dashboard has always shipped with,
// even though a blank status more likely means "never ran".
func classifyStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SUCCESS":
		return StatusSuccess
	case "RUNNING":
		return StatusRunning
	default:
		return StatusFailed
	}
}

// healthScore defaults to 100 when the cell is absent or unparseable.
func healthScore(row sheets.Row) int {
	if n := row.Int(layout.LogHealthScore); n > 0 {
		return n
	}
	return 100
}

func orSynthetic(id string, idx int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("log-%d", idx)
}

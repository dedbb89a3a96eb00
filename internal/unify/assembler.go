package unify

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leadgen-os/pulse/internal/config"
	"github.com/leadgen-os/pulse/internal/layout"
	"github.com/leadgen-os/pulse/internal/sheets"
)

// Fetcher pulls one raw cell range. Satisfied by sheets.Client; tests
// substitute canned rows.
type Fetcher interface {
	Fetch(ctx context.Context, spreadsheetID, rangeExpr string) sheets.Result
}

// Assembler joins the raw sources into unified views. It holds no state
// between calls: every invocation re-fetches and rebuilds from scratch,
// so callers always get a fresh snapshot.
type Assembler struct {
	fetcher Fetcher
	sources config.Sheets
	logger  *slog.Logger
}

func NewAssembler(fetcher Fetcher, sources config.Sheets, logger *slog.Logger) *Assembler {
	return &Assembler{fetcher: fetcher, sources: sources, logger: logger}
}

// UnifiedData carries the mapped leads plus the raw row sets downstream
// assemblers join against.
type UnifiedData struct {
	Leads           []Lead
	LeadRows        []sheets.Row
	SalesRows       []sheets.Row
	AppointmentRows []sheets.Row
}

// Unified fetches the lead, sales and appointment sources concurrently and
// maps the lead rows against the sales index. Leads without a usable email
// (must contain "@") are dropped; the first row per distinct lowercased
// email wins and source order is preserved.
func (a *Assembler) Unified(ctx context.Context) UnifiedData {
	var leadRes, salesRes, aptRes sheets.Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leadRes = a.fetcher.Fetch(gctx, a.sources.LeadGen.SpreadsheetID, a.sources.LeadGen.Range)
		return nil
	})
	g.Go(func() error {
		salesRes = a.fetcher.Fetch(gctx, a.sources.SalesAI.SpreadsheetID, a.sources.SalesAI.Range)
		return nil
	})
	g.Go(func() error {
		aptRes = a.fetcher.Fetch(gctx, a.sources.Appointment.SpreadsheetID, a.sources.Appointment.Range)
		return nil
	})
	_ = g.Wait() // fetches degrade to empty, never error

	salesIndex := IndexByEmail(salesRes.Rows, layout.SalesEmail)

	seen := make(map[string]bool)
	leads := make([]Lead, 0, len(leadRes.Rows))
	for idx, row := range leadRes.Rows {
		lead := MapLead(row, idx, salesIndex)
		if lead.Email == "" || !strings.Contains(lead.Email, "@") {
			continue
		}
		key := strings.ToLower(lead.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		leads = append(leads, lead)
	}

	a.logger.Debug("unified snapshot assembled",
		"leads", len(leads),
		"lead_rows", len(leadRes.Rows),
		"sales_rows", len(salesRes.Rows),
		"appointment_rows", len(aptRes.Rows),
	)

	return UnifiedData{
		Leads:           leads,
		LeadRows:        leadRes.Rows,
		SalesRows:       salesRes.Rows,
		AppointmentRows: aptRes.Rows,
	}
}

// Leads returns the unified lead set in source order.
func (a *Assembler) Leads(ctx context.Context) []Lead {
	return a.Unified(ctx).Leads
}

// IndexByEmail groups rows by the lowercased email in the given column,
// preserving source order within each group. Rows with a blank email are
// skipped.
func IndexByEmail(rows []sheets.Row, emailCol int) map[string][]sheets.Row {
	index := make(map[string][]sheets.Row)
	for _, row := range rows {
		email := row.Lower(emailCol)
		if email == "" {
			continue
		}
		index[email] = append(index[email], row)
	}
	return index
}

package unify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leadgen-os/pulse/internal/layout"
)

// aiBookedMarker identifies meetings booked by the appointment agent: the
// booked-by cell carries the agent's name.
const aiBookedMarker = "appointment"

// Meetings projects sales-AI rows with the meeting-booked flag set. Source
// order is preserved; no additional sorting.
func (a *Assembler) Meetings(ctx context.Context) []Meeting {
	data := a.Unified(ctx)

	var meetings []Meeting
	for idx, row := range data.SalesRows {
		if !sheetTrue(row.Get(layout.SalesMeetingBooked)) {
			continue
		}
		bookedBy := orDefault(row.Get(layout.SalesBookedBy), "Manual")
		meetings = append(meetings, Meeting{
			ID:         orDefault(row.Get(layout.SalesThreadID), fmt.Sprintf("mtg-%d", idx)),
			LeadName:   orDefault(row.Get(layout.SalesLeadName), "Unknown"),
			Email:      row.Get(layout.SalesEmail),
			BookedBy:   bookedBy,
			IsAIBooked: strings.Contains(strings.ToLower(bookedBy), aiBookedMarker),
			Date:       row.Get(layout.SalesMeetingDate),
			Time:       orDefault(row.Get(layout.SalesMeetingTime), "TBD"),
			Status:     "Upcoming",
			Link:       row.Get(layout.SalesMeetingLink),
			Platform:   orDefault(row.Get(layout.SalesMeetingPlatform), "Virtual"),
		})
	}
	return meetings
}

// WebLeads maps the web-chat sheet directly; it joins against nothing.
func (a *Assembler) WebLeads(ctx context.Context) []WebLead {
	res := a.fetcher.Fetch(ctx, a.sources.WebLeads.SpreadsheetID, a.sources.WebLeads.Range)

	leads := make([]WebLead, 0, len(res.Rows))
	for idx, row := range res.Rows {
		timestamp := row.Get(layout.WebTimestamp)
		if timestamp == "" {
			timestamp = time.Now().UTC().Format(time.RFC3339)
		}
		leads = append(leads, WebLead{
			ID:        orDefault(row.Get(layout.WebID), fmt.Sprintf("web-%d", idx)),
			Email:     row.Get(layout.WebEmail),
			Intent:    orDefault(row.Get(layout.WebIntent), "General"),
			Status:    orDefault(row.Get(layout.WebStatus), "New"),
			Source:    "Website Chat",
			Timestamp: timestamp,
		})
	}
	return leads
}

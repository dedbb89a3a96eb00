package unify

import (
	"fmt"
	"strings"

	"github.com/leadgen-os/pulse/internal/layout"
	"github.com/leadgen-os/pulse/internal/sheets"
)

// Boolean cells are written inconsistently by the upstream workflows: the
// send flags use "Yes" or "TRUE", the analysed/replied flags use "YES",
// everything else uses "TRUE". The accepted literal set is part of each
// column's contract, so the checks stay per-field.
func sentFlag(v string) bool  { return v == "Yes" || v == "TRUE" }
func yesFlag(v string) bool   { return v == "YES" }
func sheetTrue(v string) bool { return v == "TRUE" }

// MapLead converts one lead-generation row into a Lead, enriched from the
// sales index (lowercased email -> sales rows in source order; the last
// row is taken as most recent). Short rows default per field; nothing
// here can fail.
func MapLead(row sheets.Row, idx int, salesIndex map[string][]sheets.Row) Lead {
	var latestSales sheets.Row
	if matches := salesIndex[row.Lower(layout.LeadEmail)]; len(matches) > 0 {
		latestSales = matches[len(matches)-1]
	}

	slot1 := mapSendSlot(row, layout.LeadEmail1Sent, layout.LeadEmail1SentAt, layout.LeadEmail1Opens, layout.LeadEmail1Clicked)
	slot2 := mapSendSlot(row, layout.LeadEmail2Sent, layout.LeadEmail2SentAt, layout.LeadEmail2Opens, layout.LeadEmail2Clicked)
	slot3 := mapSendSlot(row, layout.LeadEmail3Sent, layout.LeadEmail3SentAt, layout.LeadEmail3Opens, layout.LeadEmail3Clicked)

	sentCount := 0
	for _, slot := range []SendSlot{slot1, slot2, slot3} {
		if slot.Sent {
			sentCount++
		}
	}
	clickCount := 0
	for _, slot := range []SendSlot{slot1, slot2, slot3} {
		if slot.Clicked {
			clickCount++
		}
	}

	lead := Lead{
		ID:        orDefault(row.Get(layout.LeadID), fmt.Sprintf("lead-%d", idx)),
		FirstName: orDefault(row.Get(layout.LeadFirstName), "Unknown"),
		LastName:  row.Get(layout.LeadLastName),
		Email:     row.Get(layout.LeadEmail),
		Phone:     row.Get(layout.LeadPhone),
		Country:   row.Get(layout.LeadCountry),
		Location:  row.Get(layout.LeadLocation),
		Industry:  row.Get(layout.LeadIndustry),
		Company:   row.Get(layout.LeadCompany),
		JobTitle:  row.Get(layout.LeadJobTitle),
		Source:    orDefault(row.Get(layout.LeadSource), "Outbound"),

		WebsiteURL:  row.Get(layout.LeadWebsiteURL),
		LinkedInURL: row.Get(layout.LeadLinkedInURL),

		ListName:     orDefault(row.Get(layout.LeadListName), "General List"),
		CampaignName: orDefault(row.Get(layout.LeadCampaignName), "Uncategorized"),

		Status:         orDefault(row.Get(layout.LeadStatus), "Active"),
		Score:          row.Int(layout.LeadScore),
		Analysed:       yesFlag(row.Get(layout.LeadAnalysed)),
		ResearchReport: row.Get(layout.LeadResearch),
		Tags:           splitTags(row.Get(layout.LeadTags)),
		OptedOut:       sheetTrue(row.Get(layout.LeadOptedOut)),

		EmailsSentCount:    sentCount,
		EmailsOpenedCount:  slot1.OpenCount + slot2.OpenCount + slot3.OpenCount,
		EmailsClickedCount: clickCount,
		Replied:            yesFlag(row.Get(layout.LeadReplied)) || latestSales != nil,
		Bounced:            sheetTrue(row.Get(layout.LeadBounced)),

		EmailMetrics: EmailMetrics{Email1: slot1, Email2: slot2, Email3: slot3},

		SequenceStartDate: sheets.NormalizeDate(row.Get(layout.LeadSequenceStart)),
		SequenceStatus:    row.Get(layout.LeadSequenceStatus),
		NextAction:        row.Get(layout.LeadNextAction),
		NextActionDate:    sheets.NormalizeDate(row.Get(layout.LeadNextActionDate)),
		LastActionDate:    sheets.NormalizeDate(row.Get(layout.LeadLastActionDate)),
		AssignedAgent:     row.Get(layout.LeadAssignedAgent),

		MeetingBooked: sheetTrue(row.Get(layout.LeadMeetingBooked)),
	}

	if latestSales != nil {
		lead.ConversationThreadID = latestSales.Get(layout.SalesThreadID)
		lead.AIReasoning = latestSales.Get(layout.SalesAIReasoning)
		lead.RequiresHuman = sheetTrue(latestSales.Get(layout.SalesRequiresHuman))
		lead.MeetingBooked = sheetTrue(latestSales.Get(layout.SalesMeetingBooked))
		lead.MeetingBookedBy = latestSales.Get(layout.SalesBookedBy)
		lead.MeetingDate = latestSales.Get(layout.SalesMeetingDate)
		lead.MeetingLink = latestSales.Get(layout.SalesMeetingLink)
		lead.MeetingPlatform = latestSales.Get(layout.SalesMeetingPlatform)
	}

	return lead
}

func mapSendSlot(row sheets.Row, sentCol, sentAtCol, opensCol, clickedCol int) SendSlot {
	opens := row.Int(opensCol)
	return SendSlot{
		Sent:      sentFlag(row.Get(sentCol)),
		SentAt:    sheets.NormalizeDate(row.Get(sentAtCol)),
		Opened:    opens > 0,
		OpenCount: opens,
		Clicked:   sheetTrue(row.Get(clickedCol)),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

package inbox

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/leadgen-os/pulse/internal/layout"
	"github.com/leadgen-os/pulse/internal/sheets"
	"github.com/leadgen-os/pulse/internal/unify"
)

// Assembler merges the three interaction sources into per-lead
// conversations. Sales-AI rows are the anchor: a conversation exists for
// every email that appears there, whether or not the lead does.
type Assembler struct {
	unified *unify.Assembler
	now     func() time.Time
}

func New(unified *unify.Assembler) *Assembler {
	return &Assembler{unified: unified, now: time.Now}
}

// campaignSlots drives the injection of the three outreach send-slots as
// CAMPAIGN_EMAIL events. Slot 2 has no subject column of its own.
var campaignSlots = []struct {
	num            int
	sentAtCol      int
	subjectCol     int
	bodyCol        int
	opensCol       int
	clickedCol     int
	defaultSubject string
}{
	{1, layout.LeadEmail1SentAt, layout.LeadEmail1Subject, layout.LeadEmail1Body, layout.LeadEmail1Opens, layout.LeadEmail1Clicked, ""},
	{2, layout.LeadEmail2SentAt, -1, layout.LeadEmail2Body, layout.LeadEmail2Opens, layout.LeadEmail2Clicked, "Follow-up"},
	{3, layout.LeadEmail3SentAt, layout.LeadEmail3Subject, layout.LeadEmail3Body, layout.LeadEmail3Opens, layout.LeadEmail3Clicked, ""},
}

// Conversations builds the full conversation set: one per distinct sales
// email, each with a chronologically ascending timeline synthesized from
// sales turns, campaign sends and appointment chat, sorted most recently
// active first. Rebuilding from the same raw rows yields the same output.
func (a *Assembler) Conversations(ctx context.Context) []Conversation {
	data := a.unified.Unified(ctx)

	leadByEmail := make(map[string]*unify.Lead, len(data.Leads))
	for i := range data.Leads {
		leadByEmail[strings.ToLower(data.Leads[i].Email)] = &data.Leads[i]
	}

	leadRowByEmail := make(map[string]sheets.Row)
	for _, row := range data.LeadRows {
		email := row.Lower(layout.LeadEmail)
		if email == "" {
			continue
		}
		if _, ok := leadRowByEmail[email]; !ok {
			leadRowByEmail[email] = row
		}
	}

	aptIndex := unify.IndexByEmail(data.AppointmentRows, layout.AptEmail)

	byEmail := make(map[string]*Conversation)
	var order []string // first-seen order, keeps output deterministic

	for idx, row := range data.SalesRows {
		email := row.Lower(layout.SalesEmail)
		if email == "" {
			continue
		}

		conv, ok := byEmail[email]
		if !ok {
			lead := leadByEmail[email]
			name := row.Get(layout.SalesLeadName)
			if name == "" && lead != nil {
				name = lead.FirstName
			}
			if name == "" {
				name = "Unknown"
			}
			id := row.Get(layout.SalesThreadID)
			if id == "" {
				id = fmt.Sprintf("thread-%d", idx)
			}
			conv = &Conversation{
				ID:        id,
				LeadEmail: email,
				LeadName:  name,
				Lead:      lead,
				Timeline:  []TimelineEvent{},
			}
			byEmail[email] = conv
			order = append(order, email)
		}

		a.appendSalesTurn(conv, row, idx)

		if row.Get(layout.SalesRequiresHuman) == "TRUE" {
			conv.RequiresHuman = true
		}
	}

	for _, email := range order {
		conv := byEmail[email]
		if leadRow, ok := leadRowByEmail[email]; ok {
			appendCampaignEmails(conv, leadRow, email)
		}
		appendAppointmentChat(conv, aptIndex[email])

		sortTimeline(conv.Timeline)
		if n := len(conv.Timeline); n > 0 {
			conv.LastMessage = conv.Timeline[n-1].Body
			conv.LastTimestamp = conv.Timeline[n-1].Timestamp
		}
	}

	conversations := make([]Conversation, 0, len(order))
	for _, email := range order {
		conversations = append(conversations, *byEmail[email])
	}

	// Most recently active first. A conversation with no timeline has an
	// empty last timestamp, which parses to the zero time and sorts last.
	sort.SliceStable(conversations, func(i, j int) bool {
		ti, _ := sheets.ParseTimestamp(conversations[i].LastTimestamp)
		tj, _ := sheets.ParseTimestamp(conversations[j].LastTimestamp)
		return ti.After(tj)
	})

	return conversations
}

// appendSalesTurn splits one sales-AI row into up to two events: the
// lead's inbound message and the AI's response. The response is stamped
// one second after the inbound so a turn always orders question first.
func (a *Assembler) appendSalesTurn(conv *Conversation, row sheets.Row, idx int) {
	ts, ok := sheets.ParseTimestamp(row.Get(layout.SalesTimestamp))
	if !ok {
		ts = a.now().UTC()
	}

	if body := row.Get(layout.SalesInboundBody); body != "" {
		conv.Timeline = append(conv.Timeline, TimelineEvent{
			ID:        fmt.Sprintf("sales-%d-in", idx),
			Type:      EventSalesChat,
			Timestamp: ts.Format(time.RFC3339),
			Direction: DirectionInbound,
			Body:      body,
			Metadata:  EventMetadata{SourceSheet: SourceSalesAI},
		})
	}

	if body := row.Get(layout.SalesAIResponse); body != "" {
		var meeting *MeetingDetails
		if row.Get(layout.SalesMeetingBooked) == "TRUE" {
			meeting = &MeetingDetails{
				Date:     row.Get(layout.SalesMeetingDate),
				Link:     row.Get(layout.SalesMeetingLink),
				Platform: row.Get(layout.SalesMeetingPlatform),
			}
		}
		conv.Timeline = append(conv.Timeline, TimelineEvent{
			ID:        fmt.Sprintf("sales-%d-out", idx),
			Type:      EventSalesChat,
			Timestamp: ts.Add(time.Second).Format(time.RFC3339),
			Direction: DirectionOutbound,
			Body:      body,
			Metadata: EventMetadata{
				SourceSheet:    SourceSalesAI,
				AIReasoning:    row.Get(layout.SalesAIReasoning),
				MeetingDetails: meeting,
			},
		})
	}
}

// appendCampaignEmails injects one CAMPAIGN_EMAIL event per send-slot
// whose sentAt cell is populated, carrying that slot's own subject, body
// and open/click data.
func appendCampaignEmails(conv *Conversation, leadRow sheets.Row, email string) {
	for _, slot := range campaignSlots {
		sentAt := leadRow.Get(slot.sentAtCol)
		if sentAt == "" {
			continue
		}
		subject := leadRow.Get(slot.subjectCol)
		if subject == "" {
			subject = slot.defaultSubject
		}
		body := leadRow.Get(slot.bodyCol)
		if body == "" {
			body = fmt.Sprintf("Campaign Email #%d", slot.num)
		}
		conv.Timeline = append(conv.Timeline, TimelineEvent{
			ID:        fmt.Sprintf("camp-%d-%s", slot.num, email),
			Type:      EventCampaignEmail,
			Timestamp: sheets.NormalizeDate(sentAt),
			Direction: DirectionOutbound,
			Subject:   subject,
			Body:      body,
			Metadata: EventMetadata{
				SourceSheet: SourceLeadGen,
				Opened:      leadRow.Int(slot.opensCol) > 0,
				Clicked:     leadRow.Get(slot.clickedCol) == "TRUE",
			},
		})
	}
}

func appendAppointmentChat(conv *Conversation, rows []sheets.Row) {
	for idx, row := range rows {
		conv.Timeline = append(conv.Timeline, TimelineEvent{
			ID:        fmt.Sprintf("apt-%d", idx),
			Type:      EventAppointmentChat,
			Timestamp: sheets.NormalizeDate(row.Get(layout.AptTimestamp)),
			Direction: parseDirection(row.Get(layout.AptDirection)),
			Body:      row.Get(layout.AptBody),
			Metadata: EventMetadata{
				SourceSheet: SourceAppointmentAI,
				AIReasoning: row.Get(layout.AptNotes),
			},
		})
	}
}

// parseDirection lowercases the sheet value and falls back to outbound
// for anything unrecognized.
func parseDirection(raw string) Direction {
	switch Direction(strings.ToLower(raw)) {
	case DirectionInbound:
		return DirectionInbound
	case DirectionSystem:
		return DirectionSystem
	default:
		return DirectionOutbound
	}
}

// sortTimeline orders events ascending by timestamp. The sort is stable,
// so events whose timestamps tie (or fail to parse) keep their source
// encounter order.
func sortTimeline(timeline []TimelineEvent) {
	sort.SliceStable(timeline, func(i, j int) bool {
		ti, _ := sheets.ParseTimestamp(timeline[i].Timestamp)
		tj, _ := sheets.ParseTimestamp(timeline[j].Timestamp)
		return ti.Before(tj)
	})
}

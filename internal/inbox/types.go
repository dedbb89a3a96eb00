package inbox

import "github.com/leadgen-os/pulse/internal/unify"

type EventType string

const (
	EventCampaignEmail   EventType = "CAMPAIGN_EMAIL"
	EventSalesChat       EventType = "SALES_CHAT"
	EventAppointmentChat EventType = "APPOINTMENT_CHAT"
	EventNote            EventType = "NOTE"
)

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
	DirectionSystem   Direction = "system"
)

// Source-sheet tags carried in event metadata.
const (
	SourceLeadGen       = "Lead Gen"
	SourceSalesAI       = "Sales AI"
	SourceAppointmentAI = "Appointment AI"
)

type MeetingDetails struct {
	Date     string `json:"date"`
	Link     string `json:"link"`
	Platform string `json:"platform"`
}

type EventMetadata struct {
	SourceSheet    string          `json:"sourceSheet"`
	Opened         bool            `json:"opened,omitempty"`
	Clicked        bool            `json:"clicked,omitempty"`
	AIReasoning    string          `json:"aiReasoning,omitempty"`
	MeetingDetails *MeetingDetails `json:"meetingDetails,omitempty"`
}

// TimelineEvent is one atomic interaction instance attributed to a lead.
type TimelineEvent struct {
	ID        string        `json:"id"`
	Type      EventType     `json:"type"`
	Timestamp string        `json:"timestamp"`
	Direction Direction     `json:"direction"`
	Body      string        `json:"body"`
	Subject   string        `json:"subject,omitempty"`
	Metadata  EventMetadata `json:"metadata"`
}

// Conversation aggregates every interaction for one lead email. Lead is
// nil when the email never appears in the lead-generation sheet; the
// conversation still exists, anchored by the sales-AI rows.
type Conversation struct {
	ID            string          `json:"id"`
	LeadEmail     string          `json:"leadEmail"`
	LeadName      string          `json:"leadName"`
	Lead          *unify.Lead     `json:"lead"`
	LastMessage   string          `json:"lastMessage"`
	LastTimestamp string          `json:"lastTimestamp"`
	RequiresHuman bool            `json:"requiresHuman"`
	Timeline      []TimelineEvent `json:"timeline"`
}

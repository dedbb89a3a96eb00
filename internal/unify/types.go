package unify

// SendSlot tracks one of the three fixed outreach-email positions for a
// lead.
type SendSlot struct {
	Sent      bool   `json:"sent"`
	SentAt    string `json:"sentAt"`
	Opened    bool   `json:"opened"`
	OpenCount int    `json:"openCount"`
	Clicked   bool   `json:"clicked"`
}

type EmailMetrics struct {
	Email1 SendSlot `json:"email1"`
	Email2 SendSlot `json:"email2"`
	Email3 SendSlot `json:"email3"`
}

// Lead is the unified per-lead view: the lead-generation row enriched with
// the most recent matching sales-AI row, joined by lowercased email.
type Lead struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Location  string `json:"location"`
	Industry  string `json:"industry"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	Source    string `json:"source"`

	WebsiteURL  string `json:"websiteUrl"`
	LinkedInURL string `json:"linkedinUrl"`

	ListName     string `json:"listName"`
	CampaignName string `json:"campaignName"`

	Status         string   `json:"status"`
	Score          int      `json:"score"`
	Analysed       bool     `json:"analysed"`
	ResearchReport string   `json:"researchReport"`
	Tags           []string `json:"tags"`
	OptedOut       bool     `json:"optedOut"`

	EmailsSentCount    int  `json:"emailsSentCount"`
	EmailsOpenedCount  int  `json:"emailsOpenedCount"`
	EmailsClickedCount int  `json:"emailsClickedCount"`
	Replied            bool `json:"replied"`
	Bounced            bool `json:"bounced"`

	EmailMetrics EmailMetrics `json:"emailMetrics"`

	SequenceStartDate string `json:"sequenceStartDate"`
	SequenceStatus    string `json:"sequenceStatus"`
	NextAction        string `json:"nextAction"`
	NextActionDate    string `json:"nextActionDate"`
	LastActionDate    string `json:"lastActionDate"`
	AssignedAgent     string `json:"assignedAgent"`

	// Present only when a sales-AI row matches this lead's email.
	ConversationThreadID string `json:"conversationThreadId,omitempty"`
	AIReasoning          string `json:"aiReasoning,omitempty"`
	RequiresHuman        bool   `json:"requiresHuman"`
	MeetingBooked        bool   `json:"meetingBooked"`
	MeetingBookedBy      string `json:"meetingBookedBy,omitempty"`
	MeetingDate          string `json:"meetingDate,omitempty"`
	MeetingLink          string `json:"meetingLink,omitempty"`
	MeetingPlatform      string `json:"meetingPlatform,omitempty"`
}

// Meeting is derived from sales-AI rows whose meeting-booked flag is set.
type Meeting struct {
	ID         string `json:"id"`
	LeadName   string `json:"leadName"`
	Email      string `json:"email"`
	BookedBy   string `json:"bookedBy"`
	IsAIBooked bool   `json:"isAiBooked"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Link       string `json:"link"`
	Platform   string `json:"platform"`
}

// WebLead is a direct mapping of the web-chat sheet; no cross-referencing.
type WebLead struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Intent    string `json:"intent"`
	Status    string `json:"status"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

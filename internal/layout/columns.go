// Package layout pins the column positions of every upstream sheet. The
// sheets have no header contract the code can read at runtime; each block
// of constants below is the versioned agreement between the automation
// workflows that write the sheet and this service. A layout change
// upstream means editing exactly one block here.
package layout

// Lead-generation sheet (LeadDataMaster, columns A..BP).
const (
	LeadID           = 0
	LeadListName     = 1
	LeadCampaignName = 2
	LeadSource       = 4
	LeadFirstName    = 5
	LeadLastName     = 6
	LeadEmail        = 7
	LeadPhone        = 8
	LeadCountry      = 9
	LeadLocation     = 10
	LeadIndustry     = 11
	LeadCompany      = 12
	LeadJobTitle     = 13
	LeadWebsiteURL   = 15
	LeadLinkedInURL  = 16
	LeadAnalysed     = 17 // "YES"
	LeadResearch     = 18

	LeadEmail1Body    = 19
	LeadEmail1Subject = 20
	LeadEmail2Body    = 21
	LeadEmail3Body    = 22
	LeadEmail3Subject = 23 // doubles as the sheet's own meeting-booked flag ("TRUE")
	LeadMeetingBooked = 23

	LeadEmail1Sent    = 26 // "Yes" or "TRUE"
	LeadEmail1SentAt  = 27
	LeadEmail1Opens   = 29
	LeadEmail1Clicked = 30 // "TRUE"
	LeadEmail2Sent    = 31
	LeadEmail2SentAt  = 32
	LeadEmail2Opens   = 34
	LeadEmail2Clicked = 35
	LeadEmail3Sent    = 36
	LeadEmail3SentAt  = 37
	LeadEmail3Opens   = 39
	LeadEmail3Clicked = 40

	LeadReplied        = 41 // "YES"
	LeadOptedOut       = 44 // "TRUE"
	LeadStatus         = 45
	LeadScore          = 46
	LeadAssignedAgent  = 47
	LeadSequenceStart  = 48
	LeadSequenceStatus = 49
	LeadNextAction     = 50
	LeadNextActionDate = 51
	LeadLastActionDate = 52
	LeadTags           = 54 // comma separated
	LeadBounced        = 55 // "TRUE"
)

// Sales-AI interaction sheet (Full_context test, columns A..BD). One row
// records a full turn: the lead's inbound message plus the AI's response.
const (
	SalesEmail           = 1
	SalesLeadName        = 2
	SalesTimestamp       = 5
	SalesInboundBody     = 8
	SalesAIReasoning     = 9
	SalesAIResponse      = 10
	SalesThreadID        = 12
	SalesBookedBy        = 22
	SalesMeetingBooked   = 23 // "TRUE"
	SalesMeetingDate     = 24
	SalesMeetingTime     = 25
	SalesMeetingLink     = 27
	SalesMeetingPlatform = 28
	SalesRequiresHuman   = 30 // "TRUE"
)

// Appointment-AI chat sheet.
const (
	AptEmail     = 4
	AptTimestamp = 6
	AptDirection = 7
	AptBody      = 9
	AptNotes     = 10
)

// Web-chat leads sheet (Lead Data).
const (
	WebID        = 0
	WebEmail     = 4
	WebTimestamp = 11
	WebIntent    = 14
	WebStatus    = 15
)

// Workflow log sheet, appended oldest-first by the automation runner.
const (
	LogID          = 0
	LogWorkflow    = 1
	LogMessage     = 4
	LogTimestamp   = 10
	LogDuration    = 12 // milliseconds
	LogStatus      = 13
	LogError       = 15
	LogNextRun     = 23
	LogHealthScore = 24
)

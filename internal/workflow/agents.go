package workflow

import (
	"math"
	"sort"
	"time"

	"github.com/leadgen-os/pulse/internal/sheets"
)

// Mode is how an agent is driven by the automation runner.
type Mode string

const (
	ModeContinuous Mode = "continuous"
	ModeTriggered  Mode = "triggered"
	ModeRealtime   Mode = "realtime"
	ModeScheduled  Mode = "scheduled"
)

// AgentConfig registers one known agent. Log rows are attributed by exact
// workflow-name match.
type AgentConfig struct {
	Name        string
	DisplayName string
	Mode        Mode
}

// Registry is the fixed set of agents the dashboard tracks, in display
// enumeration order (ties in the status sort resolve by this order).
var Registry = []AgentConfig{
	{Name: "Lead Scraper", DisplayName: "Lead Scraper", Mode: ModeContinuous},
	{Name: "Research Agent", DisplayName: "Research Agent", Mode: ModeTriggered},
	{Name: "Email Designer Agent", DisplayName: "Email Preparation Agent", Mode: ModeTriggered},
	{Name: "Email Outreach Agent", DisplayName: "Email Outreach Agent", Mode: ModeContinuous},
	{Name: "Inbox AI Agent", DisplayName: "Inbox AI (Sales)", Mode: ModeRealtime},
	{Name: "Sales AI Agent", DisplayName: "Sales AI Agent", Mode: ModeTriggered},
	{Name: "Customer services AI Agent", DisplayName: "Customer Support AI", Mode: ModeRealtime},
	{Name: "AI Appointment settler Agent", DisplayName: "AI Appointment Setter", Mode: ModeTriggered},
	{Name: "WebBot AI Agent", DisplayName: "Website AI Agent", Mode: ModeRealtime},
	{Name: "Meeting Reminder AI Agent", DisplayName: "Meeting Reminder AI", Mode: ModeScheduled},
	{Name: "Meeting preparation AI Agent", DisplayName: "Meeting Prep AI", Mode: ModeTriggered},
	{Name: "Analyzer AI Agent", DisplayName: "Analytics AI", Mode: ModeScheduled},
}

type AgentState string

const (
	StateRunning    AgentState = "running"
	StateStandby    AgentState = "standby"
	StateRecovering AgentState = "recovering"
	StateIdle       AgentState = "idle"
)

// recentWindow bounds the success-rate and duration aggregates to the
// most recent runs.
const recentWindow = 50

// AgentActivity is the derived per-agent aggregate over the workflow
// logs.
type AgentActivity struct {
	AgentName       string     `json:"agentName"`
	DisplayName     string     `json:"displayName"`
	Mode            Mode       `json:"mode"`
	Status          AgentState `json:"status"`
	LastAction      string     `json:"lastAction"`
	LastActionTime  string     `json:"lastActionTime"`
	SuccessRate     float64    `json:"successRate"`
	TotalRuns       int        `json:"totalRuns"`
	AvgDuration     float64    `json:"avgDuration"`
	NextRun         string     `json:"nextRun,omitempty"`
	NextRunLabel    string     `json:"nextRunLabel"`
	ProgressPercent float64    `json:"progressPercentage"`
	ShowProgressBar bool       `json:"showProgressBar"`
}

var statePriority = map[AgentState]int{
	StateRunning:    0,
	StateStandby:    1,
	StateRecovering: 2,
	StateIdle:       3,
}

// Activities derives the per-agent view from the full log set. Logs are
// attributed per registry agent, the most recent 50 feed the aggregates,
// and the state machine classifies by latest outcome, operating mode and
// recency.
func Activities(logs []Log, now time.Time) []AgentActivity {
	byAgent := make(map[string][]Log)
	for _, log := range logs {
		byAgent[log.WorkflowName] = append(byAgent[log.WorkflowName], log)
	}

	activities := make([]AgentActivity, 0, len(Registry))
	for _, agent := range Registry {
		agentLogs := byAgent[agent.Name]
		sort.SliceStable(agentLogs, func(i, j int) bool {
			ti, _ := sheets.ParseTimestamp(agentLogs[i].Timestamp)
			tj, _ := sheets.ParseTimestamp(agentLogs[j].Timestamp)
			return ti.After(tj)
		})

		recent := agentLogs
		if len(recent) > recentWindow {
			recent = recent[:recentWindow]
		}

		successRate := 100.0 // vacuous success on an empty sample
		avgDuration := 0.0
		if len(recent) > 0 {
			successes := 0
			totalDuration := 0
			for _, log := range recent {
				if log.Status == StatusSuccess {
					successes++
				}
				totalDuration += log.Duration
			}
			successRate = float64(successes) / float64(len(recent)) * 100
			avgDuration = float64(totalDuration) / float64(len(recent))
		}

		activity := AgentActivity{
			AgentName:      agent.Name,
			DisplayName:    agent.DisplayName,
			Mode:           agent.Mode,
			Status:         StateIdle,
			LastAction:     "Initialized",
			LastActionTime: now.UTC().Format(time.RFC3339),
			SuccessRate:    math.Round(successRate*10) / 10,
			TotalRuns:      len(agentLogs),
			AvgDuration:    avgDuration,
			NextRunLabel:   nextRunLabel(agent.Mode),
		}

		if len(agentLogs) > 0 {
			latest := agentLogs[0]
			if latest.Message != "" {
				activity.LastAction = latest.Message
			}
			if latest.Timestamp != "" {
				activity.LastActionTime = latest.Timestamp
			}
			activity.NextRun = latest.NextRun

			minutesSince := math.Inf(1)
			if t, ok := sheets.ParseTimestamp(latest.Timestamp); ok {
				minutesSince = now.Sub(t).Minutes()
			}

			switch {
			case latest.Status == StatusFailed:
				activity.Status = StateRecovering
			case agent.Mode == ModeRealtime:
				// Realtime agents are always listening; recency is
				// irrelevant.
				activity.Status = StateStandby
			case minutesSince < 5:
				activity.Status = StateRunning
				activity.ShowProgressBar = true
				activity.ProgressPercent = math.Min(95, minutesSince/5*100)
			case minutesSince < 60:
				activity.Status = StateStandby
			}
		}

		activities = append(activities, activity)
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return statePriority[activities[i].Status] < statePriority[activities[j].Status]
	})
	return activities
}

func nextRunLabel(mode Mode) string {
	switch mode {
	case ModeTriggered:
		return "On Trigger"
	case ModeRealtime:
		return "Continuous"
	default:
		return "Scheduled"
	}
}

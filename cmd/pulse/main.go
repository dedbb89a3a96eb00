package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leadgen-os/pulse/internal/api"
	"github.com/leadgen-os/pulse/internal/config"
	"github.com/leadgen-os/pulse/internal/inbox"
	"github.com/leadgen-os/pulse/internal/poll"
	"github.com/leadgen-os/pulse/internal/sheets"
	"github.com/leadgen-os/pulse/internal/unify"
	"github.com/leadgen-os/pulse/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("pulse starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.GoogleAPIKey == "" {
		slog.Error("GOOGLE_SHEETS_API_KEY is required")
		os.Exit(1)
	}

	client := sheets.New(cfg.GoogleAPIKey, slog.Default())
	unified := unify.NewAssembler(client, cfg.Sheets, slog.Default())
	conversations := inbox.New(unified)
	logs := workflow.NewAssembler(client, cfg.Sheets.WorkflowLogs, slog.Default())

	// One refresher per served view. They poll independently; the same
	// sheet may be fetched by several views per cycle.
	leadsRef := poll.NewRefresher("leads", cfg.PollLeads, unified.Leads, slog.Default())
	meetingsRef := poll.NewRefresher("meetings", cfg.PollLeads, unified.Meetings, slog.Default())
	webLeadsRef := poll.NewRefresher("web-leads", cfg.PollLeads, unified.WebLeads, slog.Default())
	convRef := poll.NewRefresher("conversations", cfg.PollInbox, conversations.Conversations, slog.Default())
	logsRef := poll.NewRefresher("workflow-logs", cfg.PollOps, logs.Logs, slog.Default())
	agentsRef := poll.NewRefresher("agents", cfg.PollOps, func(ctx context.Context) []workflow.AgentActivity {
		return workflow.Activities(logs.Logs(ctx), time.Now())
	}, slog.Default())

	go leadsRef.Run(ctx)
	go meetingsRef.Run(ctx)
	go webLeadsRef.Run(ctx)
	go convRef.Run(ctx)
	go logsRef.Run(ctx)
	go agentsRef.Run(ctx)

	srv := api.NewServer(cfg.Port, api.Views{
		Leads:         latest(leadsRef),
		Conversations: latest(convRef),
		Meetings:      latest(meetingsRef),
		WebLeads:      latest(webLeadsRef),
		WorkflowLogs:  latest(logsRef),
		Agents:        latest(agentsRef),
		Status: func() []api.ViewStatus {
			return []api.ViewStatus{
				viewStatus(leadsRef),
				viewStatus(convRef),
				viewStatus(meetingsRef),
				viewStatus(webLeadsRef),
				viewStatus(logsRef),
				viewStatus(agentsRef),
			}
		},
	})
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("pulse ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("pulse stopped")
}

// latest adapts a refresher to the read closure the API serves: the most
// recent snapshot's data, or nil before the first cycle.
func latest[T any](r *poll.Refresher[[]T]) func() []T {
	return func() []T {
		snap, ok := r.Latest()
		if !ok {
			return nil
		}
		return snap.Data
	}
}

func viewStatus[T any](r *poll.Refresher[T]) api.ViewStatus {
	status := api.ViewStatus{View: r.Name()}
	if snap, ok := r.Latest(); ok {
		status.SnapshotID = snap.ID.String()
		status.RefreshedAt = snap.RefreshedAt
	}
	return status
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

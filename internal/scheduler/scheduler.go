// Package scheduler runs the daily analysis pass on a cron schedule and
// wires its output to the notifier and recorder.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/notifier"
	"StockAdvisor/internal/recorder"
)

// Scheduler manages the cron task.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Groups   []analyzer.Group
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, groups []analyzer.Group, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: an,
		Groups:   groups,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterDaily registers the daily analysis task.
func (s *Scheduler) RegisterDaily(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily analysis")
	startedAt := time.Now()

	results, err := s.Analyzer.AnalyzeAll(s.Ctx, s.Groups)
	if err != nil {
		log.Printf("[ERROR] daily analysis: %v", err)
		if serr := s.Notifier.SendAlert(s.Ctx, fmt.Sprintf("❌ Daily analysis failed: %v", err)); serr != nil {
			log.Printf("[ERROR] send alert: %v", serr)
		}
		return
	}

	for _, res := range results {
		if err := s.Notifier.SendGroupReport(s.Ctx, res); err != nil {
			log.Printf("[ERROR] send report for %s: %v", res.Group, err)
		}
	}
	if err := s.Notifier.SendRunSummary(s.Ctx, results); err != nil {
		log.Printf("[ERROR] send run summary: %v", err)
	}

	if err := s.Recorder.RecordRun(&recorder.RunRecord{
		RunID:     uuid.NewString(),
		StartedAt: startedAt,
		Results:   results,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		go s.RunNow()
		return "Running analysis now..."
	default:
		return "Available commands:\n• /run - run the analysis now"
	}
}

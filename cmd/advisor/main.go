package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/config"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/notifier"
	"StockAdvisor/internal/recorder"
	"StockAdvisor/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockAdvisor starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and analyzer
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	an := analyzer.New(fetcher, cfg.Fetch.LookbackDays)

	groups := make([]analyzer.Group, 0, len(cfg.Groups))
	for _, g := range cfg.Groups {
		groups = append(groups, analyzer.Group{
			Name:             g.Name,
			Kind:             model.SecurityKind(g.Kind),
			Symbols:          g.Symbols,
			SecurityNames:    g.SecurityNames,
			InvestmentAmount: g.InvestmentAmount,
		})
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, an, groups, tn, rec)
	if err := sched.RegisterDaily(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockAdvisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockAdvisor stopped")
}

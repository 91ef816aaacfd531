package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"

	_ "modernc.org/sqlite"

	"StockAdvisor/internal/analyzer"
)

// SQLiteRecorder persists analysis runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for concurrent reads while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id       TEXT PRIMARY KEY,
			started_at   INTEGER NOT NULL,
			total        INTEGER,
			buy          INTEGER,
			sell         INTEGER,
			hold         INTEGER,
			insufficient INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS group_stats (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL,
			group_name   TEXT NOT NULL,
			kind         TEXT,
			total        INTEGER,
			buy          INTEGER,
			sell         INTEGER,
			hold         INTEGER,
			insufficient INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_group_stats_run ON group_stats(run_id)`,

		`CREATE TABLE IF NOT EXISTS suggestions (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT NOT NULL,
			group_name        TEXT NOT NULL,
			symbol            TEXT NOT NULL,
			security_name     TEXT,
			classification    TEXT,
			reason            TEXT,
			rule_name         TEXT,
			investment_note   TEXT,
			rsi               REAL,
			mfi               REAL,
			ema9              REAL,
			ema26             REAL,
			tsi               REAL,
			tsi_signal        REAL,
			cross_state       TEXT,
			tsi_state         TEXT,
			gap_trend         TEXT,
			crossover_warning INTEGER,
			tsi_buy_signal    INTEGER,
			tsi_sell_signal   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_suggestions_run ON suggestions(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_suggestions_symbol ON suggestions(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps an absent (NaN) indicator value to SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// RecordRun writes the run summary, per-group statistics, and every
// suggestion in one transaction.
func (r *SQLiteRecorder) RecordRun(run *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	totals := analyzer.Totals(run.Results)
	if _, err := tx.Exec(`INSERT INTO runs
		(run_id, started_at, total, buy, sell, hold, insufficient)
		VALUES (?,?,?,?,?,?,?)`,
		run.RunID, run.StartedAt.Unix(), totals.Total,
		totals.BuyCount, totals.SellCount, totals.HoldCount, totals.InsufficientDataCount,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, res := range run.Results {
		if _, err := tx.Exec(`INSERT INTO group_stats
			(run_id, group_name, kind, total, buy, sell, hold, insufficient)
			VALUES (?,?,?,?,?,?,?,?)`,
			run.RunID, res.Group, string(res.Kind), res.Stats.Total,
			res.Stats.BuyCount, res.Stats.SellCount, res.Stats.HoldCount,
			res.Stats.InsufficientDataCount,
		); err != nil {
			return fmt.Errorf("insert group stats: %w", err)
		}

		for _, s := range res.Suggestions {
			if _, err := tx.Exec(`INSERT INTO suggestions
				(run_id, group_name, symbol, security_name, classification, reason, rule_name,
				 investment_note, rsi, mfi, ema9, ema26, tsi, tsi_signal,
				 cross_state, tsi_state, gap_trend, crossover_warning, tsi_buy_signal, tsi_sell_signal)
				VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
				run.RunID, res.Group, s.Symbol, s.SecurityName,
				string(s.Classification), s.Reason, s.RuleName, s.InvestmentNote,
				nullable(s.LatestRSI), nullable(s.LatestMFI),
				nullable(s.LatestEMA9), nullable(s.LatestEMA26),
				nullable(s.LatestTSI), nullable(s.LatestTSISignal),
				s.CrossState, s.TSIState, s.GapTrend,
				s.CrossoverWarning, s.TSIBuySignal, s.TSISellSignal,
			); err != nil {
				return fmt.Errorf("insert suggestion %s: %w", s.Symbol, err)
			}
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

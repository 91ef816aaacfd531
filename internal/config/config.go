package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockAdvisor/internal/model"
)

// GroupConfig describes one watchlist group.
type GroupConfig struct {
	Name             string            `yaml:"name"`
	Kind             string            `yaml:"kind"` // "stock" or "etf"
	Symbols          []string          `yaml:"symbols"`
	SecurityNames    map[string]string `yaml:"security_names"`
	InvestmentAmount int64             `yaml:"investment_amount"` // whole rupees
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Fetch struct {
		LookbackDays int `yaml:"lookback_days"`
	} `yaml:"fetch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Groups []GroupConfig `yaml:"groups"`
	Proxy  string        `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Fetch.LookbackDays = n
		}
	}

	// Defaults
	if cfg.Schedule.DailyCron == "" {
		// after NSE close, Mon-Fri
		cfg.Schedule.DailyCron = "0 0 18 * * 1-5"
	}
	if cfg.Fetch.LookbackDays == 0 {
		cfg.Fetch.LookbackDays = 365
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stock_advisor.db"
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = defaultGroups()
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one watchlist group is required")
	}
	for _, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("group name is required")
		}
		if k := model.SecurityKind(g.Kind); k != model.KindStock && k != model.KindETF {
			return fmt.Errorf("group %s: kind must be %q or %q", g.Name, model.KindStock, model.KindETF)
		}
		if len(g.Symbols) == 0 {
			return fmt.Errorf("group %s: symbols must not be empty", g.Name)
		}
	}
	return nil
}

// defaultGroups is the NSE watchlist used when no groups are configured.
func defaultGroups() []GroupConfig {
	return []GroupConfig{
		{
			Name:    "Stocks",
			Kind:    string(model.KindStock),
			Symbols: []string{"VMM.NS", "MEDANTA.NS", "PERSISTENT.NS", "COFORGE.NS", "BALKRISIND.NS", "MFSL.NS", "HDFCBANK.NS", "ICICIBANK.NS", "BLUESTARCO.NS"},
			SecurityNames: map[string]string{
				"VMM.NS":        "Vishal Mega Mart",
				"MEDANTA.NS":    "Medanta",
				"PERSISTENT.NS": "Persistent Systems",
				"COFORGE.NS":    "Coforge",
				"BALKRISIND.NS": "Balkrishna Industries",
				"MFSL.NS":       "Max Financial Services",
				"HDFCBANK.NS":   "HDFC Bank",
				"ICICIBANK.NS":  "ICICI Bank",
				"BLUESTARCO.NS": "Blue Star Co.",
			},
			InvestmentAmount: 25000,
		},
		{
			Name:    "ETFs",
			Kind:    string(model.KindETF),
			Symbols: []string{"MAHKTECH.NS", "MAFANG.NS", "PHARMABEES.NS", "NIFTYBEES.NS", "GOLDBEES.NS", "ICICIB22.NS", "ITBEES.NS", "HDFCSML250.NS", "PSUBANK.NS", "AUTOBEES.NS", "GROWWRAIL.NS", "MODEFENCE.NS"},
			SecurityNames: map[string]string{
				"MAHKTECH.NS":   "Hang Seng Tech ETF",
				"MAFANG.NS":     "NYSE FANG ETF",
				"PHARMABEES.NS": "Nippon Pharma ETF",
				"NIFTYBEES.NS":  "Nifty 50",
				"GOLDBEES.NS":   "Gold ETF",
				"ITBEES.NS":     "Nifty IT ETF",
				"HDFCSML250.NS": "SmallCap 250 Index Fund",
				"PSUBANK.NS":    "PSU Bank ETF",
				"AUTOBEES.NS":   "Auto ETF",
				"GROWWRAIL.NS":  "Railway ETF",
				"MODEFENCE.NS":  "Defence ETF",
			},
			InvestmentAmount: 50000,
		},
		{
			Name:    "Long Term Stocks",
			Kind:    string(model.KindStock),
			Symbols: []string{"RELIANCE.NS", "TCS.NS", "INFY.NS", "HDFCBANK.NS", "ICICIBANK.NS", "HINDUNILVR.NS", "BHARTIARTL.NS", "ITC.NS", "KOTAKBANK.NS", "LT.NS"},
			SecurityNames: map[string]string{
				"RELIANCE.NS":   "Reliance Industries",
				"TCS.NS":        "Tata Consultancy Services",
				"INFY.NS":       "Infosys",
				"HDFCBANK.NS":   "HDFC Bank",
				"ICICIBANK.NS":  "ICICI Bank",
				"HINDUNILVR.NS": "Hindustan Unilever",
				"BHARTIARTL.NS": "Bharti Airtel",
				"ITC.NS":        "ITC Limited",
				"KOTAKBANK.NS":  "Kotak Mahindra Bank",
				"LT.NS":         "Larsen & Toubro",
			},
			InvestmentAmount: 25000,
		},
	}
}

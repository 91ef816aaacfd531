package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"StockAdvisor/internal/analyzer"
)

const defaultAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers suggestion reports and run summaries to one
// Telegram chat.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
	apiBase  string        // swapped for a test server in tests
	retries  int           // attempts beyond the first
	backoff  time.Duration // base delay, doubled per attempt
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		apiBase: defaultAPIBase,
		retries: 3,
		backoff: time.Second,
	}
}

// sendMessage is the Telegram sendMessage payload. Reports render as HTML
// so group and security names can be bolded; link previews are disabled
// because suggestion lines mention tickers Telegram would try to expand.
type sendMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Send posts one message to the configured chat.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessage{
		ChatID:                t.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.botToken), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendGroupReport formats and delivers one group's suggestions.
func (t *TelegramNotifier) SendGroupReport(ctx context.Context, res *analyzer.GroupResult) error {
	return t.sendWithRetry(ctx, FormatGroupReport(res))
}

// SendRunSummary formats and delivers the cross-group totals of a run.
func (t *TelegramNotifier) SendRunSummary(ctx context.Context, results []*analyzer.GroupResult) error {
	return t.sendWithRetry(ctx, FormatRunSummary(results))
}

// SendAlert delivers an operational message (run failures, command
// replies) with the same retry policy as reports.
func (t *TelegramNotifier) SendAlert(ctx context.Context, text string) error {
	return t.sendWithRetry(ctx, text)
}

// sendWithRetry retries transient failures with exponential backoff.
func (t *TelegramNotifier) sendWithRetry(ctx context.Context, text string) error {
	var lastErr error
	for i := 0; i <= t.retries; i++ {
		if err := t.Send(ctx, text); err != nil {
			lastErr = err
			wait := t.backoff * time.Duration(1<<uint(i))
			log.Printf("[WARN] Telegram send failed (attempt %d/%d): %v, retrying in %v", i+1, t.retries+1, err, wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed: %w", t.retries+1, lastErr)
}

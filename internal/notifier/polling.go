package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// telegramUpdates is the getUpdates response structure.
type telegramUpdates struct {
	OK     bool `json:"ok"`
	Result []struct {
		UpdateID int64 `json:"update_id"`
		Message  struct {
			Text string `json:"text"`
			Chat struct {
				ID int64 `json:"id"`
			} `json:"chat"`
		} `json:"message"`
	} `json:"result"`
}

// StartPolling long-polls for chat commands and replies with handler's
// output. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler func(command string) string) {
	var offset int64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := t.getUpdates(offset)
		if err != nil {
			log.Printf("[WARN] Telegram polling: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, u := range updates.Result {
			offset = u.UpdateID + 1
			if u.Message.Text == "" {
				continue
			}
			if reply := handler(u.Message.Text); reply != "" {
				if err := t.Send(ctx, reply); err != nil {
					log.Printf("[WARN] Telegram reply: %v", err)
				}
			}
		}
	}
}

func (t *TelegramNotifier) getUpdates(offset int64) (*telegramUpdates, error) {
	apiURL := fmt.Sprintf("%s/bot%s/getUpdates?timeout=25&offset=%d", t.apiBase, t.botToken, offset)
	resp, err := t.client.Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get updates: status %d", resp.StatusCode)
	}
	var updates telegramUpdates
	if err := json.NewDecoder(resp.Body).Decode(&updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return &updates, nil
}

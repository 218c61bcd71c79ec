package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

const (
	colorSuccess = 0x2CBB5D
	colorFailure = 0xF63636
)

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Send posts the notification to Discord as a single embed.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	color := colorSuccess
	if notification.Failed {
		color = colorFailure
	}

	embed := map[string]any{
		"title":       truncate(notification.Title, 256),
		"description": truncate(notification.Description, 4096),
		"fields":      convertFields(notification.Fields),
		"timestamp":   w.now().UTC().Format(time.RFC3339),
		"color":       color,
		"footer": map[string]string{
			"text": "LeetLink",
		},
	}
	if notification.URL != "" {
		embed["url"] = notification.URL
	}

	body, err := json.Marshal(map[string]any{
		"content": "",
		"embeds":  []map[string]any{embed},
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	w.logger.Info(ctx, "notification sent to discord", "failed", notification.Failed)
	return nil
}

// Discord rejects fields with an empty name or value.
func convertFields(fields []model.NotificationField) []map[string]any {
	result := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		if field.Name == "" || field.Value == "" {
			continue
		}
		result = append(result, map[string]any{
			"name":   truncate(field.Name, 256),
			"value":  truncate(field.Value, 1024),
			"inline": field.Inline,
		})
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return strings.TrimSpace(value[:limit-3]) + "..."
}

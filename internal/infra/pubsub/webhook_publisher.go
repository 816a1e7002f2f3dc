package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"warranty/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultWebhookTimeout = 10 * time.Second

	// Only the head of a rejected response is kept for the error.
	maxErrorBody = 512

	HeaderEventID    = "X-Reminder-Event-Id"
	HeaderWarrantyID = "X-Warranty-Id"
	HeaderRequestID  = "X-Request-Id"
)

// webhookPublisher delivers each reminder as a JSON POST of service.ReminderEvent.
type webhookPublisher struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebhookPublisher posts reminders to url. A non-positive timeout falls back to 10s.
func NewWebhookPublisher(url string, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookPublisher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (p *webhookPublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode reminder event")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build reminder request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventID, event.EventID)
	req.Header.Set(HeaderWarrantyID, event.WarrantyID)
	if event.RequestID != "" {
		req.Header.Set(HeaderRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "deliver reminder %s", event.EventID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("reminder webhook rejected %s with status %d: %s",
			event.EventID, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	p.logger.Debug("Reminder delivered",
		slog.String("event_id", event.EventID),
		slog.String("warranty_id", event.WarrantyID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (p *webhookPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}

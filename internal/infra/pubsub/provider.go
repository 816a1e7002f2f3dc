package pubsub

import (
	"context"
	"log/slog"

	"warranty/config"
	"warranty/internal/domain/constants"
	"warranty/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when reminder publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	p.logger.Debug("Reminder publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.String("warranty_id", event.WarrantyID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Reminder publishing not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case constants.PubSubProviderWebhook:
		if cfg.WebhookURL == "" {
			return nil, errors.New("webhook url is required for webhook provider")
		}
		logger.Info("Publishing reminders to webhook",
			slog.String("url", cfg.WebhookURL),
		)

		publisher = NewWebhookPublisher(cfg.WebhookURL, cfg.WebhookTimeout, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the reminder publisher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

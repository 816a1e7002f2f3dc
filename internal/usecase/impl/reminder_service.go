package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "warranty/internal/delivery/context"
	"warranty/internal/domain/entity"
	"warranty/internal/domain/expiry"
	"warranty/internal/domain/message"
	"warranty/internal/domain/repository"
	"warranty/internal/domain/service"
	"warranty/internal/domain/share"
	"warranty/internal/errors"
	"warranty/internal/usecase"

	"github.com/google/uuid"
)

type reminderService struct {
	warrantyRepo repository.WarrantyRepository
	publisher    service.EventPublisher
	calendar     service.Calendar
	logger       *slog.Logger
}

// NewReminderService creates a new reminder service instance
func NewReminderService(
	warrantyRepo repository.WarrantyRepository,
	publisher service.EventPublisher,
	calendar service.Calendar,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	return &reminderService{
		warrantyRepo: warrantyRepo,
		publisher:    publisher,
		calendar:     calendar,
		logger:       logger,
	}
}

// Sweep publishes a reminder event for every warranty that is expiring soon
func (s *reminderService) Sweep(ctx context.Context) (usecase.SweepResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	warranties, err := s.warrantyRepo.FindAll(ctx)
	if err != nil {
		return usecase.SweepResult{}, errors.Wrap(err, "failed to load warranties for reminder sweep")
	}

	today := s.calendar.Today()
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	var result usecase.SweepResult
	for _, w := range warranties {
		result.Scanned++

		info := expiry.Classify(w, today)
		if info.Status != entity.StatusExpiringSoon {
			continue
		}
		result.Due++

		event := newReminderEvent(w, info, today)
		event.RequestID = requestID

		if err := s.publisher.PublishReminderEvent(ctx, event); err != nil {
			result.Failed++
			// Continue with the remaining warranties
			logger.Error("Failed to publish reminder event",
				slog.String("warranty_id", w.ID),
				slog.Any("error", err),
			)

			continue
		}
		result.Published++
	}

	logger.Info("Reminder sweep finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("due", result.Due),
		slog.Int("published", result.Published),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func newReminderEvent(w *entity.Warranty, info entity.StatusInfo, today time.Time) *service.ReminderEvent {
	msg := message.Compose(w, message.ModeReminder, today)
	links := share.BuildLinks(w.Email, w.PhoneNumber, msg, share.Channels{
		Email:    strings.TrimSpace(w.Email) != "",
		WhatsApp: share.HasDialableNumber(w.PhoneNumber),
	})

	return &service.ReminderEvent{
		EventID:      uuid.New().String(),
		WarrantyID:   w.ID,
		CustomerName: w.CustomerName,
		Email:        w.Email,
		PhoneNumber:  w.PhoneNumber,
		ExpiresOn:    info.ExpiresOn.Format(isoDateLayout),
		DaysLeft:     expiry.DaysRemaining(info, today),
		Subject:      msg.Subject,
		Body:         msg.Body,
		EmailLink:    links.Email,
		WhatsAppLink: links.WhatsApp,
	}
}

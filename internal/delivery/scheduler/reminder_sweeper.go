// Package scheduler runs the opt-in reminder sweep on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"warranty/config"
	"warranty/internal/delivery"
	deliverycontext "warranty/internal/delivery/context"
	"warranty/internal/domain/lifecycle"
	"warranty/internal/errors"
	"warranty/internal/usecase"
	"warranty/internal/util"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// sweepTimeout bounds a single sweep run.
const sweepTimeout = 5 * time.Minute

// SweeperParams holds dependencies for the reminder sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

type reminderSweeper struct {
	cron       *cron.Cron
	schedule   string
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// NewReminderSweeper schedules ReminderUsecase.Sweep. When the sweep is not
// enabled the returned delivery does nothing.
func NewReminderSweeper(params SweeperParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Reminder
	if cfg == nil || !cfg.Enabled {
		return &disabledSweeper{logger: params.Logger}, nil
	}

	location, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	s := &reminderSweeper{
		cron:       cron.New(cron.WithLocation(location)),
		schedule:   cfg.Schedule,
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
		done:       make(chan struct{}),
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid reminder schedule %q", cfg.Schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid reminder timezone %q", name)
	}

	return location, nil
}

// Serve starts the cron scheduler and blocks until the sweeper is stopped.
func (s *reminderSweeper) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil
	}
	s.cron.Start()
	s.mu.Unlock()

	s.logger.Info("Starting reminder sweeper", slog.String("schedule", s.schedule))
	<-s.done

	return nil
}

func (s *reminderSweeper) stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil
	}
	s.stopped = true
	close(s.done)
	cronCtx := s.cron.Stop()
	s.mu.Unlock()

	s.logger.Info("Shutting down reminder sweeper")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-cronCtx.Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "reminder sweep still running at shutdown")
	}
}

func (s *reminderSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	ctx, logger := deliverycontext.WithScope(ctx, s.logger, "sweep-"+uuid.New().String())

	start := time.Now()
	if _, err := s.reminderUC.Sweep(ctx); err != nil {
		logger.Error("Reminder sweep failed",
			slog.Any("error", err),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)

		return
	}

	logger.Debug("Reminder sweep done", slog.String("elapsed", util.FormatDuration(time.Since(start))))
}

// disabledSweeper stands in when reminders are turned off.
type disabledSweeper struct {
	logger *slog.Logger
}

func (d *disabledSweeper) Serve(ctx context.Context) error {
	d.logger.Info("Reminder sweeper disabled")

	return nil
}

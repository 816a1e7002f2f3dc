package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"warranty/config"
	deliverycontext "warranty/internal/delivery/context"
	"warranty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

// countingReminders records the contexts Sweep was called with.
type countingReminders struct {
	mu         sync.Mutex
	requestIDs []string
	err        error
}

func (r *countingReminders) Sweep(ctx context.Context) (usecase.SweepResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requestIDs = append(r.requestIDs, deliverycontext.GetRequestIDFromContext(ctx))

	return usecase.SweepResult{}, r.err
}

func newParams(t *testing.T, reminder *config.ReminderConfig, uc usecase.ReminderUsecase) (SweeperParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return SweeperParams{
		Lc:         lc,
		Cfg:        &config.Config{Reminder: reminder},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReminderUC: uc,
	}, lc
}

func TestNewReminderSweeper_Disabled(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, reminder := range []*config.ReminderConfig{nil, {Enabled: false, Schedule: "0 9 * * *"}} {
		params, _ := newParams(t, reminder, &countingReminders{})

		d, err := NewReminderSweeper(params)
		require.NoError(t, err)
		assert.IsType(t, &disabledSweeper{}, d)
		assert.NoError(t, d.Serve(context.Background()))
	}
}

func TestNewReminderSweeper_InvalidConfig(t *testing.T) {
	params, _ := newParams(t, &config.ReminderConfig{Enabled: true, Schedule: "every day"}, &countingReminders{})
	_, err := NewReminderSweeper(params)
	assert.ErrorContains(t, err, "invalid reminder schedule")

	params, _ = newParams(t, &config.ReminderConfig{Enabled: true, Schedule: "0 9 * * *", Timezone: "Mars/Olympus"}, &countingReminders{})
	_, err = NewReminderSweeper(params)
	assert.ErrorContains(t, err, "invalid reminder timezone")
}

func TestReminderSweeper_ServeUntilStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	params, lc := newParams(t, &config.ReminderConfig{Enabled: true, Schedule: "0 9 * * *", Timezone: "UTC"}, &countingReminders{})

	d, err := NewReminderSweeper(params)
	require.NoError(t, err)

	sweeper, ok := d.(*reminderSweeper)
	require.True(t, ok)
	assert.Len(t, sweeper.cron.Entries(), 1)

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()

	lc.RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}

	// Serving after stop returns at once.
	assert.NoError(t, d.Serve(context.Background()))
}

func TestReminderSweeper_SweepScopesEachRun(t *testing.T) {
	reminders := &countingReminders{err: errors.New("store offline")}
	params, _ := newParams(t, &config.ReminderConfig{Enabled: true, Schedule: "@daily"}, reminders)

	d, err := NewReminderSweeper(params)
	require.NoError(t, err)

	sweeper := d.(*reminderSweeper)
	sweeper.sweep()
	sweeper.sweep()

	require.Len(t, reminders.requestIDs, 2)
	assert.Regexp(t, `^sweep-`, reminders.requestIDs[0])
	assert.NotEqual(t, reminders.requestIDs[0], reminders.requestIDs[1])
}

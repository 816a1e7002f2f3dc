package main

import (
	"context"
	"log/slog"
	"os"

	"warranty/config"
	"warranty/internal/delivery"
	"warranty/internal/delivery/api"
	"warranty/internal/delivery/api/router/handler"
	"warranty/internal/delivery/scheduler"
	"warranty/internal/domain/repository"
	"warranty/internal/domain/service"
	"warranty/internal/infra/clock"
	"warranty/internal/infra/launcher"
	logs "warranty/internal/infra/log"
	"warranty/internal/infra/pubsub"
	"warranty/internal/infra/qrcode"
	"warranty/internal/infra/storage"
	"warranty/internal/usecase"
	"warranty/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(appOptions()).Run()
}

// appOptions assembles the whole application graph.
func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		pubsub.Module,
		fx.Invoke(
			migrateOnStart,
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			repository.NewStoreLock,
			storage.NewWarrantyRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewCalendar,
			launcher.NewLinkOpener,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWarrantyService,
			impl.NewShareService,
			impl.NewMigrationService,
			impl.NewReminderService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWarrantyHandler,
			handler.NewShareHandler,
			handler.NewMigrationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewReminderSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrateOnStart upgrades legacy stored records once, before any delivery
// serves a request.
func migrateOnStart(lc fx.Lifecycle, migrationUC usecase.MigrationUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			report, err := migrationUC.RunOnce(ctx)
			if err != nil {
				return err
			}

			logger.Info("Record store checked",
				slog.Int("scanned", report.Scanned),
				slog.Int("migrated", report.Migrated),
				slog.Int("skipped", report.Skipped),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

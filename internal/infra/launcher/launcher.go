// Package launcher opens share links on the host running the service.
package launcher

import (
	"context"
	"log/slog"

	"warranty/config"
	"warranty/internal/domain/constants"
	"warranty/internal/domain/service"
	"warranty/internal/domain/share"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for LinkOpener, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewLinkOpener creates a LinkOpener based on configuration
func NewLinkOpener(params Params) (service.LinkOpener, error) {
	opener := constants.OpenerLog
	if params.Config.Share != nil && params.Config.Share.Opener != "" {
		opener = params.Config.Share.Opener
	}

	switch opener {
	case constants.OpenerLog:
		params.Logger.Info("Share links are logged, not opened")

		return NewLogOpener(params.Logger), nil
	case constants.OpenerSystem:
		params.Logger.Info("Share links are opened with the desktop handler")

		return NewSystemOpener(params.Logger), nil
	default:
		return nil, errors.Errorf("unknown share opener: %s", opener)
	}
}

// logOpener records links without opening them. It suits headless hosts where
// the API caller opens the returned links itself.
type logOpener struct {
	logger *slog.Logger
}

// NewLogOpener creates a LinkOpener that only logs.
func NewLogOpener(logger *slog.Logger) service.LinkOpener {
	return &logOpener{logger: logger}
}

func (o *logOpener) Open(ctx context.Context, channel share.Channel, uri string) error {
	o.logger.InfoContext(ctx, "Share link ready",
		slog.String("channel", channel.String()),
		slog.String("uri", uri),
	)

	return nil
}

package launcher

import (
	"context"
	"log/slog"
	"os/exec"
	"runtime"

	"warranty/internal/domain/service"
	"warranty/internal/domain/share"

	"github.com/pkg/errors"
)

// commandFunc builds the command that opens uri.
type commandFunc func(ctx context.Context, uri string) *exec.Cmd

// systemOpener hands links to the desktop's default URL handler.
type systemOpener struct {
	logger  *slog.Logger
	command commandFunc
}

// NewSystemOpener creates a LinkOpener backed by the platform's URL handler.
func NewSystemOpener(logger *slog.Logger) service.LinkOpener {
	return &systemOpener{
		logger:  logger,
		command: platformCommand(runtime.GOOS),
	}
}

func platformCommand(goos string) commandFunc {
	switch goos {
	case "darwin":
		return func(ctx context.Context, uri string) *exec.Cmd {
			return exec.CommandContext(ctx, "open", uri)
		}
	case "windows":
		return func(ctx context.Context, uri string) *exec.Cmd {
			return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", uri)
		}
	default:
		return func(ctx context.Context, uri string) *exec.Cmd {
			return exec.CommandContext(ctx, "xdg-open", uri)
		}
	}
}

func (o *systemOpener) Open(ctx context.Context, channel share.Channel, uri string) error {
	if uri == "" {
		return errors.Errorf("empty %s link", channel)
	}

	// The handler outlives the request that asked for it.
	cmd := o.command(context.WithoutCancel(ctx), uri)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to open %s link", channel)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			o.logger.Warn("Link handler exited with error",
				slog.String("channel", channel.String()),
				slog.Any("error", err),
			)
		}
	}()

	o.logger.Debug("Share link opened",
		slog.String("channel", channel.String()),
		slog.String("handler", cmd.Path),
	)

	return nil
}

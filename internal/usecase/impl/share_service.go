package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"warranty/config"
	deliverycontext "warranty/internal/delivery/context"
	"warranty/internal/domain/entity"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/message"
	"warranty/internal/domain/repository"
	"warranty/internal/domain/service"
	"warranty/internal/domain/share"
	"warranty/internal/errors"
	"warranty/internal/usecase"

	"go.uber.org/fx"
)

const defaultDispatchDelay = time.Second

// afterFunc schedules f after d, like time.AfterFunc.
type afterFunc func(d time.Duration, f func())

// ShareServiceParams holds dependencies for the share service, injected by Fx.
type ShareServiceParams struct {
	fx.In

	WarrantyRepo repository.WarrantyRepository
	Opener       service.LinkOpener
	QRCode       service.QRCodeService
	Calendar     service.Calendar
	Config       *config.Config
	Logger       *slog.Logger
}

type shareService struct {
	warrantyRepo repository.WarrantyRepository
	opener       service.LinkOpener
	qrcode       service.QRCodeService
	calendar     service.Calendar
	logger       *slog.Logger
	delay        time.Duration
	after        afterFunc
}

// NewShareService creates a new share service instance
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	delay := defaultDispatchDelay
	if params.Config.Share != nil && params.Config.Share.DispatchDelay > 0 {
		delay = params.Config.Share.DispatchDelay
	}

	return &shareService{
		warrantyRepo: params.WarrantyRepo,
		opener:       params.Opener,
		qrcode:       params.QRCode,
		calendar:     params.Calendar,
		logger:       params.Logger,
		delay:        delay,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Preview composes the message and builds links without opening anything
func (s *shareService) Preview(ctx context.Context, id string, mode message.Mode, channels share.Channels) (*usecase.ShareResult, error) {
	w, err := findWarranty(ctx, s.warrantyRepo, id)
	if err != nil {
		return nil, err
	}

	return s.compose(w, mode, channels), nil
}

// Share composes the message and opens the selected channels
func (s *shareService) Share(ctx context.Context, id string, mode message.Mode, channels share.Channels) (*usecase.ShareResult, error) {
	if !channels.Any() {
		return &usecase.ShareResult{WarrantyID: id, Mode: mode.String()}, nil
	}

	w, err := findWarranty(ctx, s.warrantyRepo, id)
	if err != nil {
		return nil, err
	}

	if err := checkTargets(w, channels); err != nil {
		return nil, err
	}

	result := s.compose(w, mode, channels)
	if err := s.dispatch(ctx, result.Links, channels); err != nil {
		return nil, err
	}

	return result, nil
}

// ShareQR renders the WhatsApp link of the message as a PNG QR code
func (s *shareService) ShareQR(ctx context.Context, id string, mode message.Mode) ([]byte, error) {
	w, err := findWarranty(ctx, s.warrantyRepo, id)
	if err != nil {
		return nil, err
	}

	channels := share.Channels{WhatsApp: true}
	if err := checkTargets(w, channels); err != nil {
		return nil, err
	}

	result := s.compose(w, mode, channels)

	png, err := s.qrcode.GenerateLinkQR(result.Links.WhatsApp)
	if err != nil {
		return nil, domainerrors.ErrQRCodeFailed.WithDetails(err.Error())
	}

	return png, nil
}

func (s *shareService) compose(w *entity.Warranty, mode message.Mode, channels share.Channels) *usecase.ShareResult {
	msg := message.Compose(w, mode, s.calendar.Today())

	return &usecase.ShareResult{
		WarrantyID: w.ID,
		Mode:       mode.String(),
		Message:    msg,
		Links:      share.BuildLinks(w.Email, w.PhoneNumber, msg, channels),
	}
}

// dispatch opens the links. With both channels selected the mail client opens
// first and WhatsApp follows after s.delay, so the first handler is not
// displaced before it comes up.
func (s *shareService) dispatch(ctx context.Context, links share.Links, channels share.Channels) error {
	if channels.Email {
		if err := s.opener.Open(ctx, share.ChannelEmail, links.Email); err != nil {
			return domainerrors.ErrShareFailed.WithDetails(err.Error())
		}
	}

	if !channels.WhatsApp {
		return nil
	}

	if !channels.Email {
		if err := s.opener.Open(ctx, share.ChannelWhatsApp, links.WhatsApp); err != nil {
			return domainerrors.ErrShareFailed.WithDetails(err.Error())
		}

		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	deferredCtx := context.WithoutCancel(ctx)
	s.after(s.delay, func() {
		if err := s.opener.Open(deferredCtx, share.ChannelWhatsApp, links.WhatsApp); err != nil {
			logger.Error("Deferred WhatsApp dispatch failed", slog.Any("error", errors.WithStack(err)))
		}
	})

	return nil
}

// checkTargets rejects channels the record has no contact for.
func checkTargets(w *entity.Warranty, channels share.Channels) error {
	if channels.Email && strings.TrimSpace(w.Email) == "" {
		return domainerrors.ErrShareTargetMissing.WithDetails("the record has no email address")
	}
	if channels.WhatsApp && !share.HasDialableNumber(w.PhoneNumber) {
		return domainerrors.ErrShareTargetMissing.WithDetails("the record has no phone number")
	}

	return nil
}

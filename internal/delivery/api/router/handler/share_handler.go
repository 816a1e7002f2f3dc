package handler

import (
	"net/http"
	"strings"

	"warranty/internal/delivery/api/response"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/message"
	"warranty/internal/domain/share"
	"warranty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
}

// ShareHandler holds dependencies for the message sharing handlers
type ShareHandler struct {
	shareUC usecase.ShareUsecase
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
	}
}

// NotifyRequest selects the channels a reminder is sent on
type NotifyRequest struct {
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// Notify handles POST /warranties/:id/notify. Selecting no channel is a no-op.
func (h *ShareHandler) Notify(c echo.Context) error {
	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid notify input")
	}

	channels := share.Channels{Email: req.Email, WhatsApp: req.WhatsApp}

	result, err := h.shareUC.Share(c.Request().Context(), c.Param("id"), message.ModeReminder, channels)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// PreviewShare handles GET /warranties/:id/share?mode=&channels=email,whatsapp
func (h *ShareHandler) PreviewShare(c echo.Context) error {
	mode, err := parseMode(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.shareUC.Preview(c.Request().Context(), c.Param("id"), mode, parseChannels(c.QueryParam("channels")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ShareQR handles GET /warranties/:id/share/qr?mode= and returns a PNG
func (h *ShareHandler) ShareQR(c echo.Context) error {
	mode, err := parseMode(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.shareUC.ShareQR(c.Request().Context(), c.Param("id"), mode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=warranty-share-qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseMode(c echo.Context) (message.Mode, error) {
	mode, ok := message.ParseMode(c.QueryParam("mode"))
	if !ok {
		return mode, domainerrors.ErrInvalidShareMode.WithDetails("mode must be initial or reminder")
	}

	return mode, nil
}

// parseChannels reads a comma separated channel list; empty selects both.
func parseChannels(raw string) share.Channels {
	if strings.TrimSpace(raw) == "" {
		return share.Channels{Email: true, WhatsApp: true}
	}

	var channels share.Channels
	for _, name := range strings.Split(raw, ",") {
		switch share.Channel(strings.ToLower(strings.TrimSpace(name))) {
		case share.ChannelEmail:
			channels.Email = true
		case share.ChannelWhatsApp:
			channels.WhatsApp = true
		}
	}

	return channels
}

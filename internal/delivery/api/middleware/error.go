// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"warranty/internal/delivery/api/response"
	"warranty/internal/delivery/api/validator"
	deliverycontext "warranty/internal/delivery/context"
	domainerrors "warranty/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.HandleAppError(c, err)

		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validationErr.Fields)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logError(c, err)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"warranty/internal/delivery/api/response"
	deliverycontext "warranty/internal/delivery/context"
	"warranty/internal/domain/entity"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/message"
	"warranty/internal/domain/share"
	"warranty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WarrantyHandlerParams holds dependencies for WarrantyHandler, injected by Fx.
type WarrantyHandlerParams struct {
	fx.In

	WarrantyUC usecase.WarrantyUsecase
	ShareUC    usecase.ShareUsecase
	Logger     *slog.Logger
}

// WarrantyHandler holds dependencies for warranty record handlers
type WarrantyHandler struct {
	warrantyUC usecase.WarrantyUsecase
	shareUC    usecase.ShareUsecase
	logger     *slog.Logger
}

// NewWarrantyHandler is the constructor for WarrantyHandler
func NewWarrantyHandler(params WarrantyHandlerParams) *WarrantyHandler {
	return &WarrantyHandler{
		warrantyUC: params.WarrantyUC,
		shareUC:    params.ShareUC,
		logger:     params.Logger,
	}
}

// CreateWarrantyRequest is a warranty form plus the channels to share the
// saved record on
type CreateWarrantyRequest struct {
	usecase.WarrantyInput

	Share *share.Channels `json:"share,omitempty"`
}

// CreateWarrantyResponse is the saved record and, when requested, the share outcome
type CreateWarrantyResponse struct {
	Warranty   *usecase.WarrantyView `json:"warranty"`
	Share      *usecase.ShareResult  `json:"share,omitempty"`
	ShareError *response.ErrorInfo   `json:"shareError,omitempty"`
}

// ListWarranties handles GET /warranties?q=&status=
func (h *WarrantyHandler) ListWarranties(c echo.Context) error {
	query := usecase.WarrantyQuery{
		Search: c.QueryParam("q"),
		Status: entity.WarrantyStatus(strings.TrimSpace(c.QueryParam("status"))),
	}
	if query.Status != "" && !query.Status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "status must be one of active, expiring_soon, expired")
	}

	views, err := h.warrantyUC.List(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// CreateWarranty handles POST /warranties. The record is saved first; a failed
// share does not undo the save and is reported next to the record.
func (h *WarrantyHandler) CreateWarranty(c echo.Context) error {
	var req CreateWarrantyRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidWarranty.WithDetails("request body is not a valid warranty"))
	}

	if err := c.Validate(&req.WarrantyInput); err != nil {
		return err
	}

	ctx := c.Request().Context()

	view, err := h.warrantyUC.Create(ctx, &req.WarrantyInput)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := &CreateWarrantyResponse{Warranty: view}
	if req.Share != nil && req.Share.Any() {
		result, err := h.shareUC.Share(ctx, view.ID, message.ModeInitial, *req.Share)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Saved warranty could not be shared",
				slog.String("warranty_id", view.ID),
				slog.Any("error", err),
			)
			resp.ShareError = shareErrorInfo(err)
		} else {
			resp.Share = result
		}
	}

	return response.Success(c, http.StatusCreated, resp)
}

// GetWarranty handles GET /warranties/:id
func (h *WarrantyHandler) GetWarranty(c echo.Context) error {
	view, err := h.warrantyUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateWarranty handles PUT /warranties/:id
func (h *WarrantyHandler) UpdateWarranty(c echo.Context) error {
	var input usecase.WarrantyInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidWarranty.WithDetails("request body is not a valid warranty"))
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.warrantyUC.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DeleteWarranty handles DELETE /warranties/:id?confirm=true
func (h *WarrantyHandler) DeleteWarranty(c echo.Context) error {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))

	id := c.Param("id")
	if err := h.warrantyUC.Delete(c.Request().Context(), id, confirmed); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":      id,
		"message": "Warranty deleted successfully",
	})
}

func shareErrorInfo(err error) *response.ErrorInfo {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info := &response.ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
		if d := appErr.Details(); d != "" {
			info.Details = d
		}

		return info
	}

	return &response.ErrorInfo{
		Code:    domainerrors.ErrShareFailed.ErrorCode(),
		Message: domainerrors.ErrShareFailed.Message(),
	}
}

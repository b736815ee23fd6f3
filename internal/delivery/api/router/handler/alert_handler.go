package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/domain/entity"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the alert inbox and on-demand health checks.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// UnreadCountResponse carries the number of unread alerts
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// CheckResponse reports an on-demand health check
type CheckResponse struct {
	Message string `json:"message"`
	*usecase.SweepResult
}

// ListAlerts lists the caller's alerts, newest first
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var filter entity.AlertFilter
	switch c.QueryParam("isRead") {
	case "":
	case "true":
		isRead := true
		filter.IsRead = &isRead
	case "false":
		isRead := false
		filter.IsRead = &isRead
	default:
		return response.BadRequest(c, "INVALID_INPUT", "isRead must be true or false")
	}

	var err error
	if filter.Limit, err = nonNegativeInt(c.QueryParam("limit")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
	}
	if filter.Offset, err = nonNegativeInt(c.QueryParam("offset")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "offset must be a non-negative integer")
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// CountUnread returns the caller's unread alert count
func (h *AlertHandler) CountUnread(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.alertUC.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkAsRead marks one of the caller's alerts read
func (h *AlertHandler) MarkAsRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.MarkAsRead(c.Request().Context(), alertID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// CheckDeviceStatus runs battery and offline checks over the caller's devices
func (h *AlertHandler) CheckDeviceStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.alertUC.CheckDeviceStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CheckResponse{Message: "Device status check completed", SweepResult: result})
}

// CheckInactivity runs the caller's inactivity rules over their devices
func (h *AlertHandler) CheckInactivity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.alertUC.CheckInactivity(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CheckResponse{Message: "Inactivity check completed", SweepResult: result})
}

func nonNegativeInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, strconv.ErrSyntax
	}

	return value, nil
}

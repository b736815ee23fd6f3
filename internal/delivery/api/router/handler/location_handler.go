package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/delivery/api/validator"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves device ingest and the owner-scoped location reads.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// IngestLocationRequest is a fix reported by a tracker. Firmware sends
// either deviceId or device_id.
type IngestLocationRequest struct {
	DeviceID       string     `json:"deviceId"`
	LegacyDeviceID string     `json:"device_id"`
	Latitude       *float64   `json:"latitude" validate:"required"`
	Longitude      *float64   `json:"longitude" validate:"required"`
	Altitude       *float64   `json:"altitude"`
	Accuracy       *float64   `json:"accuracy" validate:"omitnil,gte=0"`
	Speed          *float64   `json:"speed" validate:"omitnil,gte=0"`
	Heading        *float64   `json:"heading" validate:"omitnil,gte=0,lt=360"`
	SatelliteCount *int       `json:"satelliteCount" validate:"omitnil,gte=0"`
	BatteryLevel   *int       `json:"batteryLevel" validate:"omitnil,gte=0,lte=100"`
	SignalStrength *int       `json:"signalStrength"`
	RecordedAt     *time.Time `json:"recordedAt"`
}

func (r *IngestLocationRequest) identifier() string {
	if id := strings.TrimSpace(r.DeviceID); id != "" {
		return id
	}

	return strings.TrimSpace(r.LegacyDeviceID)
}

// Ingest handles a fix posted by a tracker
func (h *LocationHandler) Ingest(c echo.Context) error {
	var req IngestLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if req.identifier() == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "deviceId is required")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "latitude and longitude must be valid numbers", validator.FieldErrors(err))
	}

	fix, err := h.locationUC.HandleLocationFix(c.Request().Context(), &usecase.LocationFixInput{
		DeviceIdentifier: req.identifier(),
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		Altitude:         req.Altitude,
		Accuracy:         req.Accuracy,
		Speed:            req.Speed,
		Heading:          req.Heading,
		SatelliteCount:   req.SatelliteCount,
		BatteryLevel:     req.BatteryLevel,
		SignalStrength:   req.SignalStrength,
		RecordedAt:       req.RecordedAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fix)
}

// GetHistory lists the fixes of one of the caller's devices, newest first
func (h *LocationHandler) GetHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	query := repository.HistoryQuery{Limit: historyLimit(c.QueryParam("limit"))}
	if query.From, err = parseTime(c.QueryParam("from")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "from must be an RFC 3339 timestamp")
	}
	if query.To, err = parseTime(c.QueryParam("to")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "to must be an RFC 3339 timestamp")
	}

	fixes, err := h.locationUC.GetHistory(c.Request().Context(), userID, deviceID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fixes)
}

// GetLatest returns the newest fix of one of the caller's devices, or null
func (h *LocationHandler) GetLatest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	fix, err := h.locationUC.GetLatest(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fix)
}

// historyLimit falls back to the default for missing or non-positive
// values and caps the rest.
func historyLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}

	return min(limit, maxHistoryLimit)
}

func parseTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

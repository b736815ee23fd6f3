package handler

import (
	"net/http"

	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushTokenHandlerParams holds dependencies for PushTokenHandler, injected by Fx.
type PushTokenHandlerParams struct {
	fx.In

	PushTokenUC usecase.PushTokenUsecase
}

// PushTokenHandler registers the phones that receive alert pushes.
type PushTokenHandler struct {
	pushTokenUC usecase.PushTokenUsecase
}

// NewPushTokenHandler is the constructor for PushTokenHandler
func NewPushTokenHandler(params PushTokenHandlerParams) *PushTokenHandler {
	return &PushTokenHandler{pushTokenUC: params.PushTokenUC}
}

// RegisterPushTokenRequest represents the request body for registering a push token
type RegisterPushTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// RegisterPushToken handles push token registration
func (h *PushTokenHandler) RegisterPushToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterPushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.pushTokenUC.RegisterPushToken(c.Request().Context(), userID, &usecase.RegisterPushTokenInput{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// UnregisterPushToken deactivates one of the caller's push tokens
func (h *PushTokenHandler) UnregisterPushToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid push token ID")
	}

	if err := h.pushTokenUC.UnregisterPushToken(c.Request().Context(), userID, tokenID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push token removed successfully"})
}

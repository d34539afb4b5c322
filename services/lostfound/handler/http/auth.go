package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/internal/utils"
	"github.com/adipras/campusfound/services/lostfound"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// AuthHandler handles HTTP requests for the OTP flow
type AuthHandler struct {
	lostFoundUC lostfound.LostFoundUC
	devSMS      bool
}

// NewAuthHandler creates a new auth handler. devSMS marks deployments
// without a configured SMS provider so the response can say the code was
// only logged.
func NewAuthHandler(lostFoundUC lostfound.LostFoundUC, devSMS bool) *AuthHandler {
	return &AuthHandler{
		lostFoundUC: lostFoundUC,
		devSMS:      devSMS,
	}
}

// SendOTP handles OTP issuance requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "phone is required")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	sent, err := h.lostFoundUC.GenerateOTP(c.Request().Context(), req.Phone)
	if err != nil {
		logger.Error("Failed to generate OTP",
			logger.Err(err),
			logger.String("phone", req.Phone),
		)
		return utils.InternalServerErrorResponse(c, "failed to send sms")
	}

	resp := models.SendOTPResponse{OK: true, Sent: sent}
	if !sent && h.devSMS {
		resp.Note = "Twilio not configured; SMS logged to server console"
	}
	return c.JSON(http.StatusOK, resp)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "phone and code are required")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "phone and code are required")
	}

	token, err := h.lostFoundUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoChallenge),
			errors.Is(err, domain.ErrOTPExpired),
			errors.Is(err, domain.ErrOTPMismatch):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to verify OTP",
			logger.Err(err),
			logger.String("phone", req.Phone),
		)
		return utils.InternalServerErrorResponse(c, "failed to verify otp")
	}

	return c.JSON(http.StatusOK, models.VerifyOTPResponse{
		OK:      true,
		Message: "verified",
		Token:   token,
	})
}

// userToken pulls the bearer token from the x-token header, falling back
// to the token field of an already-bound request body.
func userToken(c echo.Context, bodyToken string) string {
	if t := c.Request().Header.Get("x-token"); t != "" {
		return t
	}
	return bodyToken
}

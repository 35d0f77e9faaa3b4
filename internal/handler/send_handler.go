package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"tempmail/internal/service"
)

type SendHandler struct {
	sendService service.SendService
	logger      echo.Logger
}

func NewSendHandler(sendService service.SendService, logger echo.Logger) *SendHandler {
	return &SendHandler{
		sendService: sendService,
		logger:      logger,
	}
}

// SendEmail sends a verification email with a generated code to an address.
func (h *SendHandler) SendEmail(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Template string `json:"type"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Email address required",
		})
	}

	result, err := h.sendService.SendVerification(c.Request().Context(), req.Email, req.Template)
	if err != nil {
		h.logger.Error("Failed to send verification email:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Failed to send verification email",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":           true,
		"message_id":        result.MessageID,
		"verification_code": result.Code,
		"message":           fmt.Sprintf("Verification email sent to %s", req.Email),
	})
}

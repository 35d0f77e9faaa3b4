package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tempmail/internal/service"
)

type CheckHandler struct {
	pollService    service.PollService
	mailboxService service.MailboxService
	logger         echo.Logger
}

func NewCheckHandler(pollService service.PollService, mailboxService service.MailboxService, logger echo.Logger) *CheckHandler {
	return &CheckHandler{
		pollService:    pollService,
		mailboxService: mailboxService,
		logger:         logger,
	}
}

// CheckMails polls a mailbox for a verification code. The address comes
// from the email query parameter on GET, or a JSON body on POST. A poll
// that finds no code is still a 200; only provider failures are 500s.
func (h *CheckHandler) CheckMails(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" && c.Request().Method == http.MethodPost {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.Bind(&req); err == nil {
			email = req.Email
		}
	}
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Email parameter is required",
		})
	}

	result, err := h.pollService.PollMailbox(c.Request().Context(), email)
	if err != nil {
		h.logger.Error("Failed to check mails:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Failed to check mails",
			"details": err.Error(),
		})
	}

	response := map[string]interface{}{
		"verification_code": nil,
		"messages":          result.Messages,
	}
	if result.Code != "" {
		response["verification_code"] = result.Code
		response["from"] = result.MatchedMessage.From
		response["subject"] = result.MatchedMessage.Subject

		// Remember the code on the stored record when this mailbox is
		// tracked; polls for untracked addresses are fine too.
		if err := h.mailboxService.RecordCode(c.Request().Context(), email, result.Code); err != nil {
			h.logger.Info("Code not recorded for untracked mailbox:", email)
		}
	}

	return c.JSON(http.StatusOK, response)
}

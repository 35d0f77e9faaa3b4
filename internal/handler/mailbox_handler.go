package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tempmail/internal/model"
	"tempmail/internal/service"
)

type MailboxHandler struct {
	mailboxService service.MailboxService
	logger         echo.Logger
}

func NewMailboxHandler(mailboxService service.MailboxService, logger echo.Logger) *MailboxHandler {
	return &MailboxHandler{
		mailboxService: mailboxService,
		logger:         logger,
	}
}

// GetMailboxes lists all stored mailbox records, newest first.
func (h *MailboxHandler) GetMailboxes(c echo.Context) error {
	mailboxes, err := h.mailboxService.GetMailboxes(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get mailboxes:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to get mailboxes",
		})
	}
	if mailboxes == nil {
		mailboxes = []*model.Mailbox{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"emails": mailboxes,
	})
}

// SaveMailboxes upserts a batch of mailbox records.
func (h *MailboxHandler) SaveMailboxes(c echo.Context) error {
	var req struct {
		Emails []*model.Mailbox `json:"emails"`
	}
	if err := c.Bind(&req); err != nil || req.Emails == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid emails data",
		})
	}

	saved, err := h.mailboxService.SaveMailboxes(c.Request().Context(), req.Emails)
	if err != nil {
		h.logger.Error("Failed to save mailboxes:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save emails",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   saved,
		"message": "Emails saved successfully",
	})
}

// MarkUsed flags a mailbox record as consumed.
func (h *MailboxHandler) MarkUsed(c echo.Context) error {
	id := c.Param("id")

	if err := h.mailboxService.MarkUsed(c.Request().Context(), id); err != nil {
		h.logger.Error("Failed to mark mailbox as used:", err)
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Mailbox not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Mailbox marked as used",
	})
}

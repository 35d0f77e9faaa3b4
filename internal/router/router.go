package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tempmail/internal/handler"
)

func SetupRoutes(
	e *echo.Echo,
	checkHandler *handler.CheckHandler,
	mailboxHandler *handler.MailboxHandler,
	sendHandler *handler.SendHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	// Polling: GET with ?email= or POST with a JSON body, same handler.
	api.GET("/check-mails", checkHandler.CheckMails)
	api.POST("/check-mails", checkHandler.CheckMails)

	// Mailbox record store
	api.GET("/emails", mailboxHandler.GetMailboxes)
	api.POST("/emails", mailboxHandler.SaveMailboxes)
	api.POST("/emails/:id/used", mailboxHandler.MarkUsed)

	// Outbound verification email
	api.POST("/send-email", sendHandler.SendEmail)
}

package handlers

import (
	"net/http"

	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Reminder notices.
const (
	NoticeReminderCreated   = "Herinnering succesvol aangemaakt"
	NoticeReminderCompleted = "Melding gemarkeerd als voltooid"
	NoticeReminderDeleted   = "Melding verwijderd"
	NoticeRemindersRead     = "Alle meldingen gemarkeerd als gelezen"
)

func (h *BackofficeHandler) remindersView(c *gin.Context, status int, message string) {
	var filter backoffice.ReminderFilter
	_ = c.ShouldBindQuery(&filter)
	ctx := c.Request.Context()
	body := gin.H{
		"meldingen": h.svc.ListReminders(ctx, filter),
		"urgent":    h.svc.UrgentReminders(ctx),
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// ListReminders supports ?type=, ?prioriteit= and ?status= filters.
func (h *BackofficeHandler) ListReminders(c *gin.Context) {
	h.remindersView(c, http.StatusOK, "")
}

func (h *BackofficeHandler) CreateReminder(c *gin.Context) {
	var form backoffice.ReminderForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.CreateReminder(c.Request.Context(), middleware.SessionFrom(c), form); err != nil {
		writeError(c, err)
		return
	}
	h.remindersView(c, http.StatusCreated, NoticeReminderCreated)
}

// CompleteReminder gives no notice when the id is unknown.
func (h *BackofficeHandler) CompleteReminder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, done := h.svc.CompleteReminder(c.Request.Context(), middleware.SessionFrom(c), id); !done {
		h.remindersView(c, http.StatusOK, "")
		return
	}
	h.remindersView(c, http.StatusOK, NoticeReminderCompleted)
}

func (h *BackofficeHandler) MarkAllRead(c *gin.Context) {
	h.svc.MarkAllRead(c.Request.Context(), middleware.SessionFrom(c))
	h.remindersView(c, http.StatusOK, NoticeRemindersRead)
}

func (h *BackofficeHandler) DeleteReminder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.svc.DeleteReminder(c.Request.Context(), middleware.SessionFrom(c), id)
	h.remindersView(c, http.StatusOK, NoticeReminderDeleted)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/internal/repository"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Staff notices.
const (
	NoticeStaffCreated = "Personeelslid succesvol toegevoegd"
	NoticeStaffUpdated = "Personeelslid bijgewerkt"
	NoticeStaffDeleted = "Personeelslid verwijderd"
)

func (h *BackofficeHandler) staffView(c *gin.Context, status int, message string) {
	body := gin.H{"medewerkers": h.svc.ListStaff(c.Request.Context())}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

func (h *BackofficeHandler) ListStaff(c *gin.Context) {
	h.staffView(c, http.StatusOK, "")
}

// GetStaff returns the record together with the form that edits it.
func (h *BackofficeHandler) GetStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.svc.Staff.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"medewerker": m, "form": backoffice.EditForm(m)})
}

func (h *BackofficeHandler) CreateStaff(c *gin.Context) {
	var form backoffice.StaffForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.CreateStaff(c.Request.Context(), middleware.SessionFrom(c), form); err != nil {
		writeError(c, err)
		return
	}
	h.staffView(c, http.StatusCreated, NoticeStaffCreated)
}

func (h *BackofficeHandler) UpdateStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form backoffice.StaffForm
	if !bindForm(c, &form) {
		return
	}
	if _, _, err := h.svc.UpdateStaff(c.Request.Context(), id, form); err != nil {
		writeError(c, err)
		return
	}
	h.staffView(c, http.StatusOK, NoticeStaffUpdated)
}

func (h *BackofficeHandler) DeleteStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.svc.DeleteStaff(c.Request.Context(), middleware.SessionFrom(c), id)
	h.staffView(c, http.StatusOK, NoticeStaffDeleted)
}

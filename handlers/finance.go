package handlers

import (
	"net/http"

	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Finance notices.
const (
	NoticeCostAdded       = "Kost toegevoegd"
	NoticeFinanceExported = "Financiële data geëxporteerd"
)

// Finance returns the summary. ?periode= is echoed back and filters nothing.
func (h *BackofficeHandler) Finance(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Finance(c.Request.Context(), c.DefaultQuery("periode", "maand")))
}

func (h *BackofficeHandler) AddCost(c *gin.Context) {
	var form backoffice.CostForm
	if !bindForm(c, &form) {
		return
	}
	cost, err := h.svc.AddCost(c.Request.Context(), middleware.SessionFrom(c), form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   NoticeCostAdded,
		"kost":      cost,
		"financien": h.svc.Finance(c.Request.Context(), c.DefaultQuery("periode", "maand")),
	})
}

// ExportFinance is a stub that produces no file.
func (h *BackofficeHandler) ExportFinance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": NoticeFinanceExported})
}

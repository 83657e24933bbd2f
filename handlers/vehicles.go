package handlers

import (
	"errors"
	"net/http"

	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/internal/repository"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Vehicle notices.
const (
	NoticeVehicleCreated = "Wagen succesvol toegevoegd"
	NoticeVehicleUpdated = "Wagen bijgewerkt"
	NoticeVehicleDeleted = "Wagen verwijderd"
)

func (h *BackofficeHandler) vehiclesView(c *gin.Context, status int, message string) {
	var filter backoffice.VehicleFilter
	_ = c.ShouldBindQuery(&filter)
	body := gin.H{"wagens": h.svc.ListVehicles(c.Request.Context(), filter)}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// ListVehicles supports ?status=, ?keuring=, ?type= and ?q= filters.
func (h *BackofficeHandler) ListVehicles(c *gin.Context) {
	h.vehiclesView(c, http.StatusOK, "")
}

func (h *BackofficeHandler) GetVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := h.svc.GetVehicle(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"wagen":   v,
		"message": "Details voor " + v.DisplayName(),
	})
}

func (h *BackofficeHandler) CreateVehicle(c *gin.Context) {
	var form backoffice.VehicleForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.CreateVehicle(c.Request.Context(), middleware.SessionFrom(c), form); err != nil {
		writeError(c, err)
		return
	}
	h.vehiclesView(c, http.StatusCreated, NoticeVehicleCreated)
}

// UpdateVehicle answers with the refreshed list even when the id is unknown.
func (h *BackofficeHandler) UpdateVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form backoffice.VehicleForm
	if !bindForm(c, &form) {
		return
	}
	if _, _, err := h.svc.UpdateVehicle(c.Request.Context(), id, form); err != nil {
		writeError(c, err)
		return
	}
	h.vehiclesView(c, http.StatusOK, NoticeVehicleUpdated)
}

func (h *BackofficeHandler) DeleteVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.svc.DeleteVehicle(c.Request.Context(), middleware.SessionFrom(c), id)
	h.vehiclesView(c, http.StatusOK, NoticeVehicleDeleted)
}

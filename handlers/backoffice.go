package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/autohandel/backoffice/internal/access"
	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// NoticeAlertsUpdated confirms a change of the dashboard alert figures.
const NoticeAlertsUpdated = "Dashboard meldingen bijgewerkt"

// BackofficeHandler serves the module views. Every mutation answers with
// the refreshed view of its module, mirroring a full page re-render.
type BackofficeHandler struct {
	svc *backoffice.Service
}

func NewBackofficeHandler(svc *backoffice.Service) *BackofficeHandler {
	return &BackofficeHandler{svc: svc}
}

// Register mounts the module routes on api. api must already run
// middleware.SessionMiddleware; each module group adds its access gate.
func (h *BackofficeHandler) Register(api *gin.RouterGroup) {
	api.GET("/modules", h.Modules)

	dash := api.Group("/dashboard", middleware.RequireModule(access.ModuleDashboard))
	dash.GET("", h.Dashboard)
	dash.PUT("/alerts", middleware.RequireRole(access.ModuleDashboard, access.RoleAdmin), h.SetDashboardAlerts)

	w := api.Group("/wagens", middleware.RequireModule(access.ModuleVehicles))
	w.GET("", h.ListVehicles)
	w.POST("", h.CreateVehicle)
	w.GET("/:id", h.GetVehicle)
	w.PUT("/:id", h.UpdateVehicle)
	w.DELETE("/:id", h.DeleteVehicle)

	p := api.Group("/personeel", middleware.RequireModule(access.ModuleStaff))
	p.GET("", h.ListStaff)
	p.POST("", h.CreateStaff)
	p.GET("/:id", h.GetStaff)
	p.PUT("/:id", h.UpdateStaff)
	p.DELETE("/:id", h.DeleteStaff)

	d := api.Group("/documenten", middleware.RequireModule(access.ModuleDocuments))
	d.GET("", h.ListDocuments)
	d.POST("", h.UploadDocument)
	d.PUT("/:id", h.UpdateDocument)
	d.DELETE("/:id", h.DeleteDocument)
	d.GET("/:id/view", h.ViewDocument)
	d.GET("/:id/download", h.DownloadDocument)

	m := api.Group("/meldingen", middleware.RequireModule(access.ModuleReminders))
	m.GET("", h.ListReminders)
	m.POST("", h.CreateReminder)
	m.POST("/gelezen", h.MarkAllRead)
	m.POST("/:id/voltooid", h.CompleteReminder)
	m.DELETE("/:id", h.DeleteReminder)

	f := api.Group("/financien", middleware.RequireModule(access.ModuleFinance))
	f.GET("", h.Finance)
	f.POST("/kosten", h.AddCost)
	f.GET("/export", h.ExportFinance)

	api.GET("/zoeken", middleware.RequireModule(access.ModuleSearch), h.Search)
}

// Modules lists the views the session role may open, in navigation order.
func (h *BackofficeHandler) Modules(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": sess, "modules": access.Allowed(sess.Role)})
}

// Dashboard returns the alert figures and the activity feed.
func (h *BackofficeHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard(c.Request.Context()))
}

// SetDashboardAlerts stores alert figures that replace the derived ones.
// Zero fields fall back to the derived counts, so an empty body resets all.
func (h *BackofficeHandler) SetDashboardAlerts(c *gin.Context) {
	var a models.Alerts
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alerts", "details": err.Error()})
		return
	}
	ctx := c.Request.Context()
	h.svc.SetAlertOverrides(ctx, a)
	c.JSON(http.StatusOK, gin.H{"message": NoticeAlertsUpdated, "dashboard": h.svc.Dashboard(ctx)})
}

// Search runs the global search for ?q=.
func (h *BackofficeHandler) Search(c *gin.Context) {
	q := c.Query("q")
	results := h.svc.Search(c.Request.Context(), q)
	c.JSON(http.StatusOK, gin.H{"query": q, "results": results})
}

// idParam parses the :id path parameter. It answers 400 itself on failure.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// bindForm binds a JSON or form body into dst. It answers 400 itself on failure.
func bindForm(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBind(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": backoffice.NoticeRequiredFields, "details": err.Error()})
		return false
	}
	return true
}

// writeError maps an operation error to a response.
func writeError(c *gin.Context, err error) {
	var verr *backoffice.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Notice, "fields": verr.Fields})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

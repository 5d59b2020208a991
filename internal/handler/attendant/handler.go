package attendant

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/service/attendant"
	"github.com/jkimaro/washpark-api/internal/service/report"
	"github.com/jkimaro/washpark-api/pkg/httputil"
)

type Handler struct {
	service   *attendant.Service
	reportSvc *report.Service
}

func NewHandler(service *attendant.Service, reportSvc *report.Service) *Handler {
	return &Handler{service: service, reportSvc: reportSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	attendants := r.Group("/attendants")
	{
		attendants.POST("", h.CreateAttendant)
		attendants.GET("", h.ListAttendants)
		attendants.GET("/:id", h.GetAttendant)
		attendants.PUT("/:id", h.UpdateAttendant)
		attendants.DELETE("/:id", h.DeleteAttendant)
		attendants.GET("/:id/performance", h.GetPerformance)
	}
}

func (h *Handler) CreateAttendant(c *gin.Context) {
	var req model.CreateAttendantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	attendant, err := h.service.CreateAttendant(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, attendant)
}

func (h *Handler) GetAttendant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	attendant, err := h.service.GetAttendant(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, attendant)
}

func (h *Handler) ListAttendants(c *gin.Context) {
	attendants, err := h.service.ListAttendants(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, attendants)
}

func (h *Handler) UpdateAttendant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	var req model.UpdateAttendantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	attendant, err := h.service.UpdateAttendant(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, attendant)
}

func (h *Handler) DeleteAttendant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	if err := h.service.DeleteAttendant(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

func (h *Handler) GetPerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	performance, err := h.reportSvc.AttendantPerformance(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, performance)
}

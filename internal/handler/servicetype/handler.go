package servicetype

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/service/servicetype"
	"github.com/jkimaro/washpark-api/pkg/httputil"
)

type Handler struct {
	service *servicetype.Service
}

func NewHandler(service *servicetype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	serviceTypes := r.Group("/service-types")
	{
		serviceTypes.POST("", h.CreateServiceType)
		serviceTypes.GET("", h.ListServiceTypes)
		serviceTypes.GET("/:id", h.GetServiceType)
		serviceTypes.PUT("/:id", h.UpdateServiceType)
		serviceTypes.DELETE("/:id", h.DeleteServiceType)
	}
}

func (h *Handler) CreateServiceType(c *gin.Context) {
	var req model.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	serviceType, err := h.service.CreateServiceType(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, serviceType)
}

func (h *Handler) GetServiceType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	serviceType, err := h.service.GetServiceType(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, serviceType)
}

// ListServiceTypes returns active catalog entries unless all=true.
func (h *Handler) ListServiceTypes(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	serviceTypes, err := h.service.ListServiceTypes(c.Request.Context(), activeOnly)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, serviceTypes)
}

func (h *Handler) UpdateServiceType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	var req model.UpdateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	serviceType, err := h.service.UpdateServiceType(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, serviceType)
}

func (h *Handler) DeleteServiceType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	if err := h.service.DeleteServiceType(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

package servicerequest

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/service/servicerequest"
	"github.com/jkimaro/washpark-api/pkg/httputil"
)

type Handler struct {
	service *servicerequest.Service
}

func NewHandler(service *servicerequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/service-requests")
	{
		requests.POST("", h.CreateServiceRequest)
		requests.GET("", h.ListServiceRequests)
		requests.GET("/pending", h.ListPending)
		requests.GET("/:id", h.GetServiceRequest)
		requests.PUT("/:id", h.UpdateServiceRequest)
		requests.DELETE("/:id", h.DeleteServiceRequest)
		requests.POST("/:id/start", h.StartService)
		requests.POST("/:id/complete", h.CompleteService)
		requests.POST("/:id/cancel", h.CancelService)
	}
}

func (h *Handler) CreateServiceRequest(c *gin.Context) {
	var req model.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	request, err := h.service.CreateServiceRequest(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, request)
}

func (h *Handler) GetServiceRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	request, err := h.service.GetServiceRequest(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, request)
}

func (h *Handler) ListServiceRequests(c *gin.Context) {
	filters := &model.ServiceRequestFilters{}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.RespondWithValidationError(c, err)
			return
		}
		filters.CustomerID = id
	}
	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.RespondWithValidationError(c, err)
			return
		}
		filters.VehicleID = id
	}
	if raw := c.Query("attendant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.RespondWithValidationError(c, err)
			return
		}
		filters.AttendantID = id
	}
	if status := c.Query("status"); status != "" {
		filters.Status = model.ServiceStatus(status)
	}

	requests, err := h.service.ListServiceRequests(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, requests)
}

func (h *Handler) ListPending(c *gin.Context) {
	requests, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, requests)
}

func (h *Handler) UpdateServiceRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	var req model.UpdateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	request, err := h.service.UpdateServiceRequest(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, request)
}

func (h *Handler) DeleteServiceRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	if err := h.service.DeleteServiceRequest(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

// StartService accepts an optional body naming the acting attendant.
func (h *Handler) StartService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	var req model.StartServiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondWithValidationError(c, err)
			return
		}
	}

	request, err := h.service.StartService(c.Request.Context(), id, req.AttendantID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, request)
}

func (h *Handler) CompleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	request, err := h.service.CompleteService(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, request)
}

func (h *Handler) CancelService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	request, err := h.service.CancelService(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, request)
}

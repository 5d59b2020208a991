package parking

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/service/parking"
	"github.com/jkimaro/washpark-api/pkg/httputil"
)

type Handler struct {
	service *parking.Service
}

func NewHandler(service *parking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/parking")
	{
		records.POST("", h.CheckIn)
		records.GET("", h.ListParking)
		records.GET("/active", h.ListActive)
		records.GET("/:id", h.GetParking)
		records.PUT("/:id", h.UpdateParking)
		records.DELETE("/:id", h.DeleteParking)
		records.POST("/:id/checkout", h.CheckOut)
	}
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req model.CreateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	record, err := h.service.CheckIn(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, record)
}

func (h *Handler) GetParking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	record, err := h.service.GetParking(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, record)
}

func (h *Handler) ListParking(c *gin.Context) {
	filters := &model.ParkingFilters{}

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
		filters.Status = model.ParkingStatus(status)
	}

	records, err := h.service.ListParking(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, records)
}

func (h *Handler) ListActive(c *gin.Context) {
	records, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, records)
}

func (h *Handler) UpdateParking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	var req model.UpdateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	record, err := h.service.UpdateParking(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, record)
}

func (h *Handler) DeleteParking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	if err := h.service.DeleteParking(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

// CheckOut closes an active session. The fee is optional and only applied
// when the record was checked in without one.
func (h *Handler) CheckOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, err)
		return
	}

	var req model.CheckOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondWithValidationError(c, err)
			return
		}
	}

	record, err := h.service.CheckOut(c.Request.Context(), id, req.ParkingFee)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, record)
}

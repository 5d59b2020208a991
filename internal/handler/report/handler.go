package report

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkimaro/washpark-api/internal/service/report"
	"github.com/jkimaro/washpark-api/pkg/apperror"
	"github.com/jkimaro/washpark-api/pkg/httputil"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/parking-duration", h.ParkingDurationStats)
		reports.GET("/revenue/daily", h.DailyRevenue)
		reports.GET("/revenue/monthly", h.MonthlyRevenue)
	}
}

func (h *Handler) ParkingDurationStats(c *gin.Context) {
	stats, err := h.service.ParkingDurationStats(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, stats)
}

func (h *Handler) DailyRevenue(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	revenue, err := h.service.DailyRevenue(c.Request.Context(), date)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, revenue)
}

func (h *Handler) MonthlyRevenue(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	revenue, err := h.service.MonthlyRevenue(c.Request.Context(), date)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, revenue)
}

// parseDate reads an optional YYYY-MM-DD query value, defaulting to now.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperror.Validation("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/middleware"
)

// dashboardHandler serves the admin dashboard aggregations.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the admin dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/recent-payments", h.getRecentPayments)
	}
}

// getStats godoc
// @Summary Get dashboard statistics
// @Description Returns tenant/shop counts, current-month revenue and the pending request count.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.DashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve dashboard statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// getRecentPayments godoc
// @Summary Get recent payments
// @Description Returns the latest payments with tenant and shop identity, newest first.
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of rows" default(10)
// @Success 200 {array} dto.PaymentHistoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/recent-payments [get]
func (h *dashboardHandler) getRecentPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	history, err := h.reportingService.RecentPayments(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to get recent payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve recent payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentHistoryResponses(history))
}

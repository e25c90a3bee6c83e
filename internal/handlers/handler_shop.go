package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/middleware"
)

// shopHandler handles HTTP requests related to shops.
type shopHandler struct {
	shopService    portssvc.ShopSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// newShopHandler creates a new shopHandler.
func newShopHandler(ss portssvc.ShopSvcFacade, ps portssvc.PaymentSvcFacade) *shopHandler {
	return &shopHandler{
		shopService:    ss,
		paymentService: ps,
	}
}

// registerShopRoutes registers the admin routes for shop management.
func registerShopRoutes(rg *gin.RouterGroup, shopService portssvc.ShopSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newShopHandler(shopService, paymentService)

	shops := rg.Group("/shops")
	{
		shops.POST("", h.createShop)
		shops.GET("", h.listShops)
		shops.GET("/available", h.listAvailableShops)
		shops.GET("/:id", h.getShop)
		shops.POST("/:id/assign", h.assignTenant)
		shops.POST("/:id/vacate", h.vacateShop)
		shops.GET("/:id/payments", h.listShopPayments)
	}
}

// createShop godoc
// @Summary Create a new shop
// @Description Registers a new vacant shop unit with a fixed monthly rent.
// @Tags shops
// @Accept json
// @Produce json
// @Param shop body dto.CreateShopRequest true "Shop details"
// @Success 201 {object} dto.ShopResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Shop number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops [post]
func (h *shopHandler) createShop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createShop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create shop", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create shop"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShopResponse(shop, time.Now()))
}

// listShops godoc
// @Summary List shops
// @Description Lists all shops with their derived payment status.
// @Tags shops
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListShopsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops [get]
func (h *shopHandler) listShops(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListShopsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	shops, err := h.shopService.ListShops(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list shops", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shops"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShopsResponse{Shops: dto.ToListShopResponse(shops, time.Now())})
}

// listAvailableShops godoc
// @Summary List available shops
// @Description Lists unoccupied shops ordered by shop number.
// @Tags shops
// @Produce json
// @Success 200 {object} dto.ListShopsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops/available [get]
func (h *shopHandler) listAvailableShops(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shops, err := h.shopService.ListAvailableShops(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list available shops", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shops"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShopsResponse{Shops: dto.ToListShopResponse(shops, time.Now())})
}

// getShop godoc
// @Summary Get a shop by ID
// @Description Retrieves a shop with its ledger state and derived payment status.
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} dto.ShopResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops/{id} [get]
func (h *shopHandler) getShop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopID := c.Param("id")

	shop, err := h.shopService.GetShopByID(c.Request.Context(), shopID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shop not found"})
			return
		}
		logger.Error("Failed to get shop", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shop"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop, time.Now()))
}

// assignTenant godoc
// @Summary Assign a tenant to a shop
// @Description Moves a tenant into a vacant shop. The rent cycle starts with the tenant's first payment.
// @Tags shops
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param assignment body dto.AssignTenantRequest true "Tenant to assign"
// @Success 200 {object} dto.ShopResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Shop already occupied"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops/{id}/assign [post]
func (h *shopHandler) assignTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shop, err := h.shopService.AssignTenant(c.Request.Context(), c.Param("id"), req.TenantID, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to assign tenant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to assign tenant"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop, time.Now()))
}

// vacateShop godoc
// @Summary Vacate a shop
// @Description Clears the tenant assignment. Payment history stays on the shop record.
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} dto.ShopResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Shop already vacant"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops/{id}/vacate [post]
func (h *shopHandler) vacateShop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shop, err := h.shopService.VacateShop(c.Request.Context(), c.Param("id"), actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shop not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to vacate shop", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to vacate shop"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop, time.Now()))
}

// listShopPayments godoc
// @Summary List a shop's payments
// @Description Returns a shop's payment history newest first with a next-page token.
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shops/{id}/payments [get]
func (h *shopHandler) listShopPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	payments, nextToken, err := h.paymentService.ListPaymentsByShop(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list shop payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments), NextToken: nextToken})
}

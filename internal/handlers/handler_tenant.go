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

// tenantHandler handles HTTP requests related to the tenant directory.
type tenantHandler struct {
	userService    portssvc.UserSvcFacade
	shopService    portssvc.ShopSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// newTenantHandler creates a new tenantHandler.
func newTenantHandler(us portssvc.UserSvcFacade, ss portssvc.ShopSvcFacade, ps portssvc.PaymentSvcFacade) *tenantHandler {
	return &tenantHandler{
		userService:    us,
		shopService:    ss,
		paymentService: ps,
	}
}

// registerTenantRoutes registers the admin routes for the tenant directory.
func registerTenantRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, shopService portssvc.ShopSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newTenantHandler(userService, shopService, paymentService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.registerTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/:id", h.getTenant)
		tenants.PUT("/:id", h.updateTenant)
		tenants.DELETE("/:id", h.deleteTenant)
		tenants.GET("/:id/shops", h.listTenantShops)
		tenants.GET("/:id/payments", h.listTenantPayments)
	}
}

// registerTenant godoc
// @Summary Register a new tenant
// @Description Creates a tenant account with a generated temporary password, returned once for out-of-band delivery.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.RegisterTenantRequest true "Tenant details"
// @Success 201 {object} dto.RegisterTenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) registerTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for registerTenant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tenant, tempPassword, err := h.userService.RegisterTenant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to register tenant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register tenant"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterTenantResponse{
		Tenant:            dto.ToUserResponse(tenant),
		TemporaryPassword: tempPassword,
	})
}

// listTenants godoc
// @Summary List tenants
// @Description Lists tenant accounts ordered by name.
// @Tags tenants
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	tenants, err := h.userService.ListTenants(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list tenants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve tenants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(tenants))
}

// getTenant godoc
// @Summary Get a tenant by ID
// @Description Retrieves a tenant's directory entry.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenant, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tenant not found"})
			return
		}
		logger.Error("Failed to get tenant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve tenant"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(tenant))
}

// updateTenant godoc
// @Summary Update a tenant
// @Description Applies an admin edit to a tenant's profile fields.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param tenant body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [put]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tenant, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tenant not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update tenant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update tenant"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(tenant))
}

// deleteTenant godoc
// @Summary Delete a tenant
// @Description Soft-deletes a tenant account. Payment history is preserved.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *tenantHandler) deleteTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), deleterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tenant not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to delete tenant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete tenant"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listTenantShops godoc
// @Summary List a tenant's shops
// @Description Lists the shops assigned to a tenant with their derived payment status.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.ListShopsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id}/shops [get]
func (h *tenantHandler) listTenantShops(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shops, err := h.shopService.ListShopsByTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to list tenant shops", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shops"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShopsResponse{Shops: dto.ToListShopResponse(shops, time.Now())})
}

// listTenantPayments godoc
// @Summary List a tenant's payments
// @Description Returns a tenant's payment history newest first with a next-page token.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id}/payments [get]
func (h *tenantHandler) listTenantPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	payments, nextToken, err := h.paymentService.ListPaymentsByTenant(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list tenant payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments), NextToken: nextToken})
}

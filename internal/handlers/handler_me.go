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
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// meHandler handles the authenticated caller's self-service routes.
type meHandler struct {
	userService           portssvc.UserSvcFacade
	shopService           portssvc.ShopSvcFacade
	paymentService        portssvc.PaymentSvcFacade
	profileRequestService portssvc.ProfileRequestSvcFacade
}

func newMeHandler(us portssvc.UserSvcFacade, ss portssvc.ShopSvcFacade, ps portssvc.PaymentSvcFacade, prs portssvc.ProfileRequestSvcFacade) *meHandler {
	return &meHandler{
		userService:           us,
		shopService:           ss,
		paymentService:        ps,
		profileRequestService: prs,
	}
}

// registerMeRoutes registers the self-service routes for the caller.
func registerMeRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, ss portssvc.ShopSvcFacade, ps portssvc.PaymentSvcFacade, prs portssvc.ProfileRequestSvcFacade) {
	h := newMeHandler(us, ss, ps, prs)

	// payment posting is throttled per IP
	paymentRate, _ := limiter.NewRateFromFormatted("10-M")
	paymentLimiter := limiter.New(memory.NewStore(), paymentRate)

	me := rg.Group("/me")
	{
		me.GET("", h.getProfile)
		me.PUT("/password", h.changePassword)
		me.GET("/shops", h.listMyShops)
		me.GET("/shops/:id", h.getMyShop)
		me.POST("/payments", middleware.RateLimit(paymentLimiter), h.recordPayment)
		me.GET("/payments", h.listMyPayments)
		me.GET("/payments/:id", h.getMyPayment)
		me.POST("/profile-requests", h.submitProfileRequest)
	}
}

// getProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated caller's directory entry.
// @Tags me
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *meHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		logger.Error("Failed to get own profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change own password
// @Description Replaces the caller's password after verifying the current one. Clears the temporary-password flag.
// @Tags me
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "Password change"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/password [put]
func (h *meHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Current password is incorrect"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		} else {
			logger.Error("Failed to change password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to change password"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listMyShops godoc
// @Summary List own shops
// @Description Lists the shops assigned to the caller, each with its derived payment status.
// @Tags me
// @Produce json
// @Success 200 {object} dto.ListShopsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/shops [get]
func (h *meHandler) listMyShops(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shops, err := h.shopService.ListShopsByTenant(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list own shops", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shops"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShopsResponse{Shops: dto.ToListShopResponse(shops, time.Now())})
}

// getMyShop godoc
// @Summary Get one of own shops
// @Description Returns a shop only if it is assigned to the caller.
// @Tags me
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} dto.ShopResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/shops/{id} [get]
func (h *meHandler) getMyShop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shop, err := h.shopService.GetShopForTenant(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shop not found"})
			return
		}
		logger.Error("Failed to get own shop", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shop"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShopResponse(shop, time.Now()))
}

// recordPayment godoc
// @Summary Record a rent payment
// @Description Records a payment against one of the caller's shops and returns the receipt with the updated shop snapshot.
// @Tags me
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/payments [post]
func (h *meHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, shop, err := h.paymentService.RecordPayment(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shop not found"})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentReceiptResponse{
		Payment: dto.ToPaymentResponse(payment),
		Shop:    dto.ToShopResponse(shop, time.Now()),
	})
}

// listMyPayments godoc
// @Summary List own payment history
// @Description Returns the caller's payments newest first with a next-page token.
// @Tags me
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/payments [get]
func (h *meHandler) listMyPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, nextToken, err := h.paymentService.ListPaymentsByTenant(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list own payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments), NextToken: nextToken})
}

// getMyPayment godoc
// @Summary Get a payment receipt
// @Description Returns one of the caller's payment records by ID.
// @Tags me
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/payments/{id} [get]
func (h *meHandler) getMyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.GetPaymentForTenant(c.Request.Context(), userID, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
			return
		}
		logger.Error("Failed to get payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// submitProfileRequest godoc
// @Summary Submit a profile change request
// @Description Files a request to change the caller's profile fields, held for admin review.
// @Tags me
// @Accept json
// @Produce json
// @Param request body dto.SubmitProfileRequestRequest true "Requested changes"
// @Success 201 {object} dto.ProfileRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/profile-requests [post]
func (h *meHandler) submitProfileRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitProfileRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := h.profileRequestService.SubmitRequest(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		} else {
			logger.Error("Failed to submit profile change request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileRequestResponse(request))
}

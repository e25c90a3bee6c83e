package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/middleware"
)

// profileRequestHandler handles the admin review queue for profile changes.
type profileRequestHandler struct {
	profileRequestService portssvc.ProfileRequestSvcFacade
}

// newProfileRequestHandler creates a new profileRequestHandler.
func newProfileRequestHandler(prs portssvc.ProfileRequestSvcFacade) *profileRequestHandler {
	return &profileRequestHandler{profileRequestService: prs}
}

// registerProfileRequestRoutes registers the admin review queue routes.
func registerProfileRequestRoutes(rg *gin.RouterGroup, profileRequestService portssvc.ProfileRequestSvcFacade) {
	h := newProfileRequestHandler(profileRequestService)

	requests := rg.Group("/profile-requests")
	{
		requests.GET("", h.listRequests)
		requests.POST("/:id/approve", h.approveRequest)
		requests.POST("/:id/reject", h.rejectRequest)
	}
}

// listRequests godoc
// @Summary List profile change requests
// @Description Lists profile change requests newest first, optionally filtered by status.
// @Tags profile-requests
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ProfileRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile-requests [get]
func (h *profileRequestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProfileRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.RequestStatus
	if params.Status != nil {
		s := domain.RequestStatus(*params.Status)
		status = &s
	}

	requests, err := h.profileRequestService.ListRequests(c.Request.Context(), status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list profile change requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileRequestResponses(requests))
}

// approveRequest godoc
// @Summary Approve a profile change request
// @Description Applies the requested changes to the tenant profile and marks the request approved.
// @Tags profile-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.ProfileRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already reviewed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile-requests/{id}/approve [post]
func (h *profileRequestHandler) approveRequest(c *gin.Context) {
	h.review(c, h.profileRequestService.ApproveRequest)
}

// rejectRequest godoc
// @Summary Reject a profile change request
// @Description Marks a pending request rejected without touching the tenant profile.
// @Tags profile-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.ProfileRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already reviewed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile-requests/{id}/reject [post]
func (h *profileRequestHandler) rejectRequest(c *gin.Context) {
	h.review(c, h.profileRequestService.RejectRequest)
}

func (h *profileRequestHandler) review(c *gin.Context, action func(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reviewerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := action(c.Request.Context(), c.Param("id"), reviewerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Request not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to review profile change request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to review request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileRequestResponse(request))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/middleware"
	"github.com/sleeptight/club-backend/internal/service"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment handles POST /posts/:id/comments
// @Summary Comment on a post (nightly window or VIP)
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "post id"
// @Param request body domain.CreateCommentRequest true "comment content"
// @Success 200 {object} common.APIResponse{data=domain.CommentResponse}
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.service.CreateComment(userID, c.Param("id"), req.Content)
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

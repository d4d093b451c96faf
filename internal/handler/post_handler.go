package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/middleware"
	"github.com/sleeptight/club-backend/internal/service"
)

// PostHandler handles post HTTP requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /posts
// @Summary Create a post (nightly window or VIP)
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreatePostRequest true "post content"
// @Success 200 {object} common.APIResponse{data=domain.PostResponse}
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.service.CreatePost(c.Request.Context(), userID, req.Content)
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// ListPosts handles GET /posts
// @Summary Approved feed, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.PostResponse}
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load feed", err)
		return
	}

	common.SuccessResponse(c, posts, &common.Meta{Total: int64(len(posts))})
}

// GetPost handles GET /posts/:id
// @Summary A post with its comments, oldest first
// @Tags posts
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} common.APIResponse{data=domain.PostDetailResponse}
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	result, err := h.service.GetPost(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/service"
)

// ModerationHandler handles privileged moderation and reset requests.
// All routes behind this handler require the admin token.
type ModerationHandler struct {
	moderation service.ModerationService
	reset      service.ResetService
}

// NewModerationHandler creates a new ModerationHandler
func NewModerationHandler(moderation service.ModerationService, reset service.ResetService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation, reset: reset}
}

// ApproveRequest approve action payload
type ApproveRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

// RemoveRequest remove action payload
type RemoveRequest struct {
	PostID string `json:"post_id" binding:"required"`
	Reason string `json:"reason"`
}

// ListPending handles GET /mod/pending
// @Summary Posts awaiting approval
// @Tags moderation
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.PostResponse}
// @Router /mod/pending [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	posts, err := h.moderation.ListPending()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load pending posts", err)
		return
	}

	common.SuccessResponse(c, posts, &common.Meta{Total: int64(len(posts))})
}

// Approve handles POST /mod/approve
// @Summary Approve a pending post (idempotent)
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body ApproveRequest true "target post"
// @Success 200 {object} common.APIResponse
// @Router /mod/approve [post]
func (h *ModerationHandler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "post_id required", err)
		return
	}

	if err := h.moderation.Approve(c.Request.Context(), req.PostID); err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "approved"}, nil)
}

// Remove handles POST /mod/remove
// @Summary Remove a post with an optional reason
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body RemoveRequest true "target post and reason"
// @Success 200 {object} common.APIResponse
// @Router /mod/remove [post]
func (h *ModerationHandler) Remove(c *gin.Context) {
	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "post_id required", err)
		return
	}

	if err := h.moderation.Remove(c.Request.Context(), req.PostID, req.Reason); err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "removed"}, nil)
}

// Logs handles GET /mod/logs
// @Summary Recent audit entries, newest first
// @Tags moderation
// @Produce json
// @Param limit query int false "max entries"
// @Success 200 {object} common.APIResponse{data=[]domain.ModLogResponse}
// @Router /mod/logs [get]
func (h *ModerationHandler) Logs(c *gin.Context) {
	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	entries, err := h.moderation.Logs(limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load audit log", err)
		return
	}

	common.SuccessResponse(c, entries, &common.Meta{Total: int64(len(entries))})
}

// TriggerReset handles POST /admin/reset
// @Summary Purge all non-pinned posts now
// @Tags moderation
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /admin/reset [post]
func (h *ModerationHandler) TriggerReset(c *gin.Context) {
	purged, err := h.reset.Purge(c.Request.Context(), domain.ModActionManualReset)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "reset failed", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "reset done", "purged": purged}, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/middleware"
	"github.com/sleeptight/club-backend/internal/service"
)

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessage handles POST /messages
// @Summary Send a direct message (threshold or VIP)
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.SendMessageRequest true "message payload"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "recipient required", err)
		return
	}

	result, err := h.service.SendMessage(userID, &req)
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// ListMessages handles GET /messages
// @Summary Messages involving the caller, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Router /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	messages, err := h.service.ListMessages(userID)
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, messages, &common.Meta{Total: int64(len(messages))})
}

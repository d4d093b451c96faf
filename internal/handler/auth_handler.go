package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/middleware"
	"github.com/sleeptight/club-backend/internal/service"
)

// AuthHandler handles signup/login/profile HTTP requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup
// @Summary Register a new member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.SignupRequest true "signup payload"
// @Success 200 {object} common.APIResponse{data=domain.MemberResponse}
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "email and password required", err)
		return
	}

	result, err := h.service.Signup(&req)
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Login handles POST /auth/login
// @Summary Authenticate a member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "login payload"
// @Success 200 {object} common.APIResponse{data=service.LoginResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "email and password required", err)
		return
	}

	result, err := h.service.Login(&req)
	if err != nil {
		common.ErrorResponse(c, common.HTTPStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Me handles GET /auth/me
// @Summary Current member profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=domain.MemberResponse}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	result, err := h.service.GetMember(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "unknown member", err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

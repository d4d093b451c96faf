package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/venue"
)

// StatusHandler handles venue status requests
type StatusHandler struct {
	clock venue.Clock
	loc   *time.Location
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(clock venue.Clock, loc *time.Location) *StatusHandler {
	return &StatusHandler{clock: clock, loc: loc}
}

// GetStatus handles GET /status
// @Summary Venue open/closed status
// @Tags status
// @Produce json
// @Success 200 {object} common.APIResponse{data=venue.StatusInfo}
// @Router /status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	common.SuccessResponse(c, venue.Status(h.clock.Now(), h.loc), nil)
}

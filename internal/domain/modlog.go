package domain

import "time"

// Moderation log actions
const (
	ModActionApprove     = "approve"
	ModActionRemove      = "remove"
	ModActionManualReset = "manual_reset"
	ModActionDailyReset  = "daily_reset"
)

// ModLog is an append-only audit record of privileged and scheduled
// actions (mod_logs table). Entries are never mutated or deleted.
type ModLog struct {
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Action    string    `gorm:"column:action;index" json:"action"`
	Target    string    `gorm:"column:target" json:"target,omitempty"`
	Reason    string    `gorm:"column:reason" json:"reason,omitempty"`
}

func (ModLog) TableName() string {
	return "mod_logs"
}

// ModLogResponse represents an audit entry in API responses
type ModLogResponse struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Target    string `json:"target,omitempty"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts ModLog to ModLogResponse
func (l *ModLog) ToResponse() *ModLogResponse {
	return &ModLogResponse{
		ID:        l.ID,
		Action:    l.Action,
		Target:    l.Target,
		Reason:    l.Reason,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

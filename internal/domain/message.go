package domain

import "time"

// Message domain model (messages table).
// Messages are immutable once created and are never purged by the
// nightly reset.
type Message struct {
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	FromID    string    `gorm:"column:from_id;index" json:"from_id"`
	ToID      string    `gorm:"column:to_id;index" json:"to_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents a send message request
type SendMessageRequest struct {
	ToUserID string `json:"to_user_id" binding:"required"`
	Content  string `json:"content"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID        string `json:"id"`
	FromID    string `json:"from_id"`
	ToID      string `json:"to_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		FromID:    m.FromID,
		ToID:      m.ToID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

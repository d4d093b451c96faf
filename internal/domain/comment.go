package domain

import "time"

// Comment domain model (comments table).
// Comments are not cascade-deleted with their post; a removed post
// simply leaves its comments unreachable from the read API.
type Comment struct {
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	PostID    string    `gorm:"column:post_id;index" json:"post_id"`
	AuthorID  string    `gorm:"column:author_id;index" json:"author_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest represents a create comment request
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts Comment to CommentResponse
func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

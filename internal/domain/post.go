package domain

import "time"

// Post domain model (posts table).
// Non-VIP posts start unapproved and wait in the moderation queue;
// pinned posts survive the nightly reset.
type Post struct {
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	AuthorID  string    `gorm:"column:author_id;index" json:"author_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Approved  bool      `gorm:"column:approved;index" json:"approved"`
	Pinned    bool      `gorm:"column:pinned" json:"pinned"`
}

func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest represents a create post request
type CreatePostRequest struct {
	Content string `json:"content"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	Approved  bool   `json:"approved"`
	Pinned    bool   `json:"pinned"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts Post to PostResponse
func (p *Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		Approved:  p.Approved,
		Pinned:    p.Pinned,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// PostDetailResponse represents a post with its comments
type PostDetailResponse struct {
	Post     *PostResponse      `json:"post"`
	Comments []*CommentResponse `json:"comments"`
}

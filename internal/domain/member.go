package domain

import "time"

// Member domain model (members table)
type Member struct {
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	Email      string    `gorm:"column:email;uniqueIndex" json:"email"`
	Password   string    `gorm:"column:password" json:"-"`
	Nickname   string    `gorm:"column:nickname" json:"nickname"`
	MemberCode string    `gorm:"column:member_code;uniqueIndex" json:"member_code"`
	IsVip      bool      `gorm:"column:is_vip" json:"is_vip"`
}

func (Member) TableName() string {
	return "members"
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MemberResponse represents a member in API responses
type MemberResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Nickname   string `json:"nickname,omitempty"`
	MemberCode string `json:"member_code"`
	IsVip      bool   `json:"is_vip"`
}

// ToResponse converts Member to MemberResponse
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:         m.ID,
		Email:      m.Email,
		Nickname:   m.Nickname,
		MemberCode: m.MemberCode,
		IsVip:      m.IsVip,
	}
}

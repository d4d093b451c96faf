package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/venue"
)

// CommentService comment business logic. Every comment is a
// qualifying interaction between the comment author and the post
// author, recorded in the ledger in the same transaction.
type CommentService interface {
	CreateComment(actorID, postID, content string) (*domain.CommentResponse, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	members  repository.MemberRepository
	clock    venue.Clock
	loc      *time.Location
}

// NewCommentService creates a new CommentService
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	members repository.MemberRepository,
	clock venue.Clock,
	loc *time.Location,
) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		members:  members,
		clock:    clock,
		loc:      loc,
	}
}

// CreateComment creates a comment on a post. Validation runs before
// the venue gate; the target post must exist.
func (s *commentService) CreateComment(actorID, postID, content string) (*domain.CommentResponse, error) {
	member, err := s.members.FindByID(actorID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	if strings.TrimSpace(content) == "" {
		return nil, common.ErrContentRequired
	}

	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, common.ErrPostNotFound
	}

	if !member.IsVip && !venue.IsOpen(s.clock.Now(), s.loc) {
		return nil, common.ErrVenueClosed
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		AuthorID:  member.ID,
		Content:   truncateContent(content, maxCommentContent),
		CreatedAt: s.clock.Now(),
	}

	pair := domain.NewPair(post.AuthorID, member.ID)
	if err := s.comments.Create(comment, pair); err != nil {
		return nil, err
	}

	return comment.ToResponse(), nil
}

package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/venue"
	pkgcache "github.com/sleeptight/club-backend/pkg/cache"
	"github.com/sleeptight/club-backend/pkg/logger"
)

// PostService post business logic. Posting is gated on the nightly
// window unless the author is VIP; VIP posts skip the moderation
// queue entirely.
type PostService interface {
	CreatePost(ctx context.Context, actorID, content string) (*domain.PostResponse, error)
	ListApproved(ctx context.Context) ([]*domain.PostResponse, error)
	GetPost(id string) (*domain.PostDetailResponse, error)
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	members  repository.MemberRepository
	cache    pkgcache.Service
	clock    venue.Clock
	loc      *time.Location
}

// NewPostService creates a new PostService. cache may be nil.
func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	members repository.MemberRepository,
	cache pkgcache.Service,
	clock venue.Clock,
	loc *time.Location,
) PostService {
	return &postService{
		posts:    posts,
		comments: comments,
		members:  members,
		cache:    cache,
		clock:    clock,
		loc:      loc,
	}
}

// CreatePost creates a post. Validation runs before the venue gate.
func (s *postService) CreatePost(ctx context.Context, actorID, content string) (*domain.PostResponse, error) {
	member, err := s.members.FindByID(actorID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	if strings.TrimSpace(content) == "" {
		return nil, common.ErrContentRequired
	}

	if !member.IsVip && !venue.IsOpen(s.clock.Now(), s.loc) {
		return nil, common.ErrVenueClosed
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		AuthorID:  member.ID,
		Content:   truncateContent(content, maxPostContent),
		Approved:  member.IsVip,
		Pinned:    false,
		CreatedAt: s.clock.Now(),
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	if post.Approved {
		s.invalidateFeed(ctx)
	}

	return post.ToResponse(), nil
}

// ListApproved returns the approved feed, newest first
func (s *postService) ListApproved(ctx context.Context) ([]*domain.PostResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetFeed(ctx); err == nil {
			var cached []*domain.PostResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	posts, err := s.posts.FindApproved()
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = p.ToResponse()
	}

	if s.cache != nil {
		if err := s.cache.SetFeed(ctx, responses); err != nil {
			logger.Get().Warn().Err(err).Msg("feed cache write failed")
		}
	}

	return responses, nil
}

// GetPost returns a post with its comments, oldest first
func (s *postService) GetPost(id string) (*domain.PostDetailResponse, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, common.ErrPostNotFound
	}

	comments, err := s.comments.FindByPostID(post.ID)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]*domain.CommentResponse, len(comments))
	for i, c := range comments {
		commentResponses[i] = c.ToResponse()
	}

	return &domain.PostDetailResponse{
		Post:     post.ToResponse(),
		Comments: commentResponses,
	}, nil
}

func (s *postService) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("feed cache invalidation failed")
	}
}

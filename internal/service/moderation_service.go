package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/venue"
	pkgcache "github.com/sleeptight/club-backend/pkg/cache"
	"github.com/sleeptight/club-backend/pkg/logger"
)

// ModerationService post moderation state machine:
// pending -> approved (approve), pending|approved -> removed (remove).
// Removed is terminal; approved never goes back to pending.
type ModerationService interface {
	ListPending() ([]*domain.PostResponse, error)
	Approve(ctx context.Context, postID string) error
	Remove(ctx context.Context, postID, reason string) error
	Logs(limit int) ([]*domain.ModLogResponse, error)
}

type moderationService struct {
	posts repository.PostRepository
	logs  repository.ModLogRepository
	cache pkgcache.Service
	clock venue.Clock
}

// NewModerationService creates a new ModerationService. cache may be nil.
func NewModerationService(
	posts repository.PostRepository,
	logs repository.ModLogRepository,
	cache pkgcache.Service,
	clock venue.Clock,
) ModerationService {
	return &moderationService{
		posts: posts,
		logs:  logs,
		cache: cache,
		clock: clock,
	}
}

// ListPending returns posts awaiting approval
func (s *moderationService) ListPending() ([]*domain.PostResponse, error) {
	posts, err := s.posts.FindPending()
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = p.ToResponse()
	}
	return responses, nil
}

// Approve moves a pending post to approved. Approving an already
// approved post is a no-op success: no state change, no audit entry.
// The repository re-checks the pending state inside its transaction,
// so a concurrent approve of the same post cannot double-write the
// audit trail.
func (s *moderationService) Approve(ctx context.Context, postID string) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return common.ErrPostNotFound
	}
	if post.Approved {
		return nil
	}

	entry := s.newLog(domain.ModActionApprove, postID, "")
	applied, err := s.posts.ApproveWithLog(postID, entry)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	if !applied {
		return nil
	}

	s.invalidateFeed(ctx)
	return nil
}

// Remove deletes a post (pending or approved) with an audit entry
func (s *moderationService) Remove(ctx context.Context, postID, reason string) error {
	if _, err := s.posts.FindByID(postID); err != nil {
		return common.ErrPostNotFound
	}

	entry := s.newLog(domain.ModActionRemove, postID, reason)
	if err := s.posts.RemoveWithLog(postID, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}

	s.invalidateFeed(ctx)
	return nil
}

// Logs returns recent audit entries, newest first
func (s *moderationService) Logs(limit int) ([]*domain.ModLogResponse, error) {
	entries, err := s.logs.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.ModLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = e.ToResponse()
	}
	return responses, nil
}

func (s *moderationService) newLog(action, target, reason string) *domain.ModLog {
	return &domain.ModLog{
		ID:        uuid.NewString(),
		Action:    action,
		Target:    target,
		Reason:    reason,
		CreatedAt: s.clock.Now(),
	}
}

func (s *moderationService) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("feed cache invalidation failed")
	}
}

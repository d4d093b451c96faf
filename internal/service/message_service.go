package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/venue"
)

// MessageService direct message business logic. Messaging is not
// gated on venue hours: it unlocks once either party is VIP or the
// pair has reached the interaction threshold.
type MessageService interface {
	SendMessage(actorID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	ListMessages(actorID string) ([]*domain.MessageResponse, error)
}

type messageService struct {
	messages     repository.MessageRepository
	members      repository.MemberRepository
	interactions repository.InteractionRepository
	clock        venue.Clock
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messages repository.MessageRepository,
	members repository.MemberRepository,
	interactions repository.InteractionRepository,
	clock venue.Clock,
) MessageService {
	return &messageService{
		messages:     messages,
		members:      members,
		interactions: interactions,
		clock:        clock,
	}
}

// SendMessage sends a direct message if the pair is unlocked
func (s *messageService) SendMessage(actorID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	member, err := s.members.FindByID(actorID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, common.ErrContentRequired
	}

	if req.ToUserID == member.ID {
		return nil, common.ErrSelfMessage
	}

	recipient, err := s.members.FindByID(req.ToUserID)
	if err != nil {
		return nil, common.ErrRecipientNotFound
	}

	if !member.IsVip && !recipient.IsVip {
		count, err := s.interactions.Count(domain.NewPair(member.ID, recipient.ID))
		if err != nil {
			return nil, err
		}
		if count < domain.MessageThreshold {
			return nil, common.ErrMessageLocked
		}
	}

	msg := &domain.Message{
		ID:        uuid.NewString(),
		FromID:    member.ID,
		ToID:      recipient.ID,
		Content:   truncateContent(req.Content, maxMessageContent),
		CreatedAt: s.clock.Now(),
	}
	if err := s.messages.Create(msg); err != nil {
		return nil, err
	}

	return msg.ToResponse(), nil
}

// ListMessages returns every message involving the actor, newest first
func (s *messageService) ListMessages(actorID string) ([]*domain.MessageResponse, error) {
	if _, err := s.members.FindByID(actorID); err != nil {
		return nil, common.ErrUnauthorized
	}

	messages, err := s.messages.FindByMember(actorID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

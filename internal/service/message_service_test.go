package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
)

func newMessageService(messages *MockMessageRepository, members *MockMemberRepository, interactions *MockInteractionRepository) MessageService {
	return NewMessageService(messages, members, interactions, fixedClock{closedInstant()})
}

func TestSendMessageBelowThreshold(t *testing.T) {
	messages := new(MockMessageRepository)
	members := new(MockMemberRepository)
	interactions := new(MockInteractionRepository)

	members.On("FindByID", "alice").Return(regular("alice"), nil)
	members.On("FindByID", "bob").Return(regular("bob"), nil)
	interactions.On("Count", domain.NewPair("alice", "bob")).Return(int64(2), nil)

	svc := newMessageService(messages, members, interactions)

	_, err := svc.SendMessage("alice", &domain.SendMessageRequest{ToUserID: "bob", Content: "hey"})
	assert.ErrorIs(t, err, common.ErrMessageLocked)
	messages.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSendMessageAtThreshold(t *testing.T) {
	messages := new(MockMessageRepository)
	members := new(MockMemberRepository)
	interactions := new(MockInteractionRepository)

	members.On("FindByID", "alice").Return(regular("alice"), nil)
	members.On("FindByID", "bob").Return(regular("bob"), nil)
	interactions.On("Count", domain.NewPair("alice", "bob")).Return(int64(3), nil)
	messages.On("Create", mock.AnythingOfType("*domain.Message")).Return(nil)

	svc := newMessageService(messages, members, interactions)

	result, err := svc.SendMessage("alice", &domain.SendMessageRequest{ToUserID: "bob", Content: "finally"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", result.FromID)
	assert.Equal(t, "bob", result.ToID)
	messages.AssertExpectations(t)
}

func TestSendMessageVipSenderBypassesThreshold(t *testing.T) {
	messages := new(MockMessageRepository)
	members := new(MockMemberRepository)
	interactions := new(MockInteractionRepository)

	members.On("FindByID", "vera").Return(vip("vera"), nil)
	members.On("FindByID", "bob").Return(regular("bob"), nil)
	messages.On("Create", mock.Anything).Return(nil)

	svc := newMessageService(messages, members, interactions)

	_, err := svc.SendMessage("vera", &domain.SendMessageRequest{ToUserID: "bob", Content: "no gate for me"})
	assert.NoError(t, err)
	interactions.AssertNotCalled(t, "Count", mock.Anything)
}

func TestSendMessageVipRecipientBypassesThreshold(t *testing.T) {
	messages := new(MockMessageRepository)
	members := new(MockMemberRepository)
	interactions := new(MockInteractionRepository)

	members.On("FindByID", "alice").Return(regular("alice"), nil)
	members.On("FindByID", "vera").Return(vip("vera"), nil)
	messages.On("Create", mock.Anything).Return(nil)

	svc := newMessageService(messages, members, interactions)

	_, err := svc.SendMessage("alice", &domain.SendMessageRequest{ToUserID: "vera", Content: "hi vip"})
	assert.NoError(t, err)
	interactions.AssertNotCalled(t, "Count", mock.Anything)
}

func TestSendMessageToSelf(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("FindByID", "alice").Return(regular("alice"), nil)

	svc := newMessageService(new(MockMessageRepository), members, new(MockInteractionRepository))

	_, err := svc.SendMessage("alice", &domain.SendMessageRequest{ToUserID: "alice", Content: "note to self"})
	assert.ErrorIs(t, err, common.ErrSelfMessage)
}

func TestSendMessageRecipientNotFound(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("FindByID", "alice").Return(regular("alice"), nil)
	members.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := newMessageService(new(MockMessageRepository), members, new(MockInteractionRepository))

	_, err := svc.SendMessage("alice", &domain.SendMessageRequest{ToUserID: "ghost", Content: "anyone there"})
	assert.ErrorIs(t, err, common.ErrRecipientNotFound)
}

func TestSendMessageEmptyContent(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("FindByID", "alice").Return(regular("alice"), nil)

	svc := newMessageService(new(MockMessageRepository), members, new(MockInteractionRepository))

	_, err := svc.SendMessage("alice", &domain.SendMessageRequest{ToUserID: "bob", Content: "  "})
	assert.ErrorIs(t, err, common.ErrContentRequired)
}

func TestSendMessageTruncatesLongContent(t *testing.T) {
	messages := new(MockMessageRepository)
	members := new(MockMemberRepository)

	members.On("FindByID", "vera").Return(vip("vera"), nil)
	members.On("FindByID", "bob").Return(regular("bob"), nil)

	var created *domain.Message
	messages.On("Create", mock.AnythingOfType("*domain.Message")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.Message)
	}).Return(nil)

	svc := newMessageService(messages, members, new(MockInteractionRepository))

	_, err := svc.SendMessage("vera", &domain.SendMessageRequest{ToUserID: "bob", Content: strings.Repeat("z", 1200)})
	assert.NoError(t, err)
	assert.Equal(t, 1000, len([]rune(created.Content)))
}

func TestListMessagesUnknownActor(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := newMessageService(new(MockMessageRepository), members, new(MockInteractionRepository))

	_, err := svc.ListMessages("ghost")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestListMessagesBothDirections(t *testing.T) {
	messages := new(MockMessageRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "alice").Return(regular("alice"), nil)
	messages.On("FindByMember", "alice").Return([]*domain.Message{
		{ID: "m2", FromID: "bob", ToID: "alice"},
		{ID: "m1", FromID: "alice", ToID: "bob"},
	}, nil)

	svc := newMessageService(messages, members, new(MockInteractionRepository))

	result, err := svc.ListMessages("alice")
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "m2", result[0].ID)
}

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

func newCommentService(comments *MockCommentRepository, posts *MockPostRepository, members *MockMemberRepository, now fixedClock) CommentService {
	return NewCommentService(comments, posts, members, now, bangkok)
}

func TestCreateCommentRecordsInteraction(t *testing.T) {
	comments := new(MockCommentRepository)
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)

	members.On("FindByID", "bob").Return(regular("bob"), nil)
	posts.On("FindByID", "p1").Return(&domain.Post{ID: "p1", AuthorID: "alice"}, nil)

	var gotPair domain.Pair
	comments.On("Create", mock.AnythingOfType("*domain.Comment"), mock.AnythingOfType("domain.Pair")).
		Run(func(args mock.Arguments) {
			gotPair = args.Get(1).(domain.Pair)
		}).Return(nil)

	svc := newCommentService(comments, posts, members, fixedClock{openInstant()})

	result, err := svc.CreateComment("bob", "p1", "nice one")
	assert.NoError(t, err)
	assert.Equal(t, "p1", result.PostID)
	assert.Equal(t, "bob", result.AuthorID)
	// Ledger pair is canonical regardless of who commented on whom
	assert.Equal(t, domain.NewPair("alice", "bob"), gotPair)
	assert.Equal(t, "alice:bob", gotPair.Key())
}

func TestCreateCommentPostNotFound(t *testing.T) {
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "bob").Return(regular("bob"), nil)
	posts.On("FindByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := newCommentService(new(MockCommentRepository), posts, members, fixedClock{openInstant()})

	_, err := svc.CreateComment("bob", "missing", "hello?")
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestCreateCommentWhileClosedDenied(t *testing.T) {
	comments := new(MockCommentRepository)
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "bob").Return(regular("bob"), nil)
	posts.On("FindByID", "p1").Return(&domain.Post{ID: "p1", AuthorID: "alice"}, nil)

	svc := newCommentService(comments, posts, members, fixedClock{closedInstant()})

	_, err := svc.CreateComment("bob", "p1", "after hours")
	assert.ErrorIs(t, err, common.ErrVenueClosed)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentVipBypassesWindow(t *testing.T) {
	comments := new(MockCommentRepository)
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "vera").Return(vip("vera"), nil)
	posts.On("FindByID", "p1").Return(&domain.Post{ID: "p1", AuthorID: "alice"}, nil)
	comments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newCommentService(comments, posts, members, fixedClock{closedInstant()})

	_, err := svc.CreateComment("vera", "p1", "vip hours")
	assert.NoError(t, err)
}

func TestCreateCommentEmptyContentRejectedBeforeLookup(t *testing.T) {
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "bob").Return(regular("bob"), nil)

	svc := newCommentService(new(MockCommentRepository), posts, members, fixedClock{openInstant()})

	_, err := svc.CreateComment("bob", "p1", "")
	assert.ErrorIs(t, err, common.ErrContentRequired)
	posts.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestCreateCommentTruncatesLongContent(t *testing.T) {
	comments := new(MockCommentRepository)
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "bob").Return(regular("bob"), nil)
	posts.On("FindByID", "p1").Return(&domain.Post{ID: "p1", AuthorID: "alice"}, nil)

	var created *domain.Comment
	comments.On("Create", mock.AnythingOfType("*domain.Comment"), mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*domain.Comment)
		}).Return(nil)

	svc := newCommentService(comments, posts, members, fixedClock{openInstant()})

	_, err := svc.CreateComment("bob", "p1", strings.Repeat("y", 1500))
	assert.NoError(t, err)
	assert.Equal(t, 1000, len([]rune(created.Content)))
}

func TestCreateCommentOnOwnPostRecordsSelfPair(t *testing.T) {
	comments := new(MockCommentRepository)
	posts := new(MockPostRepository)
	members := new(MockMemberRepository)
	members.On("FindByID", "alice").Return(regular("alice"), nil)
	posts.On("FindByID", "p1").Return(&domain.Post{ID: "p1", AuthorID: "alice"}, nil)

	var gotPair domain.Pair
	comments.On("Create", mock.Anything, mock.AnythingOfType("domain.Pair")).
		Run(func(args mock.Arguments) {
			gotPair = args.Get(1).(domain.Pair)
		}).Return(nil)

	svc := newCommentService(comments, posts, members, fixedClock{openInstant()})

	_, err := svc.CreateComment("alice", "p1", "my own post")
	assert.NoError(t, err)
	assert.True(t, gotPair.Self(), "self-pair recorded but never unlocks messaging")
}

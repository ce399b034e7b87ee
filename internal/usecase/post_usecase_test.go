package usecase

import (
	"testing"
	"time"

	"guestbook/internal/entity"
	"guestbook/internal/repo/persistent"
	"guestbook/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetAll() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) CreateLike(userID, postID string) (*entity.Like, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockPostRepository) DeleteLike(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) IsLiked(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) GetLikeCount(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) CreateComment(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockPostRepository) GetCommentByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockPostRepository) GetAllComments() ([]*entity.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockPostRepository) DeleteComment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAddress(userID string) (*entity.Address, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *MockUserRepository) CreateAddress(address *entity.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAddress(address *entity.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// testRedisClient points at a closed port. Cache calls fail fast and the use
// case falls through to the repository, which is the path under test.
func testRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newTestPostUseCase(postRepo *MockPostRepository, userRepo *MockUserRepository) PostUseCase {
	return NewPostUseCase(postRepo, userRepo, testRedisClient(), nil, logger.New())
}

func activeUser(id string) *entity.User {
	return &entity.User{ID: id, Name: "Alice", SubscriptionStatus: entity.SubscriptionActive}
}

func inactiveUser(id string) *entity.User {
	return &entity.User{ID: id, Name: "Carol", SubscriptionStatus: "inactive"}
}

func TestPostMessage_CreatesPost(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(activeUser("user-1"), nil)
	postRepo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := uc.PostMessage("user-1", "Alice", "Hello World!!")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", post.UserID)
	assert.Equal(t, "Hello World!!", post.Message)
	postRepo.AssertExpectations(t)
}

func TestPostMessage_InactiveSubscription(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(inactiveUser("user-1"), nil)

	post, err := uc.PostMessage("user-1", "Carol", "Hello World!!")

	assert.Nil(t, post)
	assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	// The gate rejects before anything is written
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPostMessage_UserMissing(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.PostMessage("ghost", "Ghost", "Hello World!!")

	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
}

func TestUpdateMessage_NotOwner(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-2").Return(activeUser("user-2"), nil)
	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)

	post, err := uc.UpdateMessage("post-1", "user-2", "Hijacked text")

	assert.Nil(t, post)
	assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteMessage_NotOwner(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)

	post, err := uc.DeleteMessage("post-1", "user-2")

	assert.Nil(t, post)
	assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteMessage_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)
	postRepo.On("Delete", "post-1").Return(nil)

	post, err := uc.DeleteMessage("post-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	postRepo.AssertExpectations(t)
}

func TestLikeMessage_DuplicateIsConflict(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-2").Return(activeUser("user-2"), nil)
	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)
	postRepo.On("CreateLike", "user-2", "post-1").Return(nil, gorm.ErrDuplicatedKey)

	like, err := uc.LikeMessage("user-2", "post-1")

	assert.Nil(t, like)
	assert.Equal(t, entity.KindConflict, entity.KindOf(err))
}

func TestLikeMessage_PostMissing(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-2").Return(activeUser("user-2"), nil)
	postRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	like, err := uc.LikeMessage("user-2", "missing")

	assert.Nil(t, like)
	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
}

func TestLikeMessage_InactiveSubscription(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-3").Return(inactiveUser("user-3"), nil)

	like, err := uc.LikeMessage("user-3", "post-1")

	assert.Nil(t, like)
	assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
}

func TestUnlikeMessage_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("Exists", "post-1").Return(true, nil)
	postRepo.On("DeleteLike", "user-2", "post-1").Return(nil)

	err := uc.UnlikeMessage("user-2", "post-1")

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
}

func TestUnlikeMessage_NeverLiked(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("Exists", "post-1").Return(true, nil)
	postRepo.On("DeleteLike", "user-2", "post-1").Return(gorm.ErrRecordNotFound)

	err := uc.UnlikeMessage("user-2", "post-1")

	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
}

func TestUnlikeMessage_PostMissing(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("Exists", "missing").Return(false, nil)

	err := uc.UnlikeMessage("user-2", "missing")

	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "DeleteLike", mock.Anything, mock.Anything)
}

func TestIsLiked_StorageError(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("IsLiked", "user-2", "post-1").Return(false, assert.AnError)

	liked, err := uc.IsLiked("user-2", "post-1")

	assert.False(t, liked)
	assert.Equal(t, entity.KindInternal, entity.KindOf(err))
}

func TestGetLikeCount_FallsBackToRepository(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("GetLikeCount", "post-1").Return(int64(3), nil)

	count, err := uc.GetLikeCount("post-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	postRepo.AssertExpectations(t)
}

func TestCachedLikeCount(t *testing.T) {
	count, ok := cachedLikeCount("3")
	assert.True(t, ok)
	assert.Equal(t, int64(3), count)

	_, ok = cachedLikeCount("0")
	assert.True(t, ok)

	// A drifted or garbled counter falls back to the database
	_, ok = cachedLikeCount("-1")
	assert.False(t, ok)

	_, ok = cachedLikeCount("not-a-number")
	assert.False(t, ok)
}

func TestGetAllComments_FallsBackToRepository(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	comments := []*entity.Comment{
		{ID: "comment-1", PostID: "post-1", UserID: "user-2", UserName: "Bob", Message: "Nice one"},
	}
	postRepo.On("GetAllComments").Return(comments, nil)

	result, err := uc.GetAllComments()

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Bob", result[0].UserName)
}

func TestAddComment_InactiveSubscription(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-3").Return(inactiveUser("user-3"), nil)

	comment, err := uc.AddComment("user-3", "post-1", "A fine comment")

	assert.Nil(t, comment)
	assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "CreateComment", mock.Anything)
}

func TestAddComment_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-2").Return(activeUser("user-2"), nil)
	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)
	postRepo.On("CreateComment", mock.AnythingOfType("*entity.Comment")).Return(nil)

	comment, err := uc.AddComment("user-2", "post-1", "A fine comment")

	assert.NoError(t, err)
	assert.Equal(t, "post-1", comment.PostID)
	assert.Equal(t, "user-2", comment.UserID)
	postRepo.AssertExpectations(t)
}

func TestDeleteComment_NotOwner(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("GetCommentByID", "comment-1").
		Return(&entity.Comment{ID: "comment-1", UserID: "user-1"}, nil)

	comment, err := uc.DeleteComment("comment-1", "user-2")

	assert.Nil(t, comment)
	assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	postRepo.AssertNotCalled(t, "DeleteComment", mock.Anything)
}

func TestDeleteComment_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newTestPostUseCase(postRepo, userRepo)

	postRepo.On("GetCommentByID", "comment-1").
		Return(&entity.Comment{ID: "comment-1", UserID: "user-1"}, nil)
	postRepo.On("DeleteComment", "comment-1").Return(nil)

	comment, err := uc.DeleteComment("comment-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "comment-1", comment.ID)
	postRepo.AssertExpectations(t)
}

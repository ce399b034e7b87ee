package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"guestbook/internal/entity"
	"guestbook/internal/repo/persistent"
	"guestbook/pkg/logger"
	"guestbook/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	commentsCacheKey = "guestbook:comments"
	commentsCacheTTL = 5 * time.Minute
	likeCountKeyFmt  = "post:likes:%s"
	likeCountTTL     = 5 * time.Minute
)

type PostUseCase interface {
	PostMessage(userID, name, message string) (*entity.Post, error)
	GetAllMessages() ([]*entity.Post, error)
	UpdateMessage(postID, userID, message string) (*entity.Post, error)
	DeleteMessage(postID, userID string) (*entity.Post, error)
	LikeMessage(userID, postID string) (*entity.Like, error)
	UnlikeMessage(userID, postID string) error
	IsLiked(userID, postID string) (bool, error)
	GetLikeCount(postID string) (int64, error)
	GetAllComments() ([]*entity.Comment, error)
	AddComment(userID, postID, message string) (*entity.Comment, error)
	DeleteComment(commentID, userID string) (*entity.Comment, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// requireActiveSubscription is the gate in front of every write: post, edit,
// comment, like. It runs after authentication but before the operation is
// attempted.
func (uc *postUseCase) requireActiveSubscription(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NotFound("could not find user")
		}
		uc.logger.Error("Failed to load user %s: %v", userID, err)
		return entity.Internal("failed to load user", err)
	}
	if !user.HasActiveSubscription() {
		return entity.Forbidden("an active subscription is required")
	}
	return nil
}

func (uc *postUseCase) PostMessage(userID, name, message string) (*entity.Post, error) {
	if err := uc.requireActiveSubscription(userID); err != nil {
		return nil, err
	}

	post := &entity.Post{
		UserID:  userID,
		Name:    name,
		Message: message,
	}
	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create message: %v", err)
		return nil, entity.Internal("failed to create message", err)
	}

	uc.publishEvent(map[string]interface{}{
		"type":    "new_message",
		"post_id": post.ID,
		"user_id": userID,
	})

	return post, nil
}

func (uc *postUseCase) GetAllMessages() ([]*entity.Post, error) {
	posts, err := uc.postRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to fetch messages: %v", err)
		return nil, entity.Internal("failed to fetch messages", err)
	}
	return posts, nil
}

func (uc *postUseCase) UpdateMessage(postID, userID, message string) (*entity.Post, error) {
	if err := uc.requireActiveSubscription(userID); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("message not found")
		}
		return nil, entity.Internal("failed to load message", err)
	}

	if post.UserID != userID {
		return nil, entity.Forbidden("you can only update your own messages")
	}

	post.Message = message
	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update message %s: %v", postID, err)
		return nil, entity.Internal("failed to update message", err)
	}

	return post, nil
}

func (uc *postUseCase) DeleteMessage(postID, userID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("message not found")
		}
		return nil, entity.Internal("failed to load message", err)
	}

	if post.UserID != userID {
		return nil, entity.Forbidden("you can only delete your own messages")
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		uc.logger.Error("Failed to delete message %s: %v", postID, err)
		return nil, entity.Internal("failed to delete message", err)
	}

	ctx := context.Background()
	uc.redisClient.Del(ctx, fmt.Sprintf(likeCountKeyFmt, postID))
	uc.redisClient.Del(ctx, commentsCacheKey)

	return post, nil
}

// LikeMessage inserts without checking first; the composite unique constraint
// decides the race and a duplicate comes back as a conflict.
func (uc *postUseCase) LikeMessage(userID, postID string) (*entity.Like, error) {
	if err := uc.requireActiveSubscription(userID); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("message not found")
		}
		return nil, entity.Internal("failed to load message", err)
	}

	like, err := uc.postRepo.CreateLike(userID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.Conflict("message already liked")
		}
		uc.logger.Error("Failed to like message %s: %v", postID, err)
		return nil, entity.Internal("failed to like message", err)
	}

	// Invalidate rather than adjust: an Incr would mint a fresh key after
	// eviction and the counter would drift from the rows.
	uc.redisClient.Del(context.Background(), fmt.Sprintf(likeCountKeyFmt, postID))

	if post.UserID != userID {
		uc.publishEvent(map[string]interface{}{
			"type":     "like",
			"post_id":  postID,
			"user_id":  post.UserID,
			"liker_id": userID,
		})
	}

	return like, nil
}

func (uc *postUseCase) UnlikeMessage(userID, postID string) error {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		uc.logger.Error("Failed to load message %s: %v", postID, err)
		return entity.Internal("failed to load message", err)
	}
	if !exists {
		return entity.NotFound("message not found")
	}

	if err := uc.postRepo.DeleteLike(userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NotFound("like not found")
		}
		uc.logger.Error("Failed to unlike message %s: %v", postID, err)
		return entity.Internal("failed to unlike message", err)
	}

	uc.redisClient.Del(context.Background(), fmt.Sprintf(likeCountKeyFmt, postID))
	return nil
}

func (uc *postUseCase) IsLiked(userID, postID string) (bool, error) {
	liked, err := uc.postRepo.IsLiked(userID, postID)
	if err != nil {
		uc.logger.Error("Failed to check like on message %s: %v", postID, err)
		return false, entity.Internal("failed to check like", err)
	}
	return liked, nil
}

// cachedLikeCount parses a cached counter value. A negative or garbled value
// means the key is stale and the database is authoritative.
func cachedLikeCount(raw string) (int64, bool) {
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

// GetLikeCount serves from the Redis counter when present and falls back to
// the database, repopulating the counter on the way out.
func (uc *postUseCase) GetLikeCount(postID string) (int64, error) {
	ctx := context.Background()
	key := fmt.Sprintf(likeCountKeyFmt, postID)

	if raw, err := uc.redisClient.Get(ctx, key).Result(); err == nil {
		if count, ok := cachedLikeCount(raw); ok {
			return count, nil
		}
	}

	count, err := uc.postRepo.GetLikeCount(postID)
	if err != nil {
		return 0, entity.Internal("failed to count likes", err)
	}

	uc.redisClient.Set(ctx, key, count, likeCountTTL)
	return count, nil
}

// GetAllComments is cached as a whole: the list is identical for every caller,
// so mutations just drop the key and the next read refetches.
func (uc *postUseCase) GetAllComments() ([]*entity.Comment, error) {
	ctx := context.Background()

	if cached, err := uc.redisClient.Get(ctx, commentsCacheKey).Result(); err == nil {
		var comments []*entity.Comment
		if jsonErr := json.Unmarshal([]byte(cached), &comments); jsonErr == nil {
			return comments, nil
		}
	}

	comments, err := uc.postRepo.GetAllComments()
	if err != nil {
		uc.logger.Error("Failed to fetch comments: %v", err)
		return nil, entity.Internal("failed to fetch comments", err)
	}

	if data, err := json.Marshal(comments); err == nil {
		uc.redisClient.Set(ctx, commentsCacheKey, data, commentsCacheTTL)
	}

	return comments, nil
}

func (uc *postUseCase) AddComment(userID, postID, message string) (*entity.Comment, error) {
	if err := uc.requireActiveSubscription(userID); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("message not found")
		}
		return nil, entity.Internal("failed to load message", err)
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  userID,
		Message: message,
	}
	if err := uc.postRepo.CreateComment(comment); err != nil {
		uc.logger.Error("Failed to add comment: %v", err)
		return nil, entity.Internal("failed to add comment", err)
	}

	uc.redisClient.Del(context.Background(), commentsCacheKey)

	if post.UserID != userID {
		uc.publishEvent(map[string]interface{}{
			"type":         "new_comment",
			"post_id":      postID,
			"user_id":      post.UserID,
			"commenter_id": userID,
		})
	}

	return comment, nil
}

func (uc *postUseCase) DeleteComment(commentID, userID string) (*entity.Comment, error) {
	comment, err := uc.postRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NotFound("comment not found")
		}
		return nil, entity.Internal("failed to load comment", err)
	}

	if comment.UserID != userID {
		return nil, entity.Forbidden("you can only delete your own comments")
	}

	if err := uc.postRepo.DeleteComment(commentID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return nil, entity.Internal("failed to delete comment", err)
	}

	uc.redisClient.Del(context.Background(), commentsCacheKey)
	return comment, nil
}

// publishEvent hands the event to the notification queue without blocking the
// request; failures are logged and swallowed.
func (uc *postUseCase) publishEvent(event map[string]interface{}) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		if err := uc.queueClient.PublishEvent(event); err != nil {
			uc.logger.Error("Failed to publish %v event: %v", event["type"], err)
		}
	}()
}

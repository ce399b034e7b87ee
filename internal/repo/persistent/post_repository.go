package persistent

import (
	"guestbook/internal/entity"
	"guestbook/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	GetAll() ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
	Exists(id string) (bool, error)

	CreateLike(userID, postID string) (*entity.Like, error)
	DeleteLike(userID, postID string) error
	IsLiked(userID, postID string) (bool, error)
	GetLikeCount(postID string) (int64, error)

	CreateComment(comment *entity.Comment) error
	GetCommentByID(id string) (*entity.Comment, error)
	GetAllComments() ([]*entity.Comment, error)
	DeleteComment(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetAll() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Save(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

// Delete removes the post together with its likes and comments in one
// transaction.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, "id = ?", id).Error
	})
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateLike inserts without a pre-check; a duplicate surfaces as
// gorm.ErrDuplicatedKey from the composite unique index.
func (r *postRepository) CreateLike(userID, postID string) (*entity.Like, error) {
	likeModel := &model.LikeModel{
		UserID: userID,
		PostID: postID,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		return nil, err
	}
	return ToLikeEntity(likeModel), nil
}

func (r *postRepository) DeleteLike(userID, postID string) error {
	result := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) IsLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) GetLikeCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postRepository) CreateComment(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	userName := comment.UserName
	*comment = *ToCommentEntity(commentModel)
	comment.UserName = userName
	return nil
}

func (r *postRepository) GetCommentByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Preload("User").Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *postRepository) GetAllComments() ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Preload("User").Order("created_at DESC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *postRepository) DeleteComment(id string) error {
	result := r.db.Delete(&model.CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

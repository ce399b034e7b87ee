package persistent

import (
	"guestbook/internal/entity"
	"guestbook/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		Image:              m.Image,
		Password:           m.Password,
		SubscriptionStatus: m.SubscriptionStatus,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 e.ID,
		Name:               e.Name,
		Email:              e.Email,
		Image:              e.Image,
		Password:           e.Password,
		SubscriptionStatus: e.SubscriptionStatus,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		UserName:  m.User.Name,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToAddressEntity(m *model.AddressModel) *entity.Address {
	if m == nil {
		return nil
	}

	return &entity.Address{
		ID:        m.ID,
		UserID:    m.UserID,
		Street:    m.Street,
		City:      m.City,
		Zip:       m.Zip,
		Country:   m.Country,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAddressModel(e *entity.Address) *model.AddressModel {
	if e == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Street:    e.Street,
		City:      e.City,
		Zip:       e.Zip,
		Country:   e.Country,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

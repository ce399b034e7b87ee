package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string         `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Message   string         `gorm:"type:varchar(100);not null" json:"message"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User UserModel `gorm:"foreignKey:UserID" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID                 string         `gorm:"type:uuid;primary_key" json:"id"`
	Name               string         `gorm:"type:varchar(100);not null" json:"name"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	Image              string         `gorm:"type:varchar(500)" json:"image"`
	Password           string         `gorm:"not null" json:"-"`
	SubscriptionStatus string         `gorm:"type:varchar(50);default:'inactive'" json:"subscription_status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

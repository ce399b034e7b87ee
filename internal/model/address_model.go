package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Street    string    `gorm:"type:varchar(255);not null" json:"street"`
	City      string    `gorm:"type:varchar(100);not null" json:"city"`
	Zip       string    `gorm:"type:varchar(10);not null" json:"zip"`
	Country   string    `gorm:"type:varchar(100);not null" json:"country"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AddressModel) TableName() string {
	return "user_addresses"
}

func (a *AddressModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

package entity

import "time"

// Address is the one-per-user shipping address; updates overwrite every field.
type Address struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

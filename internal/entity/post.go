package entity

import "time"

// Post is a guestbook message. Name is a display snapshot of the author at
// posting time; ownership checks go through UserID.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package entity

import "time"

// SubscriptionActive is the only billing status that unlocks writes. The
// status string itself is owned by the external billing provider; everything
// else is treated as inactive.
const SubscriptionActive = "active"

type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Image              string    `json:"image"`
	Password           string    `json:"-"`
	SubscriptionStatus string    `json:"subscription_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) HasActiveSubscription() bool {
	return u.SubscriptionStatus == SubscriptionActive
}

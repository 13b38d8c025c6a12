package user

import "time"

// User caches the profile exposed by the identity provider. No credentials
// are stored here; the provider owns the account.
type User struct {
	UID         string    `gorm:"primaryKey;column:uid"`
	DisplayName string    `gorm:"column:display_name"`
	PhotoURL    string    `gorm:"column:photo_url"`
	Email       string    `gorm:"column:email"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	LastSeenAt  time.Time `gorm:"column:last_seen_at"`
}

func (User) TableName() string {
	return "users"
}

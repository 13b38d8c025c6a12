package user

import (
	"time"

	"github.com/jdelarosa/finanzas-api/internal"
	userDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/user"
)

// Profile is the locally cached view of an identity-provider account.
type Profile struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"display_name,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

var ErrNotFound = internal.ErrUserNotFound

func FromDataModel(u *userDatamodel.User) *Profile {
	return &Profile{
		UID:         u.UID,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastSeenAt:  u.LastSeenAt,
	}
}

package auth

import (
	"log/slog"
	"time"

	userDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/user"
)

// UserRepository caches identity-provider profiles locally.
type UserRepository interface {
	Upsert(user *userDatamodel.User) error
	GetByUID(uid string) (*userDatamodel.User, error)
}

type Service struct {
	verifier TokenVerifier
	users    UserRepository
	logger   *slog.Logger
}

func NewService(verifier TokenVerifier, users UserRepository, logger *slog.Logger) *Service {
	return &Service{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// ResolveUser verifies the presented ID token and refreshes the local
// profile cache for its subject. The provider is the source of truth for
// profile fields; every verified request re-syncs them.
func (s *Service) ResolveUser(tokenString string) (*User, error) {
	claims, err := s.verifier.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	record := &userDatamodel.User{
		UID:         claims.Subject,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
		Email:       claims.Email,
		LastSeenAt:  time.Now(),
	}

	if err := s.users.Upsert(record); err != nil {
		// Profile caching is best effort; a verified token still opens a session.
		s.logger.Warn("failed to cache user profile", "uid", claims.Subject, "error", err)
	}

	return &User{
		UID:         claims.Subject,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
		Email:       claims.Email,
	}, nil
}

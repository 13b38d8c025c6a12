package user

import (
	"log/slog"

	userDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	Upsert(user *userDatamodel.User) error
	GetByUID(uid string) (*userDatamodel.User, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetProfile(uid string) (*Profile, error) {
	record, err := s.repo.GetByUID(uid)
	if err != nil {
		s.logger.Error("failed to get user profile", "uid", uid, "error", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(record), nil
}

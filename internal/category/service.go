package category

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	categoryDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetByUserID(userID string) ([]*categoryDatamodel.Category, error)
	GetByID(id string) (*categoryDatamodel.Category, error)
	Create(category *categoryDatamodel.Category) error
	Update(category *categoryDatamodel.Category) error
	Delete(id string) error
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

// GetCategories lists the user's categories.
func (s *Service) GetCategories(userID string) ([]*Category, error) {
	records, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err, "user_id", userID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// CreateCategory persists a new category owned by userID and returns it
// with its store-assigned id.
func (s *Service) CreateCategory(userID string, dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("category validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	now := time.Now()
	record := &categoryDatamodel.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      dto.Name,
		Type:      dto.Type,
		Color:     dto.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create category", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("category created", "category_id", record.ID, "user_id", userID, "type", record.Type)
	return FromDataModel(record), nil
}

// UpdateCategory applies a partial update to a category the user owns.
func (s *Service) UpdateCategory(id, userID string, dto UpdateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("category validation failed", "error", err, "category_id", id)
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return nil, err
	}
	if record == nil {
		return nil, ErrCategoryNotFound
	}
	if record.UserID != userID {
		s.logger.Warn("unauthorized category update", "category_id", id, "user_id", userID, "owner_id", record.UserID)
		return nil, ErrUnauthorizedAccess
	}

	if dto.Name != nil {
		record.Name = *dto.Name
	}
	if dto.Type != nil {
		record.Type = *dto.Type
	}
	if dto.Color != nil {
		record.Color = *dto.Color
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, err
	}

	return FromDataModel(record), nil
}

// DeleteCategory removes a category the user owns. Transactions referencing
// it are left untouched; their category reference dangles and is displayed
// verbatim as a fallback label.
func (s *Service) DeleteCategory(id, userID string) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get category for deletion", "error", err, "category_id", id)
		return err
	}
	if record == nil {
		return ErrCategoryNotFound
	}
	if record.UserID != userID {
		s.logger.Warn("unauthorized category deletion", "category_id", id, "user_id", userID, "owner_id", record.UserID)
		return ErrUnauthorizedAccess
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return err
	}

	s.logger.Info("category deleted", "category_id", id, "user_id", userID)
	return nil
}

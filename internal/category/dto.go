package category

import "github.com/jdelarosa/finanzas-api/internal"

// CreateCategoryDTO is the request payload for creating a category
type CreateCategoryDTO struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

func (dto CreateCategoryDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if !ValidType(dto.Type) {
		return internal.NewValidationError("type must be either 'expense' or 'income'", internal.ErrCodeInvalidType)
	}
	return nil
}

// UpdateCategoryDTO is a partial update; nil fields are left untouched.
type UpdateCategoryDTO struct {
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
	Color *string `json:"color,omitempty"`
}

func (dto UpdateCategoryDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return internal.NewValidationError("name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Type != nil && !ValidType(*dto.Type) {
		return internal.NewValidationError("type must be either 'expense' or 'income'", internal.ErrCodeInvalidType)
	}
	return nil
}

type CategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

// Domain errors, shared with the HTTP layer so responses carry the
// right status and error code.
var (
	ErrCategoryNotFound   = internal.ErrCategoryNotFound
	ErrUnauthorizedAccess = internal.ErrUnauthorizedAccess
)

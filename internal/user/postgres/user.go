package postgres

import (
	userDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/user"
	"github.com/jdelarosa/finanzas-api/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

// Upsert inserts the profile on first sight and refreshes the mutable
// profile fields afterwards. created_at is preserved across updates.
func (r *UserRepository) Upsert(u *userDatamodel.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_name", "photo_url", "email", "last_seen_at",
		}),
	}).Create(u).Error
}

func (r *UserRepository) GetByUID(uid string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("uid = ?", uid).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

package postgres

import (
	"time"

	transactionDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/transaction"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.RepositoryAPI {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(record *transactionDatamodel.Transaction) error {
	return r.db.Create(record).Error
}

func (r *TransactionRepository) GetByID(id string) (*transactionDatamodel.Transaction, error) {
	var record transactionDatamodel.Transaction
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// GetByDateRange returns the user's transactions with date in [start, end],
// inclusive on both ends, ordered by date descending.
func (r *TransactionRepository) GetByDateRange(userID string, start, end time.Time) ([]*transactionDatamodel.Transaction, error) {
	var records []*transactionDatamodel.Transaction
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *TransactionRepository) Update(record *transactionDatamodel.Transaction) error {
	return r.db.Save(record).Error
}

func (r *TransactionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&transactionDatamodel.Transaction{}).Error
}

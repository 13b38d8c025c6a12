package transaction

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	transactionDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/transaction"
)

type RepositoryAPI interface {
	Create(record *transactionDatamodel.Transaction) error
	GetByID(id string) (*transactionDatamodel.Transaction, error)
	GetByDateRange(userID string, start, end time.Time) ([]*transactionDatamodel.Transaction, error)
	Update(record *transactionDatamodel.Transaction) error
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

// CreateTransaction records a transaction for userID and returns it with
// its store-assigned id. The modification timestamp starts at now.
func (s *Service) CreateTransaction(userID string, dto CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	record := &transactionDatamodel.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        dto.Type,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		Timestamp:   time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create transaction", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("transaction created",
		"transaction_id", record.ID,
		"user_id", userID,
		"amount", record.Amount,
		"type", record.Type)

	return FromDataModel(record), nil
}

// UpdateTransaction applies a partial edit to a transaction the user owns
// and refreshes its modification timestamp.
func (s *Service) UpdateTransaction(id, userID string, dto UpdateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err, "transaction_id", id)
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get transaction", "error", err, "transaction_id", id)
		return nil, err
	}
	if record == nil {
		return nil, ErrTransactionNotFound
	}
	if record.UserID != userID {
		s.logger.Warn("unauthorized transaction update", "transaction_id", id, "user_id", userID, "owner_id", record.UserID)
		return nil, ErrUnauthorizedAccess
	}

	if dto.Type != nil {
		record.Type = *dto.Type
	}
	if dto.Amount != nil {
		record.Amount = *dto.Amount
	}
	if dto.Category != nil {
		record.Category = *dto.Category
	}
	if dto.Description != nil {
		record.Description = *dto.Description
	}
	if dto.Date != nil {
		record.Date = *dto.Date
	}
	record.Timestamp = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update transaction", "error", err, "transaction_id", id)
		return nil, err
	}

	return FromDataModel(record), nil
}

// DeleteTransaction removes a transaction the user owns. There is no undo.
func (s *Service) DeleteTransaction(id, userID string) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get transaction for deletion", "error", err, "transaction_id", id)
		return err
	}
	if record == nil {
		return ErrTransactionNotFound
	}
	if record.UserID != userID {
		s.logger.Warn("unauthorized transaction deletion", "transaction_id", id, "user_id", userID, "owner_id", record.UserID)
		return ErrUnauthorizedAccess
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		return err
	}

	s.logger.Info("transaction deleted", "transaction_id", id, "user_id", userID)
	return nil
}

// GetTransactionsByMonth returns the transactions whose date falls within
// the calendar month containing ref, newest first.
func (s *Service) GetTransactionsByMonth(userID string, ref time.Time) ([]*Transaction, error) {
	start, end := MonthBounds(ref)
	return s.GetTransactionsByDateRange(userID, start, end)
}

// GetTransactionsByDateRange returns transactions with date in [start, end],
// inclusive on both ends, newest first.
func (s *Service) GetTransactionsByDateRange(userID string, start, end time.Time) ([]*Transaction, error) {
	records, err := s.repo.GetByDateRange(userID, start, end)
	if err != nil {
		s.logger.Error("failed to get transactions", "error", err, "user_id", userID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

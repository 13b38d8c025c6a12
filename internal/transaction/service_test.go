package transaction_test

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jdelarosa/finanzas-api/internal"
	transactionDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/transaction"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
)

func TestTransactionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transaction Service Suite")
}

type mockRepository struct {
	transactions map[string]*transactionDatamodel.Transaction
	shouldFail   bool
	failError    error
	gotStart     time.Time
	gotEnd       time.Time
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		transactions: make(map[string]*transactionDatamodel.Transaction),
	}
}

func (m *mockRepository) Create(record *transactionDatamodel.Transaction) error {
	if m.shouldFail {
		return m.failError
	}
	m.transactions[record.ID] = record
	return nil
}

func (m *mockRepository) GetByID(id string) (*transactionDatamodel.Transaction, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	record, exists := m.transactions[id]
	if !exists {
		return nil, nil
	}
	return record, nil
}

func (m *mockRepository) GetByDateRange(userID string, start, end time.Time) ([]*transactionDatamodel.Transaction, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	m.gotStart = start
	m.gotEnd = end
	var result []*transactionDatamodel.Transaction
	for _, record := range m.transactions {
		if record.UserID != userID {
			continue
		}
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (m *mockRepository) Update(record *transactionDatamodel.Transaction) error {
	if m.shouldFail {
		return m.failError
	}
	m.transactions[record.ID] = record
	return nil
}

func (m *mockRepository) Delete(id string) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.transactions, id)
	return nil
}

var _ = Describe("TransactionService", func() {
	var (
		repo    *mockRepository
		service *transaction.Service
	)

	BeforeEach(func() {
		repo = newMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = transaction.NewService(repo, logger)
	})

	Describe("CreateTransaction", func() {
		It("assigns an id and an initial timestamp", func() {
			created, err := service.CreateTransaction("user-1", transaction.CreateTransactionDTO{
				Type:        transaction.TypeExpense,
				Amount:      -3500,
				Category:    "cat-food",
				Description: "Coffee",
				Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Timestamp).NotTo(BeZero())
			Expect(repo.transactions).To(HaveKey(created.ID))
		})

		It("rejects a zero amount", func() {
			_, err := service.CreateTransaction("user-1", transaction.CreateTransactionDTO{
				Type:        transaction.TypeExpense,
				Amount:      0,
				Category:    "cat-food",
				Description: "Coffee",
				Date:        time.Now(),
			})

			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidAmount))
		})

		It("accepts a sign that contradicts the declared type", func() {
			created, err := service.CreateTransaction("user-1", transaction.CreateTransactionDTO{
				Type:        transaction.TypeExpense,
				Amount:      500,
				Category:    "cat-food",
				Description: "Refund",
				Date:        time.Now(),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Amount).To(Equal(500.0))
			Expect(created.Type).To(Equal(transaction.TypeExpense))
		})
	})

	Describe("UpdateTransaction", func() {
		var original *transactionDatamodel.Transaction

		BeforeEach(func() {
			original = &transactionDatamodel.Transaction{
				ID:          "tx-1",
				UserID:      "user-1",
				Type:        transaction.TypeExpense,
				Amount:      -3500,
				Category:    "cat-food",
				Description: "Coffee",
				Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				Timestamp:   time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
			}
			repo.transactions["tx-1"] = original
		})

		It("applies only the provided fields and refreshes the timestamp", func() {
			amount := -4000.0
			before := original.Timestamp

			updated, err := service.UpdateTransaction("tx-1", "user-1", transaction.UpdateTransactionDTO{Amount: &amount})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Amount).To(Equal(-4000.0))
			Expect(updated.Description).To(Equal("Coffee"))
			Expect(updated.Timestamp).To(BeTemporally(">", before))
		})

		It("returns not found for an unknown id", func() {
			amount := -4000.0
			_, err := service.UpdateTransaction("missing", "user-1", transaction.UpdateTransactionDTO{Amount: &amount})

			Expect(err).To(MatchError(transaction.ErrTransactionNotFound))
		})

		It("refuses to touch another user's transaction", func() {
			amount := -4000.0
			_, err := service.UpdateTransaction("tx-1", "user-2", transaction.UpdateTransactionDTO{Amount: &amount})

			Expect(err).To(MatchError(transaction.ErrUnauthorizedAccess))
		})
	})

	Describe("DeleteTransaction", func() {
		BeforeEach(func() {
			repo.transactions["tx-1"] = &transactionDatamodel.Transaction{ID: "tx-1", UserID: "user-1"}
		})

		It("removes the transaction", func() {
			Expect(service.DeleteTransaction("tx-1", "user-1")).To(Succeed())
			Expect(repo.transactions).NotTo(HaveKey("tx-1"))
		})

		It("refuses to delete another user's transaction", func() {
			err := service.DeleteTransaction("tx-1", "user-2")

			Expect(err).To(MatchError(transaction.ErrUnauthorizedAccess))
		})

		It("propagates repository errors", func() {
			repo.shouldFail = true
			repo.failError = errors.New("connection refused")

			Expect(service.DeleteTransaction("tx-1", "user-1")).To(MatchError(repo.failError))
		})
	})

	Describe("GetTransactionsByMonth", func() {
		It("queries the full calendar month, inclusive on both ends", func() {
			ref := time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC)

			_, err := service.GetTransactionsByMonth("user-1", ref)

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.gotStart).To(Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
			Expect(repo.gotEnd).To(Equal(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)))
		})

		It("covers leap February", func() {
			ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

			_, err := service.GetTransactionsByMonth("user-1", ref)

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.gotEnd).To(Equal(time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)))
		})
	})
})

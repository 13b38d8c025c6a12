package report

import (
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jdelarosa/finanzas-api/internal/analytics"
	"github.com/jdelarosa/finanzas-api/internal/category"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
)

type TransactionReader interface {
	GetTransactionsByMonth(userID string, ref time.Time) ([]*transaction.Transaction, error)
}

type CategoryReader interface {
	GetCategories(userID string) ([]*category.Category, error)
}

type Service struct {
	transactions TransactionReader
	categories   CategoryReader
	logger       *slog.Logger
}

func NewService(transactions TransactionReader, categories CategoryReader, logger *slog.Logger) *Service {
	return &Service{
		transactions: transactions,
		categories:   categories,
		logger:       logger,
	}
}

// GetMonthlyReport assembles the statement for the calendar month
// containing ref. Transactions arrive newest first from the store and keep
// that order in the statement.
func (s *Service) GetMonthlyReport(userID string, ref time.Time) (*MonthlyReport, error) {
	var (
		records    []*transaction.Transaction
		categories []*category.Category
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		records, err = s.transactions.GetTransactionsByMonth(userID, ref)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetCategories(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load monthly report", "error", err, "user_id", userID, "month", ref.Format("2006-01"))
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	lines := make([]Line, len(records))
	for i, t := range records {
		name := t.Category
		if resolved, ok := names[t.Category]; ok {
			name = resolved
		}
		lines[i] = Line{
			ID:           t.ID,
			Date:         t.Date,
			Description:  t.Description,
			Category:     t.Category,
			CategoryName: name,
			Amount:       t.Amount,
		}
	}

	return &MonthlyReport{
		Month:   ref.Format("2006-01"),
		Summary: analytics.Summarize(records),
		Lines:   lines,
	}, nil
}

package analytics

import (
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jdelarosa/finanzas-api/internal/category"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
)

// TransactionReader is the slice of the transaction service the engine
// needs: the raw records of a lookback window.
type TransactionReader interface {
	GetTransactionsByDateRange(userID string, start, end time.Time) ([]*transaction.Transaction, error)
}

// CategoryReader resolves the user's categories for name lookups.
type CategoryReader interface {
	GetCategories(userID string) ([]*category.Category, error)
}

type Service struct {
	transactions TransactionReader
	categories   CategoryReader
	logger       *slog.Logger
	now          func() time.Time
}

func NewService(transactions TransactionReader, categories CategoryReader, logger *slog.Logger) *Service {
	return &Service{
		transactions: transactions,
		categories:   categories,
		logger:       logger,
		now:          time.Now,
	}
}

// window returns the lookback range for a months-long analysis: from the
// first day of the month months-1 months ago up to now.
func (s *Service) window(months int) (time.Time, time.Time) {
	now := s.now()
	year, month, _ := now.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	return start, now
}

// fetch loads the window's transactions and the user's categories in
// parallel. Both slices are freshly owned by the caller.
func (s *Service) fetch(userID string, months int) ([]*transaction.Transaction, []*category.Category, time.Time, error) {
	start, end := s.window(months)

	var (
		transactions []*transaction.Transaction
		categories   []*category.Category
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		transactions, err = s.transactions.GetTransactionsByDateRange(userID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetCategories(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load analytics window", "error", err, "user_id", userID, "months", months)
		return nil, nil, time.Time{}, err
	}

	return transactions, categories, end, nil
}

// GetOverview aggregates the window into monthly buckets, directional
// category breakdowns, window totals and the latest month's growth against
// the one before it.
func (s *Service) GetOverview(userID string, months int) (*Overview, error) {
	transactions, categories, _, err := s.fetch(userID, months)
	if err != nil {
		return nil, err
	}

	// Records arrive newest first from the store; present buckets in
	// chronological order so the growth comparison reads latest vs previous.
	buckets := BucketByMonth(transactions)
	sort.Slice(buckets, func(a, b int) bool { return buckets[a].Month < buckets[b].Month })
	summary := Summarize(transactions)

	growth := "N/A"
	if n := len(buckets); n >= 2 {
		growth = Growth(buckets[n-1].Expenses, buckets[n-2].Expenses)
	}

	var averageIncome, averageExpenses float64
	if len(buckets) > 0 {
		averageIncome = summary.TotalIncome / float64(len(buckets))
		averageExpenses = summary.TotalExpenses / float64(len(buckets))
	}

	return &Overview{
		Months:            months,
		Summary:           summary,
		MonthlyBuckets:    buckets,
		IncomeByCategory:  BreakdownByCategory(transactions, DirectionIncome, categories),
		ExpenseByCategory: BreakdownByCategory(transactions, DirectionExpense, categories),
		AverageIncome:     averageIncome,
		AverageExpenses:   averageExpenses,
		ExpenseGrowth:     growth,
	}, nil
}

// GetTrends computes per-category spending trajectories with a one-step
// linear prediction.
func (s *Service) GetTrends(userID string, months int) ([]CategoryTrend, error) {
	transactions, categories, now, err := s.fetch(userID, months)
	if err != nil {
		return nil, err
	}
	return TrendByCategory(transactions, months, now, categories), nil
}

// GetActiveDays reports the day-of-month numbers with the highest income
// and expense activity over the window.
func (s *Service) GetActiveDays(userID string, months int) (*ActiveDays, error) {
	transactions, _, _, err := s.fetch(userID, months)
	if err != nil {
		return nil, err
	}

	incomeDays, expenseDays := MostActiveDays(transactions)
	return &ActiveDays{
		Months:      months,
		IncomeDays:  incomeDays,
		ExpenseDays: expenseDays,
	}, nil
}

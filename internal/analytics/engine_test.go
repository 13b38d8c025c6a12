package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelarosa/finanzas-api/internal/analytics"
	"github.com/jdelarosa/finanzas-api/internal/category"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
)

func tx(amount float64, categoryID string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:       "tx-" + date.Format("20060102-150405"),
		UserID:   "user-1",
		Amount:   amount,
		Category: categoryID,
		Date:     date,
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*transaction.Transaction
		want         analytics.Summary
	}{
		{
			name:         "empty input yields zeros",
			transactions: nil,
			want:         analytics.Summary{},
		},
		{
			name: "income and expense split by sign",
			transactions: []*transaction.Transaction{
				tx(100, "salary", day(1)),
				tx(-40, "food", day(2)),
			},
			want: analytics.Summary{TotalIncome: 100, TotalExpenses: 40, Balance: 60},
		},
		{
			name: "zero amount counts toward expenses",
			transactions: []*transaction.Transaction{
				tx(0, "food", day(1)),
				tx(50, "salary", day(2)),
			},
			want: analytics.Summary{TotalIncome: 50, TotalExpenses: 0, Balance: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.Summarize(tt.transactions))
		})
	}
}

func TestBucketByMonth(t *testing.T) {
	transactions := []*transaction.Transaction{
		tx(100, "salary", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		tx(-30, "food", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)),
		tx(200, "salary", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	buckets := analytics.BucketByMonth(transactions)

	require.Len(t, buckets, 2)
	assert.Equal(t, analytics.MonthBucket{Month: "2024-03", Income: 100, Expenses: 30}, buckets[0])
	assert.Equal(t, analytics.MonthBucket{Month: "2024-04", Income: 200, Expenses: 0}, buckets[1])
}

func TestBreakdownByCategory(t *testing.T) {
	categories := []*category.Category{
		{ID: "cat-food", Name: "Food", Type: category.TypeExpense},
		{ID: "cat-salary", Name: "Salary", Type: category.TypeIncome},
	}
	transactions := []*transaction.Transaction{
		tx(-30, "cat-food", day(1)),
		tx(-20, "cat-food", day(2)),
		tx(100, "cat-salary", day(3)),
		tx(-15, "cat-deleted", day(4)),
	}

	t.Run("expense side groups magnitudes and resolves names", func(t *testing.T) {
		slices := analytics.BreakdownByCategory(transactions, analytics.DirectionExpense, categories)

		require.Len(t, slices, 2)
		assert.Equal(t, analytics.CategorySlice{Name: "Food", Value: 50}, slices[0])
		assert.Equal(t, analytics.CategorySlice{Name: "cat-deleted", Value: 15}, slices[1])
	})

	t.Run("income side excludes expenses", func(t *testing.T) {
		slices := analytics.BreakdownByCategory(transactions, analytics.DirectionIncome, categories)

		require.Len(t, slices, 1)
		assert.Equal(t, analytics.CategorySlice{Name: "Salary", Value: 100}, slices[0])
	})
}

func TestTrendByCategory(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	categories := []*category.Category{
		{ID: "cat-food", Name: "Food", Type: category.TypeExpense},
	}

	// Bucket index is counted in 30-day spans back from now, so each
	// sample sits safely inside its own span.
	inBucket := func(bucketsAgo int, amount float64) *transaction.Transaction {
		return tx(amount, "cat-food", now.Add(-time.Duration(bucketsAgo)*30*24*time.Hour-12*time.Hour))
	}

	t.Run("zero buckets are filtered before trend math", func(t *testing.T) {
		transactions := []*transaction.Transaction{
			inBucket(3, -50),
			inBucket(1, -80),
			inBucket(0, -100),
		}

		trends := analytics.TrendByCategory(transactions, 6, now, categories)

		require.Len(t, trends, 1)
		got := trends[0]
		assert.Equal(t, "cat-food", got.Category)
		assert.Equal(t, "Food", got.Name)
		assert.Equal(t, []float64{0, 0, 50, 0, 80, 100}, got.Monthly)
		assert.InDelta(t, 100, got.TrendPercent, 0.0001)
		assert.InDelta(t, 25, got.AverageChange, 0.0001)
		assert.InDelta(t, 125, got.Prediction, 0.0001)
	})

	t.Run("single non-zero bucket yields no trend", func(t *testing.T) {
		transactions := []*transaction.Transaction{inBucket(0, -100)}

		assert.Empty(t, analytics.TrendByCategory(transactions, 6, now, categories))
	})

	t.Run("transactions outside the window are ignored", func(t *testing.T) {
		transactions := []*transaction.Transaction{
			inBucket(7, -40),
			inBucket(1, -80),
			inBucket(0, -100),
		}

		trends := analytics.TrendByCategory(transactions, 6, now, categories)

		require.Len(t, trends, 1)
		assert.Equal(t, []float64{0, 0, 0, 0, 80, 100}, trends[0].Monthly)
	})
}

func TestMostActiveDays(t *testing.T) {
	transactions := []*transaction.Transaction{
		tx(500, "cat-salary", day(15)),
		tx(300, "cat-salary", day(20)),
		tx(100, "cat-salary", day(3)),
		tx(-200, "cat-food", day(8)),
		tx(-150, "cat-food", day(20)),
		tx(-50, "cat-food", day(3)),
	}

	incomeDays, expenseDays := analytics.MostActiveDays(transactions)

	assert.Equal(t, []string{"15", "20"}, incomeDays)
	assert.Equal(t, []string{"08", "20"}, expenseDays)
}

func TestMostActiveDaysSkipsInactiveDirection(t *testing.T) {
	transactions := []*transaction.Transaction{
		tx(500, "cat-salary", day(15)),
	}

	incomeDays, expenseDays := analytics.MostActiveDays(transactions)

	assert.Equal(t, []string{"15"}, incomeDays)
	assert.Empty(t, expenseDays)
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, "10.0%", analytics.Growth(110, 100))
	assert.Equal(t, "-25.0%", analytics.Growth(75, 100))
	assert.Equal(t, "N/A", analytics.Growth(50, 0))
}

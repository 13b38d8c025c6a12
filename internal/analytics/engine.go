// Package analytics holds the pure aggregation engine: deterministic,
// synchronous reductions over already-fetched transaction slices. Nothing
// here performs I/O or mutates its inputs, so every invocation is safe to
// run on a freshly fetched, locally owned slice.
//
// Amounts are taken at face value. Malformed values (NaN, Inf) propagate
// through sums unguarded, matching the data layer's trust model.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jdelarosa/finanzas-api/internal/category"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
)

const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"
)

// Summary is the monthly income/expense/balance reduction.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// Summarize splits on the sign of amount: positives accumulate into income,
// everything else into expenses as a magnitude. Balance is income minus
// expenses by construction.
func Summarize(transactions []*transaction.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		if t.Amount > 0 {
			s.TotalIncome += t.Amount
		} else {
			s.TotalExpenses += -t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// MonthBucket accumulates one year-month's income and expense totals.
type MonthBucket struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// BucketByMonth produces one bucket per distinct year-month among the
// transactions, keyed "YYYY-MM", in first-seen order.
func BucketByMonth(transactions []*transaction.Transaction) []MonthBucket {
	index := make(map[string]int)
	var buckets []MonthBucket

	for _, t := range transactions {
		key := t.Date.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, MonthBucket{Month: key})
		}
		if t.Amount > 0 {
			buckets[i].Income += t.Amount
		} else {
			buckets[i].Expenses += -t.Amount
		}
	}

	return buckets
}

// CategorySlice is one category's share of a directional breakdown.
type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// BreakdownByCategory filters transactions to the requested sign, groups by
// category id, and sums magnitudes per group. Ids resolve to display names
// through the category list; a dangling reference falls back to the raw id
// string. Entries appear in first-seen order.
func BreakdownByCategory(transactions []*transaction.Transaction, direction string, categories []*category.Category) []CategorySlice {
	names := categoryNames(categories)

	index := make(map[string]int)
	var slices []CategorySlice

	for _, t := range transactions {
		if direction == DirectionIncome && t.Amount <= 0 {
			continue
		}
		if direction == DirectionExpense && t.Amount > 0 {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			name := t.Category
			if resolved, found := names[t.Category]; found {
				name = resolved
			}
			i = len(slices)
			index[t.Category] = i
			slices = append(slices, CategorySlice{Name: name})
		}
		slices[i].Value += math.Abs(t.Amount)
	}

	return slices
}

// CategoryTrend is a category's monthly trajectory over the lookback window
// plus a linear extrapolation of its next value.
type CategoryTrend struct {
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	Monthly       []float64 `json:"monthly"`
	TrendPercent  float64   `json:"trend_percent"`
	AverageChange float64   `json:"average_change"`
	Prediction    float64   `json:"prediction"`
}

// TrendByCategory buckets each category's magnitudes into a fixed-length
// window of months monthly totals, index 0 being the earliest. Buckets are
// approximated as 30-day spans counted back from now, NOT calendar months;
// transactions near month boundaries can land in the neighboring bucket.
// That behavior is intentional and pinned by tests.
//
// Categories with fewer than two non-zero buckets yield no trend. The
// trend, average change and one-step prediction are computed over the
// zero-filtered sequence only.
func TrendByCategory(transactions []*transaction.Transaction, months int, now time.Time, categories []*category.Category) []CategoryTrend {
	if months <= 0 {
		return nil
	}

	names := categoryNames(categories)

	index := make(map[string]int)
	var series [][]float64
	var order []string

	for _, t := range transactions {
		bucket := months - 1 - int(math.Floor(now.Sub(t.Date).Hours()/(24*30)))
		if bucket < 0 || bucket >= months {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(series)
			index[t.Category] = i
			series = append(series, make([]float64, months))
			order = append(order, t.Category)
		}
		series[i][bucket] += math.Abs(t.Amount)
	}

	var trends []CategoryTrend
	for i, id := range order {
		var filtered []float64
		for _, v := range series[i] {
			if v > 0 {
				filtered = append(filtered, v)
			}
		}
		if len(filtered) < 2 {
			continue
		}

		first := filtered[0]
		last := filtered[len(filtered)-1]

		var deltaSum float64
		for j := 1; j < len(filtered); j++ {
			deltaSum += filtered[j] - filtered[j-1]
		}
		averageChange := deltaSum / float64(len(filtered)-1)

		name := id
		if resolved, ok := names[id]; ok {
			name = resolved
		}

		trends = append(trends, CategoryTrend{
			Category:      id,
			Name:          name,
			Monthly:       series[i],
			TrendPercent:  (last - first) / first * 100,
			AverageChange: averageChange,
			Prediction:    last + averageChange,
		})
	}

	return trends
}

// DayActivity accumulates totals for one day-of-month number across all
// months in the input.
type DayActivity struct {
	Day      string  `json:"day"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// MostActiveDays groups transactions by day-of-month ("01".."31",
// regardless of month) and reports the two most active day numbers for each
// direction. The income ranking sorts by income descending with expenses as
// tie-break; the expense ranking mirrors it.
func MostActiveDays(transactions []*transaction.Transaction) (incomeDays, expenseDays []string) {
	index := make(map[string]int)
	var days []DayActivity

	for _, t := range transactions {
		key := t.Date.Format("02")
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DayActivity{Day: key})
		}
		if t.Amount > 0 {
			days[i].Income += t.Amount
		} else {
			days[i].Expenses += -t.Amount
		}
	}

	byIncome := make([]DayActivity, len(days))
	copy(byIncome, days)
	sort.SliceStable(byIncome, func(a, b int) bool {
		if byIncome[a].Income != byIncome[b].Income {
			return byIncome[a].Income > byIncome[b].Income
		}
		return byIncome[a].Expenses > byIncome[b].Expenses
	})
	for _, d := range byIncome {
		if d.Income > 0 && len(incomeDays) < 2 {
			incomeDays = append(incomeDays, d.Day)
		}
	}

	byExpenses := make([]DayActivity, len(days))
	copy(byExpenses, days)
	sort.SliceStable(byExpenses, func(a, b int) bool {
		if byExpenses[a].Expenses != byExpenses[b].Expenses {
			return byExpenses[a].Expenses > byExpenses[b].Expenses
		}
		return byExpenses[a].Income > byExpenses[b].Income
	})
	for _, d := range byExpenses {
		if d.Expenses > 0 && len(expenseDays) < 2 {
			expenseDays = append(expenseDays, d.Day)
		}
	}

	return incomeDays, expenseDays
}

// Growth formats the relative change from previous to current as a
// percentage with one decimal, or "N/A" when there is no baseline.
func Growth(current, previous float64) string {
	if previous == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", (current-previous)/previous*100)
}

func categoryNames(categories []*category.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

package analytics

import "errors"

// Overview is the response body of the window aggregation endpoint.
type Overview struct {
	Months            int             `json:"months"`
	Summary           Summary         `json:"summary"`
	MonthlyBuckets    []MonthBucket   `json:"monthly_buckets"`
	IncomeByCategory  []CategorySlice `json:"income_by_category"`
	ExpenseByCategory []CategorySlice `json:"expense_by_category"`
	AverageIncome     float64         `json:"average_income"`
	AverageExpenses   float64         `json:"average_expenses"`
	ExpenseGrowth     string          `json:"expense_growth"`
}

// ActiveDays is the response body of the most-active-days endpoint.
type ActiveDays struct {
	Months      int      `json:"months"`
	IncomeDays  []string `json:"income_days"`
	ExpenseDays []string `json:"expense_days"`
}

// TrendsResponse wraps the per-category trend list.
type TrendsResponse struct {
	Months int             `json:"months"`
	Trends []CategoryTrend `json:"trends"`
}

var supportedWindows = map[int]bool{1: true, 3: true, 6: true, 12: true}

// ValidateMonths accepts the supported lookback windows only.
func ValidateMonths(months int) error {
	if !supportedWindows[months] {
		return errors.New("months must be one of 1, 3, 6 or 12")
	}
	return nil
}

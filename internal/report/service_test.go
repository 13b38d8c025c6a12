package report_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jdelarosa/finanzas-api/internal/category"
	"github.com/jdelarosa/finanzas-api/internal/report"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
)

func TestReportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Service Suite")
}

type mockTransactionReader struct {
	transactions []*transaction.Transaction
	err          error
}

func (m *mockTransactionReader) GetTransactionsByMonth(userID string, ref time.Time) ([]*transaction.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}

type mockCategoryReader struct {
	categories []*category.Category
	err        error
}

func (m *mockCategoryReader) GetCategories(userID string) ([]*category.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

var _ = Describe("ReportService", func() {
	var (
		transactions *mockTransactionReader
		categories   *mockCategoryReader
		service      *report.Service
		march        time.Time
	)

	BeforeEach(func() {
		transactions = &mockTransactionReader{}
		categories = &mockCategoryReader{}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(transactions, categories, logger)
		march = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	})

	Describe("GetMonthlyReport", func() {
		BeforeEach(func() {
			categories.categories = []*category.Category{
				{ID: "cat-food", UserID: "user-1", Name: "Food", Type: category.TypeExpense},
			}
			transactions.transactions = []*transaction.Transaction{
				{
					ID:          "tx-1",
					UserID:      "user-1",
					Amount:      -3500,
					Category:    "cat-food",
					Description: "Coffee",
					Date:        time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
				},
				{
					ID:          "tx-2",
					UserID:      "user-1",
					Amount:      120000,
					Category:    "cat-gone",
					Description: "Salary",
					Date:        time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
				},
			}
		})

		It("resolves category names and falls back to the raw id", func() {
			monthly, err := service.GetMonthlyReport("user-1", march)

			Expect(err).NotTo(HaveOccurred())
			Expect(monthly.Month).To(Equal("2024-03"))
			Expect(monthly.Lines).To(HaveLen(2))
			Expect(monthly.Lines[0].CategoryName).To(Equal("Food"))
			Expect(monthly.Lines[1].CategoryName).To(Equal("cat-gone"))
		})

		It("summarizes the month", func() {
			monthly, err := service.GetMonthlyReport("user-1", march)

			Expect(err).NotTo(HaveOccurred())
			Expect(monthly.Summary.TotalIncome).To(Equal(120000.0))
			Expect(monthly.Summary.TotalExpenses).To(Equal(3500.0))
			Expect(monthly.Summary.Balance).To(Equal(116500.0))
		})

		It("returns an empty statement with a zero summary for a quiet month", func() {
			transactions.transactions = nil

			monthly, err := service.GetMonthlyReport("user-1", march)

			Expect(err).NotTo(HaveOccurred())
			Expect(monthly.Lines).To(BeEmpty())
			Expect(monthly.Summary.Balance).To(BeZero())
		})

		It("propagates store errors", func() {
			transactions.err = errors.New("connection refused")

			_, err := service.GetMonthlyReport("user-1", march)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ToCSV", func() {
		It("renders dd/MM/yyyy rows under the Spanish header", func() {
			monthly := &report.MonthlyReport{
				Month: "2024-03",
				Lines: []report.Line{
					{
						Date:         time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
						Description:  "Coffee",
						CategoryName: "Food",
						Amount:       -3500,
					},
				},
			}

			Expect(monthly.ToCSV()).To(Equal("Fecha,Descripción,Categoría,Monto\n05/03/2024,Coffee,Food,-3500\n"))
		})

		It("keeps fractional amounts without padding", func() {
			monthly := &report.MonthlyReport{
				Lines: []report.Line{
					{
						Date:         time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
						Description:  "Snack",
						CategoryName: "Food",
						Amount:       -12.5,
					},
				},
			}

			Expect(monthly.ToCSV()).To(ContainSubstring("05/03/2024,Snack,Food,-12.5\n"))
		})

		It("does not escape commas in descriptions", func() {
			monthly := &report.MonthlyReport{
				Lines: []report.Line{
					{
						Date:         time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
						Description:  "Milk, eggs",
						CategoryName: "Food",
						Amount:       -10,
					},
				},
			}

			Expect(monthly.ToCSV()).To(ContainSubstring("05/03/2024,Milk, eggs,Food,-10\n"))
		})
	})
})

package report_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/report"
	"github.com/pruthagwin123/expense-tracker/internal/user"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

// MockRepository implements report.Repository for testing
type MockRepository struct {
	records    []report.ExpenseRecord
	sums       []report.CategorySummary
	shouldFail bool
	failError  error

	lastUserID int64
	lastStart  *time.Time
	lastEnd    *time.Time
}

func (m *MockRepository) FetchItemized(userID int64, start, end *time.Time) ([]report.ExpenseRecord, error) {
	m.lastUserID = userID
	m.lastStart = start
	m.lastEnd = end
	if m.shouldFail {
		return nil, m.failError
	}
	return m.records, nil
}

func (m *MockRepository) FetchCategorySums(userID int64, start, end *time.Time) ([]report.CategorySummary, error) {
	m.lastUserID = userID
	m.lastStart = start
	m.lastEnd = end
	if m.shouldFail {
		return nil, m.failError
	}
	return m.sums, nil
}

// MockUserGetter implements report.UserGetter for testing
type MockUserGetter struct {
	user *user.User
	err  error
}

func (m *MockUserGetter) GetByID(id int64) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// MockMailer implements report.Mailer for testing
type MockMailer struct {
	err error

	sentTo          string
	sentSubject     string
	sentBody        string
	sentAttachments []report.Attachment
	sendCount       int
}

func (m *MockMailer) Send(to, subject, body string, attachments []report.Attachment) error {
	m.sendCount++
	if m.err != nil {
		return m.err
	}
	m.sentTo = to
	m.sentSubject = subject
	m.sentBody = body
	m.sentAttachments = attachments
	return nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	Expect(err).NotTo(HaveOccurred())
	return d
}

func sampleRecords() []report.ExpenseRecord {
	return []report.ExpenseRecord{
		{
			ID:          2,
			UserID:      7,
			CategoryID:  int64Ptr(1),
			Amount:      mustDecimal("42.50"),
			Description: "Weekly groceries",
			Date:        time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
			Category:    strPtr("Groceries"),
		},
		{
			ID:          1,
			UserID:      7,
			Amount:      mustDecimal("-5.00"),
			Description: "Refunded ticket",
			Date:        time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}

var _ = Describe("Report Service", func() {
	var (
		repo    *MockRepository
		users   *MockUserGetter
		mailer  *MockMailer
		service *report.Service
	)

	testLogger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))

	BeforeEach(func() {
		repo = &MockRepository{records: sampleRecords()}
		users = &MockUserGetter{user: &user.User{ID: 7, Username: "alice", Email: "alice@mail.com"}}
		mailer = &MockMailer{}
		service = report.NewService(repo, users, mailer, testLogger)
	})

	Describe("BuildReport", func() {
		It("should build a CSV document with the period filename", func() {
			doc, err := service.BuildReport(7, 2024, 3, report.FormatCSV)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Filename).To(Equal("expenses_2024-03.csv"))
			Expect(doc.ContentType).To(Equal("text/csv"))
			Expect(doc.Data).NotTo(BeEmpty())
		})

		It("should query the repository with the inclusive month bounds", func() {
			_, err := service.BuildReport(7, 2024, 2, report.FormatCSV)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastUserID).To(Equal(int64(7)))
			Expect(*repo.lastStart).To(Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
			Expect(*repo.lastEnd).To(Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
		})

		It("should build a PDF document titled with the user's name", func() {
			doc, err := service.BuildReport(7, 2024, 3, report.FormatPDF)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Filename).To(Equal("report_2024-03.pdf"))
			Expect(doc.ContentType).To(Equal("application/pdf"))
			Expect(string(doc.Data[:5])).To(Equal("%PDF-"))
		})

		It("should return NoDataForPeriod for an empty month instead of an empty file", func() {
			repo.records = nil
			_, err := service.BuildReport(7, 2024, 3, report.FormatCSV)
			Expect(errors.Is(err, internal.ErrNoDataForPeriod)).To(BeTrue())
		})

		It("should reject an invalid period before touching storage", func() {
			_, err := service.BuildReport(7, 2024, 13, report.FormatCSV)
			Expect(errors.Is(err, internal.ErrInvalidPeriod)).To(BeTrue())
			Expect(repo.lastUserID).To(BeZero())
		})

		It("should reject an unknown format", func() {
			_, err := service.BuildReport(7, 2024, 3, report.Format("xlsx"))
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidFormat))
		})

		It("should propagate repository failures", func() {
			repo.shouldFail = true
			repo.failError = errors.New("connection reset")
			_, err := service.BuildReport(7, 2024, 3, report.FormatCSV)
			Expect(err).To(HaveOccurred())
		})

		It("should fail PDF builds when the user lookup fails", func() {
			users.err = internal.ErrUserNotFound
			_, err := service.BuildReport(7, 2024, 3, report.FormatPDF)
			Expect(errors.Is(err, internal.ErrUserNotFound)).To(BeTrue())
		})

		It("should produce identical documents for repeated identical calls", func() {
			first, err := service.BuildReport(7, 2024, 3, report.FormatCSV)
			Expect(err).NotTo(HaveOccurred())
			second, err := service.BuildReport(7, 2024, 3, report.FormatCSV)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Data).To(Equal(second.Data))
		})
	})

	Describe("CategoryBreakdown", func() {
		BeforeEach(func() {
			repo.sums = []report.CategorySummary{
				{Category: strPtr("Groceries"), Total: mustDecimal("42.5")},
				{Category: nil, Total: mustDecimal("-5")},
			}
		})

		It("should pair labels with 2-decimal totals", func() {
			chart, err := service.CategoryBreakdown(7, 2024, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(chart.Labels).To(Equal([]string{"Groceries", "Uncategorized"}))
			Expect(chart.Values).To(Equal([]string{"42.50", "-5.00"}))
		})

		It("should return empty slices for a month with no expenses", func() {
			repo.sums = nil
			chart, err := service.CategoryBreakdown(7, 2024, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(chart.Labels).To(BeEmpty())
			Expect(chart.Values).To(BeEmpty())
		})
	})

	Describe("EmailMonthlyReport", func() {
		It("should send the summary with the PDF attached", func() {
			err := service.EmailMonthlyReport(7, 2024, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(mailer.sentTo).To(Equal("alice@mail.com"))
			Expect(mailer.sentSubject).To(Equal("Expense Summary - March 2024"))
			Expect(mailer.sentBody).To(Equal("Expense summary for March 2024\nTotal Spent: ₹37.50\n\nAttached is your monthly PDF report."))

			Expect(mailer.sentAttachments).To(HaveLen(1))
			att := mailer.sentAttachments[0]
			Expect(att.Filename).To(Equal("report_2024-03.pdf"))
			Expect(att.MimeType).To(Equal("application/pdf"))
			Expect(string(att.Data[:5])).To(Equal("%PDF-"))
		})

		It("should not send anything for an empty month", func() {
			repo.records = nil
			err := service.EmailMonthlyReport(7, 2024, 3)
			Expect(errors.Is(err, internal.ErrNoDataForPeriod)).To(BeTrue())
			Expect(mailer.sendCount).To(BeZero())
		})

		It("should surface delivery failures", func() {
			mailer.err = internal.NewExternalError("failed to deliver email", internal.ErrCodeMailFailed, errors.New("smtp 554"))
			err := service.EmailMonthlyReport(7, 2024, 3)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeMailFailed))
		})
	})
})

var _ = Describe("Aggregator", func() {
	testLogger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))

	It("should return an empty slice when the repository yields nil", func() {
		repo := &MockRepository{records: nil}
		agg := report.NewAggregator(repo, testLogger)

		records, err := agg.Itemized(7, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).NotTo(BeNil())
		Expect(records).To(BeEmpty())
	})

	It("should pass nil bounds for an unbounded query", func() {
		repo := &MockRepository{records: sampleRecords()}
		agg := report.NewAggregator(repo, testLogger)

		_, err := agg.Itemized(7, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.lastStart).To(BeNil())
		Expect(repo.lastEnd).To(BeNil())
	})

	It("should round summary totals to 2 decimal places", func() {
		repo := &MockRepository{sums: []report.CategorySummary{
			{Category: strPtr("Dining"), Total: mustDecimal("10.005")},
		}}
		agg := report.NewAggregator(repo, testLogger)

		sums, err := agg.Summarize(7, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(sums).To(HaveLen(1))
		Expect(sums[0].Total.String()).To(Equal("10.01"))
	})
})

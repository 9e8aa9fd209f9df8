package report_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/report"
	"github.com/pruthagwin123/expense-tracker/internal/transport"
)

// MockReportService implements report.ServiceAPI for testing
type MockReportService struct {
	doc   *report.Document
	chart *report.ChartData
	err   error

	lastYear   int
	lastMonth  int
	lastFormat report.Format
	emailSent  bool
}

func (m *MockReportService) BuildReport(userID int64, year, month int, format report.Format) (*report.Document, error) {
	m.lastYear, m.lastMonth, m.lastFormat = year, month, format
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

func (m *MockReportService) CategoryBreakdown(userID int64, year, month int) (*report.ChartData, error) {
	m.lastYear, m.lastMonth = year, month
	if m.err != nil {
		return nil, m.err
	}
	return m.chart, nil
}

func (m *MockReportService) EmailMonthlyReport(userID int64, year, month int) error {
	m.lastYear, m.lastMonth = year, month
	if m.err != nil {
		return m.err
	}
	m.emailSent = true
	return nil
}

var _ = Describe("Report Handler", func() {
	var (
		service *MockReportService
		handler *report.Handler
	)

	testLogger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))

	newRequest := func(method, target string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		return req.WithContext(internal.ContextWithUserID(req.Context(), 7))
	}

	BeforeEach(func() {
		service = &MockReportService{
			doc: &report.Document{
				Filename:    "expenses_2024-03.csv",
				ContentType: "text/csv",
				Data:        []byte("id,user_id\n"),
			},
			chart: &report.ChartData{
				Labels: []string{"Groceries"},
				Values: []string{"42.50"},
			},
		}
		handler = report.NewHandler(transport.NewBaseHandler(testLogger), service)
	})

	Describe("DownloadCSV", func() {
		It("should stream the document as an attachment", func() {
			rec := httptest.NewRecorder()
			handler.DownloadCSV(rec, newRequest(http.MethodGet, "/reports/csv?year=2024&month=3"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("text/csv"))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="expenses_2024-03.csv"`))
			Expect(rec.Body.String()).To(Equal("id,user_id\n"))

			Expect(service.lastYear).To(Equal(2024))
			Expect(service.lastMonth).To(Equal(3))
			Expect(service.lastFormat).To(Equal(report.FormatCSV))
		})

		It("should reject a non-numeric month", func() {
			rec := httptest.NewRecorder()
			handler.DownloadCSV(rec, newRequest(http.MethodGet, "/reports/csv?year=2024&month=march"))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should translate NoDataForPeriod into a 404", func() {
			service.err = internal.ErrNoDataForPeriod
			rec := httptest.NewRecorder()
			handler.DownloadCSV(rec, newRequest(http.MethodGet, "/reports/csv?year=2024&month=3"))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DownloadPDF", func() {
		It("should request the PDF format", func() {
			rec := httptest.NewRecorder()
			handler.DownloadPDF(rec, newRequest(http.MethodGet, "/reports/pdf?year=2024&month=3"))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.lastFormat).To(Equal(report.FormatPDF))
		})
	})

	Describe("GetSummary", func() {
		It("should return the chart data as JSON", func() {
			rec := httptest.NewRecorder()
			handler.GetSummary(rec, newRequest(http.MethodGet, "/reports/summary?year=2024&month=3"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(rec.Body.String()).To(MatchJSON(`{"labels":["Groceries"],"values":["42.50"]}`))
		})

		It("should translate an invalid period into a 400", func() {
			service.err = internal.ErrInvalidPeriod
			rec := httptest.NewRecorder()
			handler.GetSummary(rec, newRequest(http.MethodGet, "/reports/summary?year=2024&month=13"))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("EmailReport", func() {
		It("should trigger delivery and confirm", func() {
			rec := httptest.NewRecorder()
			handler.EmailReport(rec, newRequest(http.MethodPost, "/reports/email?year=2024&month=3"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.emailSent).To(BeTrue())
			Expect(rec.Body.String()).To(MatchJSON(`{"message":"report sent"}`))
		})

		It("should translate mail failures into a 502", func() {
			service.err = internal.NewExternalError("failed to deliver email", internal.ErrCodeMailFailed, nil)
			rec := httptest.NewRecorder()
			handler.EmailReport(rec, newRequest(http.MethodPost, "/reports/email?year=2024&month=3"))
			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})
	})
})

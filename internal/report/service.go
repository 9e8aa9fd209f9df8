package report

import (
	"fmt"
	"log/slog"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/period"
	"github.com/pruthagwin123/expense-tracker/internal/user"
)

// Format selects the report artifact type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Document is a rendered report artifact. It is returned to the caller and
// never persisted.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ChartData is the label/value pairing the dashboard chart consumes.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []string `json:"values"`
}

// UserGetter is the slice of the user service the orchestrator needs:
// display name for report titles and the address for mail delivery.
type UserGetter interface {
	GetByID(id int64) (*user.User, error)
}

// Attachment is a rendered file handed to the mail collaborator.
type Attachment struct {
	Filename string
	Data     []byte
	MimeType string
}

// Mailer delivers a message with optional attachments. Transport and MIME
// semantics are entirely the collaborator's concern.
type Mailer interface {
	Send(to, subject, body string, attachments []Attachment) error
}

// Service orchestrates period resolution, aggregation and export for one
// report request. It holds no mutable state; concurrent report builds need
// no coordination.
type Service struct {
	aggregator *Aggregator
	users      UserGetter
	mailer     Mailer
	logger     *slog.Logger
}

func NewService(repo Repository, users UserGetter, mailer Mailer, logger *slog.Logger) *Service {
	return &Service{
		aggregator: NewAggregator(repo, logger),
		users:      users,
		mailer:     mailer,
		logger:     logger,
	}
}

// BuildReport resolves the period, fetches the itemized records and
// dispatches to the requested exporter. An empty month yields
// ErrNoDataForPeriod rather than an empty file; whether that becomes an
// error page or an informational message is the caller's decision.
func (s *Service) BuildReport(userID int64, year, month int, format Format) (*Document, error) {
	rng, err := period.Resolve(year, month)
	if err != nil {
		return nil, err
	}

	records, err := s.aggregator.Itemized(userID, &rng)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Info("no expenses in period, skipping report generation",
			"user_id", userID, "period", rng.Label())
		return nil, internal.ErrNoDataForPeriod
	}

	switch format {
	case FormatCSV:
		data, err := WriteCSV(records)
		if err != nil {
			s.logger.Error("csv export failed", "error", err, "user_id", userID, "period", rng.Label())
			return nil, err
		}
		return &Document{
			Filename:    fmt.Sprintf("expenses_%s.csv", rng.Label()),
			ContentType: "text/csv",
			Data:        data,
		}, nil

	case FormatPDF:
		u, err := s.users.GetByID(userID)
		if err != nil {
			return nil, err
		}
		data, err := RenderPDF(u.Username, records, rng.Label())
		if err != nil {
			s.logger.Error("pdf render failed", "error", err, "user_id", userID, "period", rng.Label())
			return nil, err
		}
		return &Document{
			Filename:    fmt.Sprintf("report_%s.pdf", rng.Label()),
			ContentType: "application/pdf",
			Data:        data,
		}, nil

	default:
		return nil, internal.NewValidationError(
			fmt.Sprintf("unsupported report format: %s", format), internal.ErrCodeInvalidFormat)
	}
}

// CategoryBreakdown returns chart data for the selected month: one label
// and one 2-decimal total per category present in the range. The
// uncategorized bucket is labeled here because chart labels are a
// presentation surface.
func (s *Service) CategoryBreakdown(userID int64, year, month int) (*ChartData, error) {
	rng, err := period.Resolve(year, month)
	if err != nil {
		return nil, err
	}

	summaries, err := s.aggregator.Summarize(userID, &rng)
	if err != nil {
		return nil, err
	}

	chart := &ChartData{
		Labels: make([]string, 0, len(summaries)),
		Values: make([]string, 0, len(summaries)),
	}
	for _, summary := range summaries {
		label := UncategorizedLabel
		if summary.Category != nil && *summary.Category != "" {
			label = *summary.Category
		}
		chart.Labels = append(chart.Labels, label)
		chart.Values = append(chart.Values, summary.Total.StringFixed(2))
	}
	return chart, nil
}

// EmailMonthlyReport renders the month's PDF and hands it to the mail
// collaborator together with a short summary body. Delivery failures come
// back unchanged; nothing is retried here.
func (s *Service) EmailMonthlyReport(userID int64, year, month int) error {
	rng, err := period.Resolve(year, month)
	if err != nil {
		return err
	}

	records, err := s.aggregator.Itemized(userID, &rng)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return internal.ErrNoDataForPeriod
	}

	u, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}

	pdfBytes, err := RenderPDF(u.Username, records, rng.MonthName())
	if err != nil {
		s.logger.Error("pdf render failed for email", "error", err, "user_id", userID, "period", rng.Label())
		return err
	}

	monthName := rng.MonthName()
	total := TotalAmount(records).StringFixed(2)
	body := fmt.Sprintf("Expense summary for %s\nTotal Spent: ₹%s\n\nAttached is your monthly PDF report.", monthName, total)

	attachment := Attachment{
		Filename: fmt.Sprintf("report_%s.pdf", rng.Label()),
		Data:     pdfBytes,
		MimeType: "application/pdf",
	}

	if err := s.mailer.Send(u.Email, fmt.Sprintf("Expense Summary - %s", monthName), body, []Attachment{attachment}); err != nil {
		s.logger.Error("failed to send summary email", "error", err, "user_id", userID, "period", rng.Label())
		return err
	}

	s.logger.Info("monthly summary email sent",
		"user_id", userID, "period", rng.Label(), "records", len(records), "total", total)
	return nil
}

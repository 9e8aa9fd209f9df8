package report

import (
	"log/slog"
	"time"

	"github.com/pruthagwin123/expense-tracker/internal/period"
)

// Aggregator answers itemized and summarized queries for one user over an
// optional date range. It is read-only and stateless; concurrent calls need
// no coordination.
type Aggregator struct {
	repo   Repository
	logger *slog.Logger
}

func NewAggregator(repo Repository, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		repo:   repo,
		logger: logger,
	}
}

func rangeBounds(rng *period.DateRange) (start, end *time.Time) {
	if rng == nil {
		return nil, nil
	}
	return &rng.Start, &rng.End
}

// Itemized returns the user's expense records, newest first. A nil range
// spans the user's entire history. Absence of data is an empty slice.
func (a *Aggregator) Itemized(userID int64, rng *period.DateRange) ([]ExpenseRecord, error) {
	start, end := rangeBounds(rng)

	records, err := a.repo.FetchItemized(userID, start, end)
	if err != nil {
		a.logger.Error("failed to fetch itemized expenses", "error", err, "user_id", userID)
		return nil, err
	}

	if records == nil {
		records = []ExpenseRecord{}
	}
	return records, nil
}

// Summarize returns one row per category with at least one matching record,
// plus at most one nil-category row for uncategorized expenses. Totals are
// exact decimal sums rounded to 2 places for display consistency.
func (a *Aggregator) Summarize(userID int64, rng *period.DateRange) ([]CategorySummary, error) {
	start, end := rangeBounds(rng)

	sums, err := a.repo.FetchCategorySums(userID, start, end)
	if err != nil {
		a.logger.Error("failed to fetch category sums", "error", err, "user_id", userID)
		return nil, err
	}

	summaries := make([]CategorySummary, 0, len(sums))
	for _, s := range sums {
		summaries = append(summaries, CategorySummary{
			Category: s.Category,
			Total:    s.Total.Round(2),
		})
	}
	return summaries, nil
}

// Package report holds the expense aggregation and report generation
// engine: itemized/summarized aggregation over a storage collaborator, the
// CSV and PDF exporters, and the orchestrator that ties them to a period.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is the denormalized read model a report row is built from.
// Category carries the resolved category name from the storage join; nil
// means the record is uncategorized (never an error — the fallback label is
// a presentation decision made by the PDF renderer, not the data layer).
type ExpenseRecord struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	CategoryID    *int64          `json:"category_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	RecurringRule *string         `json:"recurring_rule,omitempty"`
	Category      *string         `json:"category,omitempty"`
}

// CategorySummary is one aggregation row: a category name (nil for the
// uncategorized bucket) and the exact decimal sum of its amounts in range.
// Categories with no matching records are absent, never present with zero.
type CategorySummary struct {
	Category *string         `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Repository is the narrow read-shaped storage collaborator the engine
// depends on. Both bounds are independently optional; nil means unbounded
// on that side. An unknown user yields an empty slice, never an error.
// Implementations must return itemized records sorted by date descending
// with record id descending as the tie-break, so repeated calls with
// identical input observe a stable order.
type Repository interface {
	FetchItemized(userID int64, start, end *time.Time) ([]ExpenseRecord, error)
	FetchCategorySums(userID int64, start, end *time.Time) ([]CategorySummary, error)
}

// UncategorizedLabel is the display fallback for records without a
// resolved category name.
const UncategorizedLabel = "Uncategorized"

// DisplayCategory returns the resolved category name or the fallback label.
func (r ExpenseRecord) DisplayCategory() string {
	if r.Category == nil || *r.Category == "" {
		return UncategorizedLabel
	}
	return *r.Category
}

// TotalAmount sums the amounts of the given records exactly.
func TotalAmount(records []ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	return total
}

package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	internal "github.com/pruthagwin123/expense-tracker/internal"
)

// csvHeader is the fixed export column set. Order matters: existing
// spreadsheets and import tooling depend on it.
var csvHeader = []string{"id", "user_id", "category_id", "amount", "description", "date", "recurring", "category"}

const csvDateLayout = "2006-01-02"

// WriteCSV serializes the records into a comma-delimited document with
// standard quoting. Rows are emitted in the order supplied; identical input
// produces byte-identical output. The category column passes through
// whatever the aggregator attached — empty when unset — because the
// display fallback belongs to presentation layers, not this export.
func WriteCSV(records []ExpenseRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, internal.NewRenderError("failed to write csv header", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			strconv.FormatInt(rec.UserID, 10),
			optionalID(rec.CategoryID),
			rec.Amount.StringFixed(2),
			rec.Description,
			rec.Date.Format(csvDateLayout),
			optionalString(rec.RecurringRule),
			optionalString(rec.Category),
		}
		if err := w.Write(row); err != nil {
			return nil, internal.NewRenderError("failed to write csv row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, internal.NewRenderError("failed to flush csv output", err)
	}
	return buf.Bytes(), nil
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

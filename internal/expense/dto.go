package expense

import (
	"time"

	"github.com/shopspring/decimal"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/core/common/validation"
)

const dateLayout = "2006-01-02"

// CreateExpenseDTO is the request payload for recording an expense.
// Date is a calendar day string; when empty it defaults to today, matching
// the form behavior users already rely on. Negative amounts record refunds.
type CreateExpenseDTO struct {
	CategoryID    *int64          `json:"category_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date,omitempty"`
	RecurringRule *string         `json:"recurring_rule,omitempty"`
}

func (dto CreateExpenseDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("amount", dto.Amount).NonZeroDecimal(internal.ErrCodeInvalidAmount)
	v.Field("description", dto.Description).MaxLength(500)

	if err := v.Validate(); err != nil {
		return err
	}

	if dto.Date != "" {
		if _, err := time.Parse(dateLayout, dto.Date); err != nil {
			return internal.NewValidationFieldError("date", "date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

// EffectiveDate returns the parsed date, defaulting to today when unset.
// Validate must have accepted the DTO first.
func (dto CreateExpenseDTO) EffectiveDate() time.Time {
	if dto.Date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	d, _ := time.Parse(dateLayout, dto.Date)
	return d
}

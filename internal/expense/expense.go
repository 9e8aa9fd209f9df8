package expense

import (
	"time"

	"github.com/shopspring/decimal"

	expenseDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/expense"
)

type Expense struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	CategoryID    *int64          `json:"category_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	RecurringRule *string         `json:"recurring_rule,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:            e.ID,
		UserID:        e.UserID,
		CategoryID:    e.CategoryID,
		Amount:        e.Amount,
		Description:   e.Description,
		Date:          e.Date,
		RecurringRule: e.RecurringRule,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:            e.ID,
		UserID:        e.UserID,
		CategoryID:    e.CategoryID,
		Amount:        e.Amount,
		Description:   e.Description,
		Date:          e.Date,
		RecurringRule: e.RecurringRule,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}

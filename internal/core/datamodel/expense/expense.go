package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persistence model for a single dated expense record.
// Amount is a decimal currency value; negative amounts represent refunds
// and are accepted by the aggregation path. RecurringRule is an opaque tag
// interpreted by a scheduler outside this service.
type Expense struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	UserID        int64           `json:"user_id" gorm:"column:user_id;not null;index"`
	CategoryID    *int64          `json:"category_id" gorm:"column:category_id"`
	Amount        decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(14,2);not null"`
	Description   string          `json:"description" gorm:"column:description"`
	Date          time.Time       `json:"date" gorm:"column:date;type:date;not null;index"`
	RecurringRule *string         `json:"recurring_rule,omitempty" gorm:"column:recurring_rule"`
	CreatedAt     time.Time       `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"column:updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

package postgres

import (
	"time"

	"gorm.io/gorm"

	expenseDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/expense"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(expense *expenseDatamodel.Expense) error {
	return r.db.Create(expense).Error
}

// ListByDateRange returns the user's expenses newest first, with insertion
// order breaking date ties. Nil bounds leave that side of the range open.
func (r *ExpenseRepository) ListByDateRange(userID int64, start, end *time.Time) ([]*expenseDatamodel.Expense, error) {
	query := r.db.Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var expenses []*expenseDatamodel.Expense
	if err := query.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

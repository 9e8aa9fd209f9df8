package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/pruthagwin123/expense-tracker/internal/report"
)

// ReportRepository reads the denormalized expense rows the report engine
// consumes. It joins category names in SQL so the engine never needs a
// second lookup.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) FetchItemized(userID int64, start, end *time.Time) ([]report.ExpenseRecord, error) {
	query := r.db.Table("expenses").
		Select("expenses.id, expenses.user_id, expenses.category_id, expenses.amount, expenses.description, expenses.date, expenses.recurring_rule, categories.name AS category").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID)

	if start != nil {
		query = query.Where("expenses.date >= ?", *start)
	}
	if end != nil {
		query = query.Where("expenses.date <= ?", *end)
	}

	var records []report.ExpenseRecord
	if err := query.Order("expenses.date DESC, expenses.id DESC").Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ReportRepository) FetchCategorySums(userID int64, start, end *time.Time) ([]report.CategorySummary, error) {
	query := r.db.Table("expenses").
		Select("categories.name AS category, SUM(expenses.amount) AS total").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID)

	if start != nil {
		query = query.Where("expenses.date >= ?", *start)
	}
	if end != nil {
		query = query.Where("expenses.date <= ?", *end)
	}

	var summaries []report.CategorySummary
	if err := query.Group("categories.name").Order("categories.name ASC").Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

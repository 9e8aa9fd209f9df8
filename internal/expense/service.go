package expense

import (
	"log/slog"
	"time"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	expenseDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/expense"
	"github.com/pruthagwin123/expense-tracker/internal/period"
)

type Repository interface {
	Create(expense *expenseDatamodel.Expense) error
	ListByDateRange(userID int64, start, end *time.Time) ([]*expenseDatamodel.Expense, error)
}

// CategoryChecker verifies that a category exists and belongs to the user
// before an expense is filed under it.
type CategoryChecker interface {
	Exists(userID, categoryID int64) (bool, error)
}

type Service struct {
	repo       Repository
	categories CategoryChecker
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

func (s *Service) CreateExpense(userID int64, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.CategoryID != nil {
		ok, err := s.categories.Exists(userID, *dto.CategoryID)
		if err != nil {
			s.logger.Error("failed to check category", "error", err, "category_id", *dto.CategoryID)
			return nil, internal.NewInternalError("failed to verify category", err)
		}
		if !ok {
			return nil, internal.ErrCategoryNotFound
		}
	}

	record := &expenseDatamodel.Expense{
		UserID:        userID,
		CategoryID:    dto.CategoryID,
		Amount:        dto.Amount,
		Description:   dto.Description,
		Date:          dto.EffectiveDate(),
		RecurringRule: dto.RecurringRule,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create expense", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create expense", err)
	}

	s.logger.Info("expense created",
		"expense_id", record.ID,
		"user_id", userID,
		"amount", record.Amount.String(),
	)
	return FromDataModel(record), nil
}

// ListForPeriod returns the user's expenses within the given month. A zero
// year and month means no period filter: every expense is returned.
func (s *Service) ListForPeriod(userID int64, year, month int) ([]*Expense, error) {
	var start, end *time.Time
	if year != 0 || month != 0 {
		rng, err := period.Resolve(year, month)
		if err != nil {
			return nil, err
		}
		start, end = &rng.Start, &rng.End
	}

	records, err := s.repo.ListByDateRange(userID, start, end)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to list expenses", err)
	}
	return FromDataModelSlice(records), nil
}

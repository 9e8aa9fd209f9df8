package category

import (
	"log/slog"
	"strings"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	categoryDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/category"
)

type Repository interface {
	Create(category *categoryDatamodel.Category) error
	ListByUser(userID int64) ([]*categoryDatamodel.Category, error)
	Exists(userID, categoryID int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateCategory(userID int64, dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &categoryDatamodel.Category{
		UserID: userID,
		Name:   strings.TrimSpace(dto.Name),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create category", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create category", err)
	}

	s.logger.Info("category created", "category_id", record.ID, "user_id", userID)
	return FromDataModel(record), nil
}

func (s *Service) ListCategories(userID int64) ([]*Category, error) {
	records, err := s.repo.ListByUser(userID)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to list categories", err)
	}
	return FromDataModelSlice(records), nil
}

// Exists reports whether the category belongs to the user. It satisfies the
// expense service's category check without exposing the repository.
func (s *Service) Exists(userID, categoryID int64) (bool, error) {
	return s.repo.Exists(userID, categoryID)
}

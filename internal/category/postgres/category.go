package postgres

import (
	"gorm.io/gorm"

	categoryDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/category"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *categoryDatamodel.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) ListByUser(userID int64) ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category
	if err := r.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Exists(userID, categoryID int64) (bool, error) {
	var count int64
	err := r.db.Model(&categoryDatamodel.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

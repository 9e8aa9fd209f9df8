package postgres

import (
	internal "github.com/pruthagwin123/expense-tracker/internal"
	userDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/user"
	"github.com/pruthagwin123/expense-tracker/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&u), nil
}

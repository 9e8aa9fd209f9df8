package user

import (
	"time"

	userDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/user"
)

// User is the slim account view this service works with. Registration,
// login and sessions live in the external auth system; here a user only
// contributes a display name for report titles and an address for mail.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package category

import "time"

// Category is a user-defined expense label. Name uniqueness per user is
// expected from the UI but not enforced here; expenses keep a nullable
// reference so deleting a category degrades records to uncategorized.
type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null;index"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

package category

import (
	"time"

	categoryDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/category"
)

type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDataModelSlice(categories []*categoryDatamodel.Category) []*Category {
	result := make([]*Category, len(categories))
	for i, c := range categories {
		result[i] = FromDataModel(c)
	}
	return result
}

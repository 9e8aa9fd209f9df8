package category

import (
	"strings"

	"github.com/pruthagwin123/expense-tracker/internal/core/common/validation"
)

type CreateCategoryDTO struct {
	Name string `json:"name"`
}

func (dto CreateCategoryDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", strings.TrimSpace(dto.Name)).Required().MaxLength(100)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

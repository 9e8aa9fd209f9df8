package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	errors "github.com/pruthagwin123/expense-tracker/internal"
)

type ValidatorFunc func(interface{}) *errors.ValidationError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []*FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]*FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := &FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return fv
}

func (fv *FieldValidator) fail(message string, code errors.ErrorCode) *errors.ValidationError {
	return &errors.ValidationError{
		Field:   fv.FieldName,
		Message: message,
		Code:    string(code),
	}
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		switch v := value.(type) {
		case string:
			if v == "" {
				return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeValidationFailed)
			}
		case *string:
			if v == nil || *v == "" {
				return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeValidationFailed)
			}
		case int64:
			if v == 0 {
				return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		if v, ok := value.(string); ok && len(v) > max {
			return fv.fail(fmt.Sprintf("%s must be at most %d characters", fv.FieldName, max), errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return fv
}

// IntBetween enforces an inclusive range, used for month (1..12) and year
// selectors which must never be clamped silently.
func (fv *FieldValidator) IntBetween(min, max int64, code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		var v int64
		switch n := value.(type) {
		case int:
			v = int64(n)
		case int64:
			v = n
		default:
			return nil
		}
		if v < min || v > max {
			return fv.fail(fmt.Sprintf("%s must be between %d and %d", fv.FieldName, min, max), code)
		}
		return nil
	})
	return fv
}

// NonZeroDecimal rejects a zero amount; negative amounts (refunds) pass.
func (fv *FieldValidator) NonZeroDecimal(code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.ValidationError {
		if d, ok := value.(decimal.Decimal); ok && d.IsZero() {
			return fv.fail(fmt.Sprintf("%s must not be zero", fv.FieldName), code)
		}
		return nil
	})
	return fv
}

// Validate runs all field validators and returns a single AppError carrying
// every violation, or nil when everything passed.
func (v *ValidationBuilder) Validate() *errors.AppError {
	var violations []errors.ValidationError
	for _, fv := range v.fields {
		for _, check := range fv.Validators {
			if verr := check(fv.Value); verr != nil {
				violations = append(violations, *verr)
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}

	details := errors.ValidationErrors{Errors: violations}
	return errors.NewValidationError(details.Join(), errors.ErrCodeValidationFailed).WithDetails(details)
}

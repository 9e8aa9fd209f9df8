package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeForbidden  ErrorType = "FORBIDDEN"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal   ErrorType = "EXTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidAmount      ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidDescription ErrorCode = "INVALID_DESCRIPTION"
	ErrCodeInvalidDate        ErrorCode = "INVALID_DATE"
	ErrCodeInvalidCategory    ErrorCode = "INVALID_CATEGORY"

	ErrCodeInvalidPeriod   ErrorCode = "INVALID_PERIOD"
	ErrCodeNoDataForPeriod ErrorCode = "NO_DATA_FOR_PERIOD"
	ErrCodeRenderFailure   ErrorCode = "RENDER_FAILURE"
	ErrCodeInvalidFormat   ErrorCode = "INVALID_REPORT_FORMAT"

	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	ErrCodeMailFailed       ErrorCode = "MAIL_DELIVERY_FAILED"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	copied := *e
	copied.Cause = cause
	return &copied
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	copied := *e
	copied.Details = details
	return &copied
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Join() string {
	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return strings.Join(messages, "; ")
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewValidationFieldError builds a single-field validation failure. The code
// names the specific violation and is carried both at the top level and in
// the details entry, so callers can branch without digging into Details.
func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewRenderError wraps a failure from the CSV/PDF layer. Fatal to the single
// request; the underlying cause is propagated unchanged via Unwrap.
func NewRenderError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeRenderFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewExternalError(message string, code ErrorCode, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

var (
	// ErrInvalidPeriod is surfaced by the period resolver for a malformed
	// year/month selector. Never silently corrected.
	ErrInvalidPeriod = NewValidationError("invalid period: month must be 1-12 and year 1-9999", ErrCodeInvalidPeriod)

	// ErrNoDataForPeriod means the itemized result was empty at orchestration
	// time. Recoverable; meant to become a user-facing message.
	ErrNoDataForPeriod = NewNotFoundError("no expenses found for the selected period", ErrCodeNoDataForPeriod)

	ErrUserNotFound     = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrCategoryNotFound = NewNotFoundError("category not found", ErrCodeCategoryNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

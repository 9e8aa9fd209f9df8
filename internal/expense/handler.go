package expense

import (
	"encoding/json"
	"net/http"
	"strconv"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/transport"
)

type ServiceAPI interface {
	CreateExpense(userID int64, dto CreateExpenseDTO) (*Expense, error)
	ListForPeriod(userID int64, year, month int) ([]*Expense, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     service,
	}
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateExpense(userID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

// ListExpenses returns the user's expenses, optionally narrowed to one month
// via year/month query parameters. Without them the full history is returned.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())

	var year, month int
	var err error

	if r.URL.Query().Get("year") != "" || r.URL.Query().Get("month") != "" {
		year, month, err = h.parsePeriod(r)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
	}

	expenses, err := h.Service.ListForPeriod(userID, year, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

// parsePeriod requires both year and month once either is given, so a lone
// month can never silently widen to the whole year.
func (h *Handler) parsePeriod(r *http.Request) (int, int, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" || monthStr == "" {
		return 0, 0, internal.NewValidationError("year and month must be provided together", internal.ErrCodeInvalidPeriod)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, internal.NewValidationFieldError("year", "year must be a number", internal.ErrCodeInvalidPeriod)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, internal.NewValidationFieldError("month", "month must be a number", internal.ErrCodeInvalidPeriod)
	}
	return year, month, nil
}

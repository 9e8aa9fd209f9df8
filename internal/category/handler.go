package category

import (
	"encoding/json"
	"net/http"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/transport"
)

type ServiceAPI interface {
	CreateCategory(userID int64, dto CreateCategoryDTO) (*Category, error)
	ListCategories(userID int64) ([]*Category, error)
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

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateCategory(userID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())

	categories, err := h.Service.ListCategories(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

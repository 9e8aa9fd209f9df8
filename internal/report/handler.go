package report

import (
	"net/http"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/transport"
)

type ServiceAPI interface {
	BuildReport(userID int64, year, month int, format Format) (*Document, error)
	CategoryBreakdown(userID int64, year, month int) (*ChartData, error)
	EmailMonthlyReport(userID int64, year, month int) error
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

// GetSummary serves the per-category totals the dashboard chart renders.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())

	year, month, err := h.QueryPeriod(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	chart, err := h.Service.CategoryBreakdown(userID, year, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, chart)
}

func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, FormatCSV)
}

func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, FormatPDF)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request, format Format) {
	userID := internal.UserIDFromContext(r.Context())

	year, month, err := h.QueryPeriod(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	doc, err := h.Service.BuildReport(userID, year, month, format)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteAttachment(w, doc.Filename, doc.ContentType, doc.Data)
}

// EmailReport renders the month's PDF and mails it to the requesting user.
func (h *Handler) EmailReport(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())

	year, month, err := h.QueryPeriod(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.EmailMonthlyReport(userID, year, month); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "report sent",
	})
}

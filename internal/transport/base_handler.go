package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// HandleServiceError maps a service error onto the HTTP response. AppErrors
// carry their own status and body; anything else is an opaque 500.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		status, body := appErr.ToHTTPResponse()
		h.WriteJSON(w, status, body)
		return
	}
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// WriteAttachment streams a generated document as a file download.
func (h *BaseHandler) WriteAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("failed to write attachment", "error", err, "filename", filename)
	}
}

// QueryPeriod reads optional year/month query parameters, defaulting to the
// current month the way the dashboard does. Malformed numbers are rejected;
// out-of-range values are left for the period resolver to refuse.
func (h *BaseHandler) QueryPeriod(r *http.Request) (year, month int, err error) {
	now := time.Now()
	year, month = now.Year(), int(now.Month())

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, internal.NewValidationFieldError("year", "year must be a number", internal.ErrCodeInvalidPeriod)
		}
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil {
			return 0, 0, internal.NewValidationFieldError("month", "month must be a number", internal.ErrCodeInvalidPeriod)
		}
	}
	return year, month, nil
}

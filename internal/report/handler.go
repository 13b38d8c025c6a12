package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/transport"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

type ServiceAPI interface {
	GetMonthlyReport(userID string, ref time.Time) (*MonthlyReport, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetMonthlyReport: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ref, err := h.parseMonth(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	monthly, err := h.Service.GetMonthlyReport(userID, ref)
	if err != nil {
		h.Logger.Error("GetMonthlyReport: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, monthly)
}

// ExportMonthlyReport streams the statement as a CSV attachment.
func (h *Handler) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("ExportMonthlyReport: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ref, err := h.parseMonth(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	monthly, err := h.Service.GetMonthlyReport(userID, ref)
	if err != nil {
		h.Logger.Error("ExportMonthlyReport: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("reporte-%s.csv", monthly.Month)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(monthly.ToCSV())); err != nil {
		h.Logger.Error("ExportMonthlyReport: failed to write response", "error", err)
	}
}

// parseMonth reads ?month=YYYY-MM, defaulting to the current month.
func (h *Handler) parseMonth(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01", raw, time.Local)
}

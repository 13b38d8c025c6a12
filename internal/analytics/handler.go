package analytics

import (
	"net/http"
	"strconv"

	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/transport"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

type ServiceAPI interface {
	GetOverview(userID string, months int) (*Overview, error)
	GetTrends(userID string, months int) ([]CategoryTrend, error)
	GetActiveDays(userID string, months int) (*ActiveDays, error)
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

// defaultMonths applies when the query string carries no window.
const defaultMonths = 6

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetOverview: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	months, err := h.parseMonths(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.Service.GetOverview(userID, months)
	if err != nil {
		h.Logger.Error("GetOverview: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetTrends: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	months, err := h.parseMonths(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	trends, err := h.Service.GetTrends(userID, months)
	if err != nil {
		h.Logger.Error("GetTrends: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, TrendsResponse{Months: months, Trends: trends})
}

func (h *Handler) GetActiveDays(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetActiveDays: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	months, err := h.parseMonths(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	activeDays, err := h.Service.GetActiveDays(userID, months)
	if err != nil {
		h.Logger.Error("GetActiveDays: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, activeDays)
}

func (h *Handler) parseMonths(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("months")
	if raw == "" {
		return defaultMonths, nil
	}

	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if err := ValidateMonths(months); err != nil {
		return 0, err
	}
	return months, nil
}

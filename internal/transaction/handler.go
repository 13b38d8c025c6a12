package transaction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/transport"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

type ServiceAPI interface {
	CreateTransaction(userID string, dto CreateTransactionDTO) (*Transaction, error)
	UpdateTransaction(id, userID string, dto UpdateTransactionDTO) (*Transaction, error)
	DeleteTransaction(id, userID string) error
	GetTransactionsByMonth(userID string, ref time.Time) ([]*Transaction, error)
	GetTransactionsByDateRange(userID string, start, end time.Time) ([]*Transaction, error)
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

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("CreateTransaction: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("CreateTransaction: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	created, err := h.Service.CreateTransaction(userID, dto)
	if err != nil {
		h.Logger.Error("CreateTransaction: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction created",
		"transaction_id", created.ID,
		"user_id", userID,
		"amount", created.Amount)

	h.WriteJSON(w, http.StatusCreated, created)
}

// GetTransactions serves both listing modes: ?month=YYYY-MM for a calendar
// month, or ?start=...&end=... (RFC 3339 or YYYY-MM-DD) for an arbitrary
// inclusive range.
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetTransactions: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query()

	if monthStr := query.Get("month"); monthStr != "" {
		ref, err := time.ParseInLocation("2006-01", monthStr, time.Local)
		if err != nil {
			h.Logger.Error("GetTransactions: invalid month", "month", monthStr)
			h.WriteError(w, http.StatusBadRequest, "month must be in YYYY-MM format")
			return
		}

		transactions, err := h.Service.GetTransactionsByMonth(userID, ref)
		if err != nil {
			h.Logger.Error("GetTransactions: service error", "error", err, "user_id", userID)
			h.WriteError(w, http.StatusInternalServerError, "failed to get transactions")
			return
		}

		h.WriteJSON(w, http.StatusOK, TransactionsResponse{Transactions: transactions})
		return
	}

	start, err := parseDateParam(query.Get("start"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := parseDateParam(query.Get("end"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid end date")
		return
	}
	if start.IsZero() || end.IsZero() {
		h.WriteError(w, http.StatusBadRequest, "either month or start and end are required")
		return
	}
	if end.Before(start) {
		h.WriteError(w, http.StatusBadRequest, "end must not be before start")
		return
	}

	transactions, err := h.Service.GetTransactionsByDateRange(userID, start, end)
	if err != nil {
		h.Logger.Error("GetTransactions: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get transactions")
		return
	}

	h.WriteJSON(w, http.StatusOK, TransactionsResponse{Transactions: transactions})
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("UpdateTransaction: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid transaction ID")
		return
	}

	var dto UpdateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("UpdateTransaction: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	updated, err := h.Service.UpdateTransaction(transactionID, userID, dto)
	if err != nil {
		h.Logger.Error("UpdateTransaction: service error", "error", err, "transaction_id", transactionID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("DeleteTransaction: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid transaction ID")
		return
	}

	if err := h.Service.DeleteTransaction(transactionID, userID); err != nil {
		h.Logger.Error("DeleteTransaction: service error", "error", err, "transaction_id", transactionID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DeleteTransaction: transaction deleted", "transaction_id", transactionID, "user_id", userID)
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/transport"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

type ServiceAPI interface {
	GetCategories(userID string) ([]*Category, error)
	CreateCategory(userID string, dto CreateCategoryDTO) (*Category, error)
	UpdateCategory(id, userID string, dto UpdateCategoryDTO) (*Category, error)
	DeleteCategory(id, userID string) error
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

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetCategories: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categories, err := h.Service.GetCategories(userID)
	if err != nil {
		h.Logger.Error("GetCategories: failed to get categories", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get categories")
		return
	}

	h.WriteJSON(w, http.StatusOK, CategoriesResponse{
		Categories: categories,
	})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("CreateCategory: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("CreateCategory: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	created, err := h.Service.CreateCategory(userID, dto)
	if err != nil {
		h.Logger.Error("CreateCategory: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateCategory: category created", "category_id", created.ID, "user_id", userID)
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("UpdateCategory: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var dto UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("UpdateCategory: validation error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	updated, err := h.Service.UpdateCategory(categoryID, userID, dto)
	if err != nil {
		h.Logger.Error("UpdateCategory: service error", "error", err, "category_id", categoryID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("DeleteCategory: no session user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	if err := h.Service.DeleteCategory(categoryID, userID); err != nil {
		h.Logger.Error("DeleteCategory: service error", "error", err, "category_id", categoryID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DeleteCategory: category deleted", "category_id", categoryID, "user_id", userID)
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

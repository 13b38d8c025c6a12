package category_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/category"
	categoryPostgres "github.com/jdelarosa/finanzas-api/internal/category/postgres"
	categoryDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/category"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    category.RepositoryAPI
		service *category.Service
		handler *category.Handler
	)

	withUser := func(r *http.Request, uid string) *http.Request {
		ctx := internal.ContextWithUserID(r.Context(), uid)
		return r.WithContext(ctx)
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&categoryDatamodel.Category{})
		Expect(err).NotTo(HaveOccurred())

		repo = categoryPostgres.NewCategoryRepository(db)
		service = category.NewService(repo, logger.L())
		handler = category.NewHandler(service)

		seed := []*categoryDatamodel.Category{
			{ID: "cat-food", UserID: "user-1", Name: "Food", Type: "expense", Color: "#f44336"},
			{ID: "cat-salary", UserID: "user-1", Name: "Salary", Type: "income", Color: "#4caf50"},
			{ID: "cat-other", UserID: "user-2", Name: "Other", Type: "expense"},
		}
		for _, c := range seed {
			Expect(repo.Create(c)).To(Succeed())
		}
	})

	It("lists only the authenticated user's categories", func() {
		req := withUser(httptest.NewRequest(http.MethodGet, "/categories", nil), "user-1")
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response category.CategoriesResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Categories).To(HaveLen(2))
	})

	It("rejects requests without a session user", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("creates a category from a valid payload", func() {
		body := `{"name":"Transport","type":"expense","color":"#2196f3"}`
		req := withUser(httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body)), "user-1")
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		categories, err := service.GetCategories("user-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(HaveLen(3))
	})

	It("rejects a payload with an unknown type", func() {
		body := `{"name":"Misc","type":"both"}`
		req := withUser(httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body)), "user-1")
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_TYPE"))
	})

	It("returns 403 when updating another user's category", func() {
		body := `{"name":"Hijacked"}`
		req := withUser(httptest.NewRequest(http.MethodPatch, "/categories/cat-other", strings.NewReader(body)), "user-1")
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "cat-other")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.UpdateCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(w.Body.String()).To(ContainSubstring("UNAUTHORIZED_ACCESS"))
	})

	It("returns 404 when deleting an unknown category", func() {
		req := withUser(httptest.NewRequest(http.MethodDelete, "/categories/missing", nil), "user-1")
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "missing")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.DeleteCategory(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("CATEGORY_NOT_FOUND"))
	})
})

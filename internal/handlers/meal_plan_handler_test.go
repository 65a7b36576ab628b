package handlers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/seacatering/catering-api/internal/models"
	"github.com/seacatering/catering-api/internal/testutil"
)

func mealPlanRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "price", "description", "features", "icon", "is_active",
		"created_at", "updated_at",
	}).
		AddRow(1, "Diet Plan", 30000.0, "Fresh, calorie-controlled meals.",
			`["Low calorie","Fresh vegetables"]`, "🥗", true, now, now).
		AddRow(2, "Protein Plan", 40000.0, "High-protein meals for training days.",
			`["High protein","Post-workout friendly"]`, "💪", true, now, now)
}

func TestMealPlanList(t *testing.T) {
	t.Run("public list filters to active plans", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.GET("/api/meal-plans", h.List)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT * FROM "meal_plans" WHERE is_active = $1 ORDER BY price ASC`)).
			WithArgs(true).
			WillReturnRows(mealPlanRows())

		req := httptest.NewRequest(http.MethodGet, "/api/meal-plans", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Diet Plan")
		assert.Contains(t, resp.Body.String(), "Low calorie")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("include_inactive without admin role stays filtered", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.GET("/api/meal-plans", asUser(7, models.RoleCustomer), h.List)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT * FROM "meal_plans" WHERE is_active = $1 ORDER BY price ASC`)).
			WithArgs(true).
			WillReturnRows(mealPlanRows())

		req := httptest.NewRequest(http.MethodGet, "/api/meal-plans?include_inactive=true", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("admin with include_inactive sees everything", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.GET("/api/meal-plans", asUser(1, models.RoleAdmin), h.List)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT * FROM "meal_plans" ORDER BY price ASC`)).
			WillReturnRows(mealPlanRows())

		req := httptest.NewRequest(http.MethodGet, "/api/meal-plans?include_inactive=true", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMealPlanGetByID(t *testing.T) {
	t.Run("retired plan hidden from the public", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.GET("/api/meal-plans/:id", h.GetByID)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT * FROM "meal_plans" WHERE id = $1 AND is_active = $2`)).
			WithArgs("5", true, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		req := httptest.NewRequest(http.MethodGet, "/api/meal-plans/5", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "meal_plan_not_found")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMealPlanCreate(t *testing.T) {
	t.Run("missing icon falls back to the default", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.POST("/api/admin/meal-plans", asUser(1, models.RoleAdmin), h.Create)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "meal_plans"`)).
			WithArgs("Keto Plan", 50000.0, "Low-carb meals built around healthy fats.",
				`["Low carb","Keto friendly"]`, "🍽️", true,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
		mock.ExpectCommit()

		body := `{"name":"Keto Plan","price":50000,` +
			`"description":"Low-carb meals built around healthy fats.",` +
			`"features":["Low carb","Keto friendly"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/meal-plans", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), "🍽️")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero price rejected before any SQL", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.POST("/api/admin/meal-plans", asUser(1, models.RoleAdmin), h.Create)

		body := `{"name":"Free Plan","price":0,` +
			`"description":"This should never make it to the database.",` +
			`"features":["Nothing"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/meal-plans", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMealPlanDelete(t *testing.T) {
	t.Run("delete retires instead of removing", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupTestDB(t)
		defer cleanup()

		h := NewMealPlanHandler(db, testDispatcher(t))
		r := testutil.SetupTestRouter()
		r.DELETE("/api/admin/meal-plans/:id", asUser(1, models.RoleAdmin), h.Delete)

		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "meal_plans" WHERE id = $1`)).
			WithArgs("2", 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "price", "description", "features", "icon", "is_active",
				"created_at", "updated_at",
			}).AddRow(2, "Protein Plan", 40000.0, "High-protein meals for training days.",
				`["High protein"]`, "💪", true, now, now))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "meal_plans"`)).
			WithArgs("Protein Plan", 40000.0, "High-protein meals for training days.",
				`["High protein"]`, "💪", false, sqlmock.AnyArg(), sqlmock.AnyArg(), 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/meal-plans/2", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

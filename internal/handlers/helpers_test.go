package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/seacatering/catering-api/internal/audit"
	"github.com/seacatering/catering-api/internal/middleware"
	"github.com/seacatering/catering-api/internal/models"
	"github.com/seacatering/catering-api/internal/testutil"
)

// testDispatcher backs the audit pipeline with its own throwaway sqlmock
// connection so handler tests never have to script the async insert.
func testDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	db, _, cleanup := testutil.SetupTestDB(t)
	t.Cleanup(cleanup)
	return audit.NewDispatcher(audit.New(db))
}

// asUser fakes an authenticated request by seeding the context the way
// AuthMiddleware would.
func asUser(id uint, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

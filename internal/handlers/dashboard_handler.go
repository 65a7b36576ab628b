package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/models"
)

// DashboardHandler serves the admin landing-page counters.
type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	var totalUsers, activePlans, activeSubs, approvedTestimonials int64

	if err := h.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not load dashboard statistics.")
		return
	}
	if err := h.db.Model(&models.MealPlan{}).
		Where("is_active = ?", true).
		Count(&activePlans).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not load dashboard statistics.")
		return
	}
	if err := h.db.Model(&models.Subscription{}).
		Where("status = ?", string(domain.StatusActive)).
		Count(&activeSubs).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not load dashboard statistics.")
		return
	}
	if err := h.db.Model(&models.Testimonial{}).
		Where("is_approved = ?", true).
		Count(&approvedTestimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not load dashboard statistics.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":           totalUsers,
		"active_meal_plans":     activePlans,
		"active_subscriptions":  activeSubs,
		"approved_testimonials": approvedTestimonials,
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
	})
}

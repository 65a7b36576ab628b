package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seacatering/catering-api/internal/audit"
	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/middleware"
	"github.com/seacatering/catering-api/internal/models"
)

type TestimonialHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTestimonialHandler(db *gorm.DB, audit *audit.Dispatcher) *TestimonialHandler {
	return &TestimonialHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateTestimonialRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,min=2,max=100"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewMessage string `json:"review_message" binding:"required,min=10,max=1000"`
}

type UpdateApprovalRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// --------- Handlers ---------

// Create is a public endpoint; anyone may submit a review.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	testimonial := models.Testimonial{
		CustomerName:  domain.Sanitize(req.CustomerName),
		Rating:        req.Rating,
		ReviewMessage: domain.Sanitize(req.ReviewMessage),
		IsApproved:    true,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Could not submit the testimonial.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Testimonial submitted successfully",
		"testimonial_id": testimonial.ID,
	})
}

// List returns approved testimonials. Admins may ask for the unapproved ones
// with approved=false; anyone else always sees the moderated set.
func (h *TestimonialHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := h.db.Order("created_at DESC").Limit(limit)

	approvedOnly := true
	if c.Query("approved") == "false" {
		if role, ok := middleware.UserRole(c); ok && role.IsAdmin() {
			approvedOnly = false
		}
	}
	if approvedOnly {
		q = q.Where("is_approved = ?", true)
	}

	var testimonials []models.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Could not list testimonials.")
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) UpdateApproval(c *gin.Context) {
	id := c.Param("id")

	var req UpdateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var testimonial models.Testimonial
	if err := h.db.Where("id = ?", id).First(&testimonial).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_testimonial", "Could not load the testimonial.")
		return
	}

	testimonial.IsApproved = *req.IsApproved
	if err := h.db.Save(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_update_testimonial", "Could not update the testimonial.")
		return
	}

	h.dispatch(c, "testimonial_moderated", testimonial.ID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Testimonial moderation updated",
		"testimonial": testimonial,
	})
}

// Delete actually removes the row; testimonials carry no downstream
// references, unlike meal plans.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var testimonial models.Testimonial
	if err := h.db.Where("id = ?", id).First(&testimonial).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_testimonial", "Could not load the testimonial.")
		return
	}

	if err := h.db.Delete(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_testimonial", "Could not delete the testimonial.")
		return
	}

	h.dispatch(c, "testimonial_deleted", testimonial.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}

func (h *TestimonialHandler) dispatch(c *gin.Context, action string, id uint) {
	userID, ok := middleware.UserID(c)
	var actor *uint
	if ok {
		actor = &userID
	}
	h.audit.Dispatch(audit.Event{
		UserID:   actor,
		Action:   action,
		Entity:   "testimonial",
		EntityID: &id,
	})
}

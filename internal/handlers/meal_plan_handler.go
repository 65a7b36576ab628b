package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seacatering/catering-api/internal/audit"
	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/middleware"
	"github.com/seacatering/catering-api/internal/models"
)

type MealPlanHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMealPlanHandler(db *gorm.DB, audit *audit.Dispatcher) *MealPlanHandler {
	return &MealPlanHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateMealPlanRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Description string   `json:"description" binding:"required,min=10,max=1000"`
	Features    []string `json:"features" binding:"required,min=1"`
	Icon        string   `json:"icon" binding:"max=10"`
}

type UpdateMealPlanRequest struct {
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// --------- Helpers ---------

// Inactive plans stay hidden unless an authenticated admin asks for them.
// Public mounts never carry a role, so the flag is inert there.
func (h *MealPlanHandler) includeInactive(c *gin.Context) bool {
	if c.Query("include_inactive") != "true" {
		return false
	}
	role, ok := middleware.UserRole(c)
	return ok && role.IsAdmin()
}

// --------- Handlers ---------

func (h *MealPlanHandler) List(c *gin.Context) {
	q := h.db.Order("price ASC")
	if !h.includeInactive(c) {
		q = q.Where("is_active = ?", true)
	}

	var plans []models.MealPlan
	if err := q.Find(&plans).Error; err != nil {
		httperr.Internal(c, "failed_to_list_meal_plans", "Could not list meal plans.")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *MealPlanHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	q := h.db.Where("id = ?", id)
	if !h.includeInactive(c) {
		q = q.Where("is_active = ?", true)
	}

	var plan models.MealPlan
	if err := q.First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "meal_plan_not_found", "Meal plan not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_meal_plan", "Could not load the meal plan.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) Create(c *gin.Context) {
	var req CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	icon := req.Icon
	if icon == "" {
		icon = "🍽️"
	}

	plan := models.MealPlan{
		Name:        domain.Sanitize(req.Name),
		Price:       req.Price,
		Description: domain.Sanitize(req.Description),
		Features:    req.Features,
		Icon:        icon,
		IsActive:    true,
	}

	if err := h.db.Create(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_create_meal_plan", "Could not create the meal plan.")
		return
	}

	h.dispatch(c, "meal_plan_created", plan.ID)

	c.JSON(http.StatusCreated, plan)
}

func (h *MealPlanHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var plan models.MealPlan
	if err := h.db.Where("id = ?", id).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "meal_plan_not_found", "Meal plan not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_meal_plan", "Could not load the meal plan.")
		return
	}

	var req UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		plan.Name = domain.Sanitize(*req.Name)
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Description != nil {
		plan.Description = domain.Sanitize(*req.Description)
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}
	if req.Icon != nil {
		plan.Icon = *req.Icon
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := h.db.Save(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_update_meal_plan", "Could not update the meal plan.")
		return
	}

	h.dispatch(c, "meal_plan_updated", plan.ID)

	c.JSON(http.StatusOK, plan)
}

// Delete retires the plan. Rows are never removed: historical subscriptions
// keep referencing them.
func (h *MealPlanHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var plan models.MealPlan
	if err := h.db.Where("id = ?", id).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "meal_plan_not_found", "Meal plan not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_meal_plan", "Could not load the meal plan.")
		return
	}

	plan.IsActive = false
	if err := h.db.Save(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_meal_plan", "Could not retire the meal plan.")
		return
	}

	h.dispatch(c, "meal_plan_retired", plan.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}

func (h *MealPlanHandler) dispatch(c *gin.Context, action string, planID uint) {
	userID, ok := middleware.UserID(c)
	var actor *uint
	if ok {
		actor = &userID
	}
	h.audit.Dispatch(audit.Event{
		UserID:   actor,
		Action:   action,
		Entity:   "meal_plan",
		EntityID: &planID,
	})
}

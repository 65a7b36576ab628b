package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/dto"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/httpresp"
	"github.com/seacatering/catering-api/internal/middleware"
	ucSubscription "github.com/seacatering/catering-api/internal/usecase/subscription"
)

// ======================================================
// HANDLER
// ======================================================

type SubscriptionHandler struct {
	createUC       *ucSubscription.CreateSubscription
	updateStatusUC *ucSubscription.UpdateSubscriptionStatus
	getUC          *ucSubscription.GetSubscription
	listUC         *ucSubscription.ListUserSubscriptions
	listAllUC      *ucSubscription.ListAllSubscriptions
	statsUC        *ucSubscription.GetSubscriptionStats
}

func NewSubscriptionHandler(
	createUC *ucSubscription.CreateSubscription,
	updateStatusUC *ucSubscription.UpdateSubscriptionStatus,
	getUC *ucSubscription.GetSubscription,
	listUC *ucSubscription.ListUserSubscriptions,
	listAllUC *ucSubscription.ListAllSubscriptions,
	statsUC *ucSubscription.GetSubscriptionStats,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		getUC:          getUC,
		listUC:         listUC,
		listAllUC:      listAllUC,
		statsUC:        statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSubscriptionRequest struct {
	Name         string   `json:"name" binding:"required"`
	PhoneNumber  string   `json:"phone_number" binding:"required"`
	PlanID       uint     `json:"plan_id" binding:"required"`
	MealTypes    []string `json:"meal_types" binding:"required"`
	DeliveryDays []string `json:"delivery_days" binding:"required"`
	Allergies    string   `json:"allergies"`
}

type UpdateSubscriptionStatusRequest struct {
	Status      string  `json:"status" binding:"required"`
	PausedStart *string `json:"paused_start,omitempty"`
	PausedEnd   *string `json:"paused_end,omitempty"`
}

// ======================================================
// HELPERS
// ======================================================

// writeSubscriptionError maps domain failures onto the HTTP error taxonomy.
func writeSubscriptionError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		details := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, f.Field+": "+f.Message)
		}
		httperr.Validation(c, details)
		return
	}

	switch {
	case httperr.IsBusiness(err, "plan_not_found"):
		httperr.NotFound(c, "plan_not_found", "Meal plan not found or inactive.")
	case httperr.IsBusiness(err, "subscription_not_found"):
		httperr.NotFound(c, "subscription_not_found", "Subscription not found.")
	case httperr.IsBusiness(err, "user_not_found"):
		httperr.NotFound(c, "user_not_found", "User not found.")
	case httperr.IsBusiness(err, "subscription_limit_reached"):
		httperr.BadRequest(c, "subscription_limit_reached",
			"You already have 3 active subscriptions. Please cancel one before creating a new subscription.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status must be active, paused, or cancelled.")
	case httperr.IsBusiness(err, "subscription_cancelled"):
		httperr.BadRequest(c, "subscription_cancelled", "A cancelled subscription cannot change status.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date format")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// USER ROUTES
// ======================================================

func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Missing authenticated user.")
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sub, err := h.createUC.Execute(c.Request.Context(), ucSubscription.CreateSubscriptionInput{
		UserID:       userID,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		PlanID:       req.PlanID,
		MealTypes:    req.MealTypes,
		DeliveryDays: req.DeliveryDays,
		Allergies:    req.Allergies,
	})
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Subscription created successfully",
		"subscription_id": sub.ID,
		"total_price":     sub.TotalPrice,
	})
}

func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Missing authenticated user.")
		return
	}

	subs, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_subscriptions", "Could not list subscriptions.")
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *SubscriptionHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Missing authenticated user.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	sub, err := h.getUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Missing authenticated user.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	pausedStart, err := parseDate(req.PausedStart)
	if err != nil {
		httperr.Validation(c, []string{"pausedStart: invalid date format"})
		return
	}
	pausedEnd, err := parseDate(req.PausedEnd)
	if err != nil {
		httperr.Validation(c, []string{"pausedEnd: invalid date format"})
		return
	}

	sub, err := h.updateStatusUC.Execute(c.Request.Context(), ucSubscription.UpdateStatusInput{
		UserID:         userID,
		SubscriptionID: id,
		Status:         req.Status,
		PausedStart:    pausedStart,
		PausedEnd:      pausedEnd,
	})
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Subscription " + sub.Status + " successfully",
		"subscription": gin.H{"id": sub.ID, "status": sub.Status},
	})
}

// ======================================================
// ADMIN ROUTES
// ======================================================

func (h *SubscriptionHandler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	subs, total, err := h.listAllUC.Execute(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_subscriptions", "Could not list subscriptions.")
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = ucSubscription.DefaultPageLimit
	}
	if limit > ucSubscription.MaxPageLimit {
		limit = ucSubscription.MaxPageLimit
	}

	rows := make([]dto.SubscriptionListDTO, 0, len(subs))
	for i := range subs {
		rows = append(rows, dto.FromSubscription(&subs[i]))
	}

	httpresp.Page(c, rows, total, page, limit)
}

func (h *SubscriptionHandler) AdminStats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not load statistics.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"overall_stats": stats})
}

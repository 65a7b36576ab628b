package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/seacatering/catering-api/internal/auth"
	"github.com/seacatering/catering-api/internal/config"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/middleware"
	"github.com/seacatering/catering-api/internal/models"
	"github.com/seacatering/catering-api/internal/validators"
)

const (
	refreshCookieName = "refresh_token"
	bcryptCost        = 12
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	tokens  *auth.TokenService
	refresh *auth.RefreshStore
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, tokens *auth.TokenService, refresh *auth.RefreshStore) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: tokens, refresh: refresh}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.Validation(c, []string{"passwords do not match"})
		return
	}

	if violations := validators.ValidatePassword(req.Password); len(violations) > 0 {
		httperr.Validation(c, violations)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(models.RoleCustomer),
	}

	if err := h.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "This email is already registered.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	accessToken, err := h.issueTokens(c, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue credentials.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         publicUser(&user),
		"access_token": accessToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password answer identically so the response
	// never confirms whether an address is registered.
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.BadRequest(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not process the login.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	accessToken, err := h.issueTokens(c, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue credentials.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         publicUser(&user),
		"access_token": accessToken,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie == "" {
		httperr.Unauthorized(c, "missing_refresh_token", "No refresh credential present.")
		return
	}

	claims, jti, err := h.tokens.ParseRefreshToken(cookie)
	if err != nil {
		httperr.Unauthorized(c, "invalid_refresh_token", "The refresh credential is invalid or expired.")
		return
	}

	live, err := h.refresh.Exists(c.Request.Context(), jti)
	if err != nil {
		httperr.Internal(c, "refresh_store_error", "Could not validate the refresh credential.")
		return
	}
	if !live {
		httperr.Unauthorized(c, "revoked_refresh_token", "The refresh credential has been revoked.")
		return
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		httperr.Unauthorized(c, "unknown_user", "The refresh credential no longer maps to a user.")
		return
	}

	// Rotation: the presented token dies, a fresh one takes its place.
	if err := h.refresh.Revoke(c.Request.Context(), jti); err != nil {
		httperr.Internal(c, "refresh_store_error", "Could not rotate the refresh credential.")
		return
	}

	accessToken, err := h.issueTokens(c, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue credentials.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie != "" {
		if _, jti, err := h.tokens.ParseRefreshToken(cookie); err == nil {
			_ = h.refresh.Revoke(c.Request.Context(), jti)
		}
	}

	c.SetCookie(refreshCookieName, "", -1, "/", "", h.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// CSRFToken sets the double-submit cookie. The cookie is intentionally
// readable by the frontend, which echoes it back in the X-CSRF-Token header.
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	token := middleware.NewCSRFToken()
	c.SetCookie(middleware.CSRFCookieName, token, 24*60*60, "/", "", h.config.IsProduction(), false)
	c.JSON(http.StatusOK, gin.H{"csrf_token": token})
}

// --------- Helpers ---------

func (h *AuthHandler) issueTokens(c *gin.Context, user *models.User) (string, error) {
	accessToken, err := h.tokens.NewAccessToken(user)
	if err != nil {
		return "", err
	}

	refreshToken, jti, err := h.tokens.NewRefreshToken(user)
	if err != nil {
		return "", err
	}

	if err := h.refresh.Save(c.Request.Context(), jti, user.ID, h.config.RefreshTokenTTL); err != nil {
		return "", err
	}

	c.SetCookie(
		refreshCookieName,
		refreshToken,
		int(h.config.RefreshTokenTTL.Seconds()),
		"/",
		"",
		h.config.IsProduction(),
		true,
	)

	return accessToken, nil
}

func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

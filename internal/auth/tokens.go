package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/seacatering/catering-api/internal/config"
	"github.com/seacatering/catering-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what a validated bearer credential yields.
type Claims struct {
	UserID uint
	Name   string
	Email  string
	Role   models.Role
}

type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

// --------- Access token ---------

func (s *TokenService) NewAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   now.Add(s.cfg.AccessTokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *TokenService) ParseAccessToken(tokenString string) (*Claims, error) {
	return parse(tokenString, s.cfg.JWTSecret)
}

// --------- Refresh token ---------

// NewRefreshToken mints a refresh JWT with a unique jti. The jti must be
// registered in the RefreshStore before the token is usable.
func (s *TokenService) NewRefreshToken(user *models.User) (token string, jti string, err error) {
	jti = uuid.NewString()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"jti":   jti,
		"exp":   now.Add(s.cfg.RefreshTokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(s.cfg.RefreshSecret))
	return token, jti, err
}

func (s *TokenService) ParseRefreshToken(tokenString string) (*Claims, string, error) {
	token, err := jwt.Parse(tokenString, keyFunc(s.cfg.RefreshSecret))
	if err != nil || !token.Valid {
		return nil, "", ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", ErrInvalidToken
	}

	claims, err := fromMapClaims(mapClaims)
	if err != nil {
		return nil, "", err
	}

	jti, _ := mapClaims["jti"].(string)
	if jti == "" {
		return nil, "", ErrInvalidToken
	}

	return claims, jti, nil
}

// --------- Parsing helpers ---------

func keyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	}
}

func parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, keyFunc(secret))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return fromMapClaims(mapClaims)
}

func fromMapClaims(mapClaims jwt.MapClaims) (*Claims, error) {
	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	roleStr, _ := mapClaims["role"].(string)
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return nil, ErrInvalidToken
	}

	name, _ := mapClaims["name"].(string)
	email, _ := mapClaims["email"].(string)

	return &Claims{
		UserID: uint(sub),
		Name:   name,
		Email:  email,
		Role:   role,
	}, nil
}

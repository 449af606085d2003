package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dreamjobs/portal/config"
	"github.com/dreamjobs/portal/models"
)

const issuer = "dreamjobs-portal"

// JWTService handles JWT token operations
type JWTService struct {
	secretKey   []byte
	expiryHours int
}

// Claims represents JWT claims
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey:   []byte(cfg.JWTSecret),
		expiryHours: cfg.JWTExpiryHours,
	}
}

// GenerateToken generates a JWT token for a user
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken validates a JWT token and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID == 0 || (claims.Role != models.RoleCandidate && claims.Role != models.RoleEmployer) {
		return nil, errors.New("token is missing user or role")
	}

	return claims, nil
}

// RefreshToken generates a new token with extended expiry
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(s.expiryHours) * time.Hour))
	claims.IssuedAt = jwt.NewNumericDate(now)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

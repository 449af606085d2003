package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/auth"
	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/storage"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	store      storage.Repository
	jwtService *auth.JWTService
	googleAuth auth.GoogleVerifier
	now        func() time.Time
	log        *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	store storage.Repository,
	jwtService *auth.JWTService,
	googleAuth auth.GoogleVerifier,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		store:      store,
		jwtService: jwtService,
		googleAuth: googleAuth,
		now:        time.Now,
		log:        logger.OrNop(log).Named("auth"),
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a candidate or employer account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, h.log, err, "Failed to process registration")
		return
	}

	user := &models.User{
		Email:        normalizeEmail(req.Email),
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
		PasswordHash: hashedPassword,
		Provider:     models.ProviderEmail,
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			respondError(c, h.log, err, "User already exists")
			return
		}
		respondError(c, h.log, err, "Registration failed")
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		respondError(c, h.log, err, "Failed to generate token")
		return
	}

	h.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Registration successful",
	})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email, password and role to get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		respondError(c, h.log, err, "Login failed")
		return
	}

	// Unknown email, wrong role and wrong password look the same to the caller.
	if user == nil || user.Role != req.Role {
		h.unauthorized(c, "Invalid email or password")
		return
	}

	if user.PasswordHash == "" && user.Provider == models.ProviderGoogle {
		h.unauthorized(c, "This account uses Google Sign-In. Please login with Google.")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.unauthorized(c, "Invalid email or password")
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		respondError(c, h.log, err, "Failed to generate token")
		return
	}

	h.log.Info("user logged in", zap.Int64("user_id", user.ID))
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 403 {object} models.ErrorResponse "Account belongs to another role"
// @Failure 503 {object} models.ErrorResponse "Google sign-in not configured"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	googleUser, err := h.googleAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrGoogleNotConfigured) {
			respondError(c, h.log, err, "Google sign-in is not available")
			return
		}
		h.log.Info("rejected google token", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid Google token",
			Code:    http.StatusUnauthorized,
			Details: err.Error(),
		})
		return
	}

	user, err := h.findGoogleUser(c, googleUser)
	if err != nil {
		respondError(c, h.log, err, "Failed to sign in")
		return
	}

	switch {
	case user == nil:
		user = &models.User{
			Email:    normalizeEmail(googleUser.Email),
			Name:     googleUser.Name,
			Role:     req.Role,
			Provider: models.ProviderGoogle,
			GoogleID: googleUser.GoogleID,
		}
		if err := h.store.CreateUser(ctx, user); err != nil {
			respondError(c, h.log, err, "Failed to create account")
			return
		}
		h.log.Info("google user created", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	case user.Role != req.Role:
		c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "Account belongs to another role",
			Code:    http.StatusForbidden,
			Details: "this account is registered as " + user.Role,
		})
		return
	case user.GoogleID == "":
		if err := h.store.LinkGoogleAccount(ctx, user.ID, googleUser.GoogleID); err != nil {
			respondError(c, h.log, err, "Failed to link Google account")
			return
		}
		user.GoogleID = googleUser.GoogleID
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		respondError(c, h.log, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// findGoogleUser looks an account up by Google ID, then by email. A nil
// user with a nil error means no account exists yet.
func (h *AuthHandler) findGoogleUser(c *gin.Context, info *auth.GoogleUserInfo) (*models.User, error) {
	ctx := c.Request.Context()
	user, err := h.store.GetUserByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	user, err = h.store.GetUserByEmail(ctx, normalizeEmail(info.Email))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

// GetProfile retrieves the signed-in account
// @Summary Get account
// @Description Get the authenticated account and whether premium access is active
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "Account"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.store.GetUserByID(ctx, claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}

	premium, err := h.store.HasActiveAccess(ctx, user.ID, h.now())
	if err != nil {
		respondError(c, h.log, err, "Failed to check premium access")
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		User:          user,
		PremiumActive: premium,
	})
}

// Refresh issues a fresh token for a still valid one
// @Summary Refresh token
// @Description Exchange a valid JWT for a new one with a full expiry window
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AuthResponse "New token"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	raw, _ := auth.BearerToken(c)

	// The account may have been removed since the token was issued.
	user, err := h.store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.unauthorized(c, "Account no longer exists")
			return
		}
		respondError(c, h.log, err, "Failed to load account")
		return
	}

	token, err := h.jwtService.RefreshToken(raw)
	if err != nil {
		h.unauthorized(c, "Invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error: message,
		Code:  http.StatusUnauthorized,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

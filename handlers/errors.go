package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/auth"
	"github.com/dreamjobs/portal/match"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/notify"
	"github.com/dreamjobs/portal/payments"
	"github.com/dreamjobs/portal/storage"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		providerErr *payments.ProviderError
		mailErr     *notify.MailError
	)
	switch {
	case errors.Is(err, match.ErrInvalidInput), errors.Is(err, payments.ErrSignatureMismatch):
		return http.StatusBadRequest
	case errors.Is(err, payments.ErrNotCompleted):
		return http.StatusPaymentRequired
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, payments.ErrNotConfigured), errors.Is(err, auth.ErrGoogleNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &providerErr), errors.As(err, &mailErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal errors are logged
// and their details withheld from the client.
func respondError(c *gin.Context, log *zap.Logger, err error, message string) {
	status := statusFor(err)
	resp := models.ErrorResponse{Error: message, Code: status}
	if status >= http.StatusInternalServerError {
		log.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
	}
	if status != http.StatusInternalServerError {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Error: message, Code: http.StatusBadRequest}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func notFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{
		Error: message,
		Code:  http.StatusNotFound,
	})
}

// currentClaims returns the caller's claims or aborts with 401.
func currentClaims(c *gin.Context) (*auth.Claims, bool) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return nil, false
	}
	return claims, true
}

// idParam parses a positive integer path or query value.
func idParam(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

// publish sends an event and only logs a failure.
func publish(ctx context.Context, n notify.Notifier, log *zap.Logger, e notify.Event) {
	if n == nil {
		return
	}
	if err := n.Publish(ctx, e); err != nil {
		log.Warn("publishing event failed", zap.String("type", e.Type), zap.String("id", e.ID), zap.Error(err))
	}
}

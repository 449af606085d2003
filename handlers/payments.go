package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/notify"
	"github.com/dreamjobs/portal/payments"
	"github.com/dreamjobs/portal/storage"
)

// PaymentSettings is what a premium checkout costs and grants
type PaymentSettings struct {
	AmountMinor int64
	Currency    string
	Access      time.Duration
}

// PaymentHandler creates checkout orders and confirms payments
type PaymentHandler struct {
	store    storage.Repository
	gateway  payments.Gateway
	notifier notify.Notifier
	settings PaymentSettings
	now      func() time.Time
	log      *zap.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	store storage.Repository,
	gateway payments.Gateway,
	notifier notify.Notifier,
	settings PaymentSettings,
	log *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		settings: settings,
		now:      time.Now,
		log:      logger.OrNop(log).Named("payments"),
	}
}

// CreateOrder starts a premium checkout
// @Summary Create checkout order
// @Description Create a provider order for premium access and record it in the ledger
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.OrderResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 502 {object} models.ErrorResponse "Payment provider error"
// @Failure 503 {object} models.ErrorResponse "Payments not configured"
// @Router /payments/orders [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	order, err := h.gateway.CreateOrder(ctx, payments.OrderRequest{
		AmountMinor: h.settings.AmountMinor,
		Currency:    h.settings.Currency,
		Receipt:     uuid.NewString(),
	})
	if err != nil {
		respondError(c, h.log, err, "Failed to create order")
		return
	}

	payment := &models.Payment{
		UserID:      claims.UserID,
		Role:        claims.Role,
		Provider:    h.gateway.Name(),
		OrderID:     order.ID,
		Status:      models.PaymentCreated,
		AmountMinor: h.settings.AmountMinor,
		Currency:    h.settings.Currency,
		CreatedAt:   h.now(),
	}
	payment.ExpiresAt = payment.CreatedAt
	if err := h.store.CreatePayment(ctx, payment); err != nil {
		respondError(c, h.log, err, "Failed to record order")
		return
	}

	h.log.Info("order created", zap.Int64("user_id", claims.UserID), zap.String("order_id", order.ID),
		zap.String("provider", payment.Provider))
	c.JSON(http.StatusCreated, models.OrderResponse{
		OrderID:     order.ID,
		Provider:    payment.Provider,
		AmountMinor: payment.AmountMinor,
		Currency:    payment.Currency,
		ApproveURL:  order.ApproveURL,
		KeyID:       order.KeyID,
	})
}

// Capture confirms a paid order and grants premium access
// @Summary Confirm payment
// @Description Verify the payment with the provider and activate premium access. Confirming an already paid order returns it unchanged.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CaptureRequest true "Checkout result"
// @Success 200 {object} models.Payment
// @Failure 400 {object} models.ErrorResponse "Invalid request or signature"
// @Failure 402 {object} models.ErrorResponse "Payment not completed"
// @Failure 404 {object} models.ErrorResponse "Order not found"
// @Failure 502 {object} models.ErrorResponse "Payment provider error"
// @Failure 503 {object} models.ErrorResponse "Payments not configured"
// @Router /payments/capture [post]
func (h *PaymentHandler) Capture(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var req models.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	payment, err := h.store.GetPaymentByOrderID(ctx, req.OrderID)
	if err != nil {
		respondError(c, h.log, err, "Order not found")
		return
	}
	if payment.UserID != claims.UserID {
		notFound(c, "Order not found")
		return
	}
	if payment.Status == models.PaymentPaid {
		c.JSON(http.StatusOK, payment)
		return
	}

	captured, err := h.gateway.Capture(ctx, payments.CaptureInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.log.Info("capture rejected", zap.String("order_id", req.OrderID), zap.Error(err))
		respondError(c, h.log, err, "Payment verification failed")
		return
	}

	paidAt := h.now()
	payment, err = h.store.MarkPaymentPaid(ctx, req.OrderID, captured.PaymentID, paidAt, paidAt.Add(h.settings.Access))
	if err != nil {
		respondError(c, h.log, err, "Failed to record payment")
		return
	}

	publish(ctx, h.notifier, h.log, notify.NewEvent(notify.EventPaymentCaptured, map[string]any{
		"userId":    payment.UserID,
		"orderId":   payment.OrderID,
		"paymentId": payment.PaymentID,
		"provider":  payment.Provider,
		"expiresAt": payment.ExpiresAt,
	}))

	c.JSON(http.StatusOK, payment)
}

// List returns the caller's payments
// @Summary Payment history
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PaymentsResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	history, err := h.store.ListPayments(ctx, claims.UserID)
	if err != nil {
		respondError(c, h.log, err, "Failed to list payments")
		return
	}
	active, err := h.store.HasActiveAccess(ctx, claims.UserID, h.now())
	if err != nil {
		respondError(c, h.log, err, "Failed to check premium access")
		return
	}
	c.JSON(http.StatusOK, models.PaymentsResponse{Results: history, PremiumActive: active})
}

// RequirePremium rejects callers without an active paid payment. It must
// run after AuthMiddleware.
func RequirePremium(store storage.Repository, now func() time.Time, log *zap.Logger) gin.HandlerFunc {
	log = logger.OrNop(log).Named("premium")
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		active, err := store.HasActiveAccess(c.Request.Context(), claims.UserID, now())
		if err != nil {
			respondError(c, log, err, "Failed to check premium access")
			return
		}
		if !active {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, models.ErrorResponse{
				Error:   "Premium access required",
				Code:    http.StatusPaymentRequired,
				Details: "buy access via POST /api/payments/orders",
			})
			return
		}
		c.Next()
	}
}

package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"urbanhelp/config"
	"urbanhelp/services/booking"
	"urbanhelp/services/payment"
	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the gateway verification endpoint and the redirect
// callback the gateway sends the user's browser back through.
type PaymentHandler struct {
	Gateway payment.GatewayClient
	Engine  booking.Engine
	Logger  *zap.Logger
}

func NewPaymentHandler(gateway payment.GatewayClient, engine booking.Engine, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Gateway: gateway, Engine: engine, Logger: logger}
}

// VerifyPayment handles POST /api/payments/verify: a pass-through of the
// gateway's lookup verdict.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var input payment.LookupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "token and amount are required.", err)
		return
	}

	result, err := h.Gateway.Lookup(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("payment verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Payment verification failed.", err)
		return
	}

	if result.Verified() {
		c.JSON(http.StatusOK, gin.H{"status": "verified", "data": result.Raw})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "failed", "data": result.Raw})
}

// KhaltiPaymentSuccess handles GET /api/payments/khalti-payment-success, the
// redirect callback carrying the gateway's outcome as query parameters. This
// path never returns JSON: every outcome maps to a redirect to the frontend
// payment status page.
func (h *PaymentHandler) KhaltiPaymentSuccess(c *gin.Context) {
	gatewayStatus := c.Query("status")
	transactionID := c.Query("transaction_id")
	bookingID := c.Query("purchase_order_id")

	if gatewayStatus != "Completed" {
		h.Logger.Warn("gateway reported unsuccessful payment",
			zap.String("bookingId", bookingID),
			zap.String("status", gatewayStatus))
		if bookingID != "" {
			h.Engine.RecordGatewayFailure(c.Request.Context(), bookingID, gatewayStatus)
		}
		h.redirect(c, false, fmt.Sprintf("Payment %s", gatewayStatus), "")
		return
	}

	if bookingID == "" {
		h.redirect(c, false, "Missing purchase order reference", "")
		return
	}

	if _, err := h.Engine.CompleteGatewayPayment(c.Request.Context(), bookingID, transactionID); err != nil {
		h.Logger.Error("gateway payment completion failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		h.redirect(c, false, "Could not record payment", "")
		return
	}

	h.redirect(c, true, "Payment completed", transactionID)
}

func (h *PaymentHandler) redirect(c *gin.Context, success bool, message, transactionID string) {
	params := url.Values{}
	params.Set("success", fmt.Sprintf("%t", success))
	params.Set("message", message)
	if transactionID != "" {
		params.Set("transactionId", transactionID)
	}
	c.Redirect(http.StatusFound, config.AppConfig.FrontendURL+"/payment-status?"+params.Encode())
}

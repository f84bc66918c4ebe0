package api

import (
	"net/http"

	resdto "carhaul-portal/internal/handler/dto/response"
	"carhaul-portal/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments PaymentCommands
}

func NewPaymentHandler(payments PaymentCommands) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// @Summary Start checkout
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/checkout [post]
func (h *PaymentHandler) StartCheckout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.payments.StartCheckout(c.Request.Context(), key, sess.UpstreamToken())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(rm))
}

// @Summary Check payment status once
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 409 {object} httperr.Response
// @Router /payments/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.payments.Probe(c.Request.Context(), key, sess.UpstreamToken())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentStatus(rm))
}

// @Summary Wait for payment confirmation
// @Description Polls the processor until the status is terminal or the
// @Description attempt budget runs out; the latter returns still_confirming.
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 409 {object} httperr.Response
// @Router /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.payments.Await(c.Request.Context(), key, sess.UpstreamToken())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentStatus(rm))
}

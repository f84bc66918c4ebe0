package api

import (
	"net/http"

	reqdto "carhaul-portal/internal/handler/dto/request"
	resdto "carhaul-portal/internal/handler/dto/response"
	"carhaul-portal/internal/handler/httperr"
	"carhaul-portal/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	wizard      WizardCommands
	wizardQuery WizardQueries
}

func NewWizardHandler(wizard WizardCommands, wizardQuery WizardQueries) *WizardHandler {
	return &WizardHandler{wizard: wizard, wizardQuery: wizardQuery}
}

func flowKey(c *gin.Context) (string, bool) {
	key, ok := middleware.GetFlowKey(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		c.Abort()
	}
	return key, ok
}

// @Summary Current flow state
// @Tags wizard
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/state [get]
func (h *WizardHandler) State(c *gin.Context) {
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.wizardQuery.State(c.Request.Context(), key)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(rm))
}

// @Summary Request a quote
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote form"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /wizard/quote [post]
func (h *WizardHandler) RequestQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.wizard.RequestQuote(c.Request.Context(), key, req.ToDomain())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(rm))
}

// @Summary Retry the last failed quote request
// @Tags wizard
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 404 {object} httperr.Response
// @Router /wizard/quote/retry [post]
func (h *WizardHandler) RetryQuote(c *gin.Context) {
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.wizard.RetryQuote(c.Request.Context(), key)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(rm))
}

// @Summary Save reservation details
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.DraftRequest true "Reservation form"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 409 {object} httperr.Response
// @Router /wizard/draft [put]
func (h *WizardHandler) SaveDraft(c *gin.Context) {
	var req reqdto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.wizard.SaveDraft(c.Request.Context(), key, req.ToDomain())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(rm))
}

// @Summary Secure the reservation
// @Tags wizard
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /wizard/secure [post]
func (h *WizardHandler) Secure(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.wizard.Secure(c.Request.Context(), key, sess.UpstreamToken())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(rm))
}

// @Summary Choose a protection plan
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body reqdto.ProtectionRequest true "Plan"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 409 {object} httperr.Response
// @Router /wizard/protection [post]
func (h *WizardHandler) SelectProtection(c *gin.Context) {
	var req reqdto.ProtectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	rm, err := h.wizard.SelectProtection(c.Request.Context(), key, req.Plan)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(rm))
}

// @Summary Mark a post-login destination
// @Description Called when an anonymous visitor reaches a step that needs an
// @Description account. The next successful login redirects there once.
// @Tags wizard
// @Accept json
// @Success 204 "No Content"
// @Router /wizard/handoff [post]
func (h *WizardHandler) MarkHandoff(c *gin.Context) {
	var req reqdto.HandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	key, ok := flowKey(c)
	if !ok {
		return
	}
	if err := h.wizard.MarkHandoff(c.Request.Context(), key, req.RedirectTo); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"
	"time"

	reqdto "carhaul-portal/internal/handler/dto/request"
	resdto "carhaul-portal/internal/handler/dto/response"
	"carhaul-portal/internal/handler/httperr"
	"carhaul-portal/internal/handler/middleware"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/cookie"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      AuthCommands
	cookieCfg config.CookieConfig
	jwtTTL    time.Duration
}

func NewAuthHandler(auth AuthCommands, cfg config.Config) *AuthHandler {
	jwtTTL, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		jwtTTL = 24 * time.Hour
	}
	return &AuthHandler{
		auth:      auth,
		cookieCfg: cfg.Cookie,
		jwtTTL:    jwtTTL,
	}
}

// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration details"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.auth.Register(c.Request.Context(), req.ToInput()); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Log in
// @Description Authenticates and sets the session cookie. Any quote flow
// @Description started anonymously follows the user into the session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), commands.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		WizardKey: cookie.GetVisitorID(c),
	})
	if err != nil {
		abortDomainError(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.PortalToken, h.jwtTTL)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Log out
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Idempotent: an unauthenticated logout still clears the cookie.
	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
			abortDomainError(c, err)
			return
		}
	}
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	u := sess.User()
	c.JSON(http.StatusOK, resdto.MeResponse{User: readmodel.SessionUserRM{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role.String(),
	}})
}

// @Summary Confirm signup OTP
// @Tags auth
// @Param otp query string true "One-time code"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /auth/otp/confirmation [get]
func (h *AuthHandler) ConfirmOTP(c *gin.Context) {
	otp := c.Query("otp")
	if otp == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrInvalidOTP, "Verification code is required", nil)
		return
	}
	if err := h.auth.ConfirmOTP(c.Request.Context(), otp); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Success 204 "No Content"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset password with a token
// @Tags auth
// @Accept json
// @Success 204 "No Content"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resend verification token
// @Tags auth
// @Accept json
// @Success 204 "No Content"
// @Router /auth/resend-token [post]
func (h *AuthHandler) ResendToken(c *gin.Context) {
	var req reqdto.ResendTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.auth.ResendToken(c.Request.Context(), req.Email); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

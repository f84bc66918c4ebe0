package api

import (
	"net/http"

	reqdto "carhaul-portal/internal/handler/dto/request"
	resdto "carhaul-portal/internal/handler/dto/response"
	"carhaul-portal/internal/handler/httperr"
	"carhaul-portal/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profile ProfileCommands
	query   ProfileQueries
}

func NewProfileHandler(profile ProfileCommands, query ProfileQueries) *ProfileHandler {
	return &ProfileHandler{profile: profile, query: query}
}

// @Summary Account dashboard
// @Tags profile
// @Produce json
// @Success 200 {object} readmodel.DashboardRM
// @Router /profile/dashboard [get]
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	rm, err := h.query.Dashboard(c.Request.Context(), sess.UpstreamToken())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body reqdto.ProfilePatchRequest true "Fields to change"
// @Success 200 {object} resdto.MeResponse
// @Failure 400 {object} httperr.Response
// @Router /profile [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req reqdto.ProfilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	rm, err := h.profile.Update(c.Request.Context(), sess.ID(), sess.UpstreamToken(), req.ToInput())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{User: *rm})
}

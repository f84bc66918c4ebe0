package api

import (
	"net/http"

	reqdto "carhaul-portal/internal/handler/dto/request"
	"carhaul-portal/internal/handler/httperr"
	"carhaul-portal/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin AdminCommands
}

func NewAdminHandler(admin AdminCommands) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// @Summary Update shipment progress
// @Tags admin
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/progress [patch]
func (h *AdminHandler) UpdateProgress(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req reqdto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.admin.UpdateProgress(c.Request.Context(), sess.UpstreamToken(), req.ToInput()); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

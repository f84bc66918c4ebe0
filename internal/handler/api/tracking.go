package api

import (
	"net/http"

	"carhaul-portal/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	tracking TrackingQueries
}

func NewTrackingHandler(tracking TrackingQueries) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// @Summary Shipment status
// @Tags tracking
// @Produce json
// @Param reference query string true "Quote reference"
// @Success 200 {object} readmodel.TrackingRM
// @Failure 404 {object} httperr.Response
// @Router /tracking [get]
func (h *TrackingHandler) Status(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	rm, err := h.tracking.Status(c.Request.Context(), sess.UpstreamToken(), c.Query("reference"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

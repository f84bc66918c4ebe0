package api

import (
	"net/http"

	reqdto "carhaul-portal/internal/handler/dto/request"
	"carhaul-portal/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contact ContactCommands
}

func NewContactHandler(contact ContactCommands) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.contact.Send(c.Request.Context(), req.ToInput()); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"errors"
	"net/http"

	resdto "carhaul-portal/internal/handler/dto/response"
	"carhaul-portal/internal/handler/httperr"
	"carhaul-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	lookups  LookupQueries
	suggests SuggestQueries
}

func NewLookupHandler(lookups LookupQueries, suggests SuggestQueries) *LookupHandler {
	return &LookupHandler{lookups: lookups, suggests: suggests}
}

// @Summary Vehicle brands
// @Tags lookup
// @Produce json
// @Success 200 {object} resdto.BrandsResponse
// @Router /lookup/brands [get]
func (h *LookupHandler) Brands(c *gin.Context) {
	brands, err := h.lookups.Brands(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BrandsResponse{Brands: brands})
}

// @Summary Models for a brand
// @Tags lookup
// @Produce json
// @Param brand path string true "Brand name"
// @Success 200 {object} resdto.ModelsResponse
// @Router /lookup/brands/{brand}/models [get]
func (h *LookupHandler) Models(c *gin.Context) {
	models, err := h.lookups.Models(c.Request.Context(), c.Param("brand"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ModelsResponse{Models: models})
}

// @Summary Address autocomplete
// @Description A newer query from the same caller cancels this one; the
// @Description cancelled request gets 409 and should be discarded.
// @Tags lookup
// @Produce json
// @Param input query string true "Partial address"
// @Success 200 {object} resdto.SuggestionsResponse
// @Failure 409 {object} httperr.Response
// @Router /lookup/suggest [get]
func (h *LookupHandler) Suggest(c *gin.Context) {
	key, ok := flowKey(c)
	if !ok {
		return
	}
	suggestions, err := h.suggests.Autocomplete(c.Request.Context(), key, c.Query("input"))
	if err != nil {
		if errors.Is(err, queries.ErrSuperseded) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Superseded by a newer query", nil)
			return
		}
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuggestionsResponse{Suggestions: suggestions})
}

// @Summary Route distance and duration
// @Tags lookup
// @Produce json
// @Param origin query string true "Origin"
// @Param destination query string true "Destination"
// @Success 200 {object} resdto.DirectionsResponse
// @Router /lookup/directions [get]
func (h *LookupHandler) Directions(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
		return
	}
	rm, err := h.lookups.Directions(c.Request.Context(), origin, destination)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDirections(rm))
}

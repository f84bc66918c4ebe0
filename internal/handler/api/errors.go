package api

import (
	"errors"
	"net/http"

	"carhaul-portal/internal/domain/contact"
	"carhaul-portal/internal/domain/quote"
	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/domain/wizard"
	"carhaul-portal/internal/handler/httperr"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortDomainError translates usecase and domain errors into HTTP responses.
// Handlers call it from their default branches so per-endpoint switches only
// cover endpoint-specific cases.
func abortDomainError(c *gin.Context, err error) {
	var missingErr *quote.MissingFieldsError
	if errors.As(err, &missingErr) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Required fields are missing", gin.H{
			"missingFields": missingErr.Fields,
		})
		return
	}

	var transitionErr *wizard.TransitionError
	if errors.As(err, &transitionErr) {
		httperr.AbortWithError(c, http.StatusConflict, err, "That step is not available yet", gin.H{
			"stage":  transitionErr.Stage.String(),
			"resume": transitionErr.Resume.String(),
		})
		return
	}

	switch {
	case errors.Is(err, quote.ErrInvalidYear),
		errors.Is(err, quote.ErrInvalidDate),
		errors.Is(err, quote.ErrSameLocations),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrPasswordTooWeak),
		errors.Is(err, contact.ErrMessageTooShort),
		errors.Is(err, contact.ErrNameRequired),
		errors.Is(err, wizard.ErrInvalidCarrier),
		errors.Is(err, wizard.ErrInvalidCondition),
		errors.Is(err, wizard.ErrProtectionNeeded),
		errors.Is(err, commands.ErrDraftIncomplete),
		errors.Is(err, commands.ErrProgressOutOfRange),
		errors.Is(err, commands.ErrReferenceRequired),
		errors.Is(err, queries.ErrReferenceRequired),
		errors.Is(err, queries.ErrBrandRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, commands.ErrSessionGone):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired", nil)
	case errors.Is(err, commands.ErrAccountNotVerified),
		errors.Is(err, queries.ErrTrackingForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errors.Is(err, commands.ErrNothingToRetry),
		errors.Is(err, queries.ErrTrackingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, commands.ErrEmailAlreadyUsed),
		errors.Is(err, wizard.ErrQuoteRequired),
		errors.Is(err, wizard.ErrPaymentInFlight),
		errors.Is(err, wizard.ErrNoPaymentSession):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, commands.ErrInvalidOTP):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrQuoteUnavailable),
		errors.Is(err, commands.ErrCheckoutUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

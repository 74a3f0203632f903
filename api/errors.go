package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConsignorIncomplete),
		errors.Is(err, domain.ErrChooseBank),
		errors.Is(err, domain.ErrUnknownBank):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrNoSession),
		errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOfferFull),
		errors.Is(err, domain.ErrCheckoutBusy),
		errors.Is(err, domain.ErrWrongStep),
		errors.Is(err, domain.ErrCancelUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func handleError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

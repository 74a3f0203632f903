package api

import (
	"net/http"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/ledger"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	ledger ledger.LedgerUseCase
}

type bookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Summary  ledger.Summary   `json:"summary"`
}

func NewBookingHandler(ledger ledger.LedgerUseCase) *BookingHandler {
	return &BookingHandler{ledger: ledger}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
	router.POST("/:id/dispute", h.dispute)
}

func (h *BookingHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, bookingsResponse{
		Bookings: h.ledger.List(),
		Summary:  h.ledger.Summary(),
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	booking, err := h.ledger.Get(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	booking, err := h.ledger.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) dispute(c *gin.Context) {
	if err := h.ledger.RaiseDispute(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "submitted"})
}

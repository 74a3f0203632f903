package api

import (
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Offers        *OfferHandler
	Checkout      *CheckoutHandler
	Bookings      *BookingHandler
	Notifications *NotificationHandler
	Advice        *AdviceHandler
	Profile       *ProfileHandler
}

// NewRouter mounts every handler under /api.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	h.Offers.Register(api.Group("/offers"))
	h.Checkout.Register(api.Group("/checkout"))
	h.Bookings.Register(api.Group("/bookings"))
	h.Notifications.Register(api.Group("/notifications"))
	h.Advice.Register(api.Group("/advice"))
	h.Profile.Register(api)
	return router
}

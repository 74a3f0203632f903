package api

import (
	"net/http"

	"github.com/Domenick1991/spacify/internal/catalog"
	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/checkout"
	"github.com/Domenick1991/spacify/internal/service/offers"
	"github.com/gin-gonic/gin"
)

type Quoter interface {
	Quote(offer domain.Offer) checkout.Quote
}

type OfferHandler struct {
	service offers.OfferUseCase
	quoter  Quoter
}

func NewOfferHandler(service offers.OfferUseCase, quoter Quoter) *OfferHandler {
	return &OfferHandler{service: service, quoter: quoter}
}

func (h *OfferHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/quote", h.quote)
}

func (h *OfferHandler) list(c *gin.Context) {
	mode, err := catalog.ParseModeFilter(c.Query("mode"))
	if err != nil {
		handleError(c, err)
		return
	}
	result, err := h.service.Search(c.Request.Context(), c.Query("q"), mode)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OfferHandler) get(c *gin.Context) {
	offer, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) quote(c *gin.Context) {
	offer, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.quoter.Quote(*offer))
}

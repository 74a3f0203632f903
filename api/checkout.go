package api

import (
	"net/http"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/checkout"
	"github.com/Domenick1991/spacify/internal/service/offers"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	offers   offers.OfferUseCase
	workflow checkout.WorkflowUseCase
}

type startCheckoutRequest struct {
	OfferID string `json:"offer_id" binding:"required"`
}

type selectBankRequest struct {
	Bank string `json:"bank" binding:"required"`
}

type sessionResponse struct {
	*checkout.Session
	CanProceed bool     `json:"can_proceed"`
	Banks      []string `json:"banks,omitempty"`
}

func NewCheckoutHandler(offers offers.OfferUseCase, workflow checkout.WorkflowUseCase) *CheckoutHandler {
	return &CheckoutHandler{offers: offers, workflow: workflow}
}

func (h *CheckoutHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.start)
	router.GET("/", h.get)
	router.DELETE("/", h.cancel)
	router.POST("/confirm", h.confirm)
	router.PUT("/details", h.details)
	router.POST("/proceed", h.proceed)
	router.PUT("/bank", h.bank)
	router.POST("/pay", h.pay)
}

func (h *CheckoutHandler) start(c *gin.Context) {
	var req startCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offer, err := h.offers.GetByID(c.Request.Context(), req.OfferID)
	if err != nil {
		handleError(c, err)
		return
	}
	if err := h.workflow.Start(*offer); err != nil {
		handleError(c, err)
		return
	}
	h.respond(c, http.StatusCreated)
}

func (h *CheckoutHandler) get(c *gin.Context) {
	h.respond(c, http.StatusOK)
}

func (h *CheckoutHandler) confirm(c *gin.Context) {
	h.step(c, h.workflow.Confirm())
}

func (h *CheckoutHandler) details(c *gin.Context) {
	var req domain.ConsignorDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.step(c, h.workflow.UpdateDetails(req))
}

func (h *CheckoutHandler) proceed(c *gin.Context) {
	h.step(c, h.workflow.ProceedToPayment())
}

func (h *CheckoutHandler) bank(c *gin.Context) {
	var req selectBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.step(c, h.workflow.SelectBank(req.Bank))
}

func (h *CheckoutHandler) pay(c *gin.Context) {
	if err := h.workflow.Pay(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	h.respond(c, http.StatusAccepted)
}

func (h *CheckoutHandler) cancel(c *gin.Context) {
	if err := h.workflow.Cancel(); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) step(c *gin.Context, err error) {
	if err != nil {
		handleError(c, err)
		return
	}
	h.respond(c, http.StatusOK)
}

func (h *CheckoutHandler) respond(c *gin.Context, status int) {
	session, err := h.workflow.Session()
	if err != nil {
		handleError(c, err)
		return
	}
	resp := sessionResponse{Session: session, CanProceed: h.workflow.CanProceed()}
	if session.Step == checkout.StepPay {
		resp.Banks = checkout.Banks
	}
	c.JSON(status, resp)
}

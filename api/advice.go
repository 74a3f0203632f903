package api

import (
	"net/http"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/advice"
	"github.com/gin-gonic/gin"
)

type LanguageSource interface {
	Language() domain.Language
}

type AdviceHandler struct {
	bridge advice.AdviceUseCase
	lang   LanguageSource
}

type adviceRequest struct {
	Query string          `json:"query" binding:"required"`
	Lang  domain.Language `json:"lang"`
}

func NewAdviceHandler(bridge advice.AdviceUseCase, lang LanguageSource) *AdviceHandler {
	return &AdviceHandler{bridge: bridge, lang: lang}
}

func (h *AdviceHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.ask)
}

func (h *AdviceHandler) ask(c *gin.Context) {
	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lang := req.Lang
	if lang == "" && h.lang != nil {
		lang = h.lang.Language()
	}
	answer := h.bridge.GetAdvice(c.Request.Context(), advice.ComposePrompt(req.Query, lang))
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/preferences"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	store preferences.PreferencesUseCase
}

type loginRequest struct {
	Email string          `json:"email" binding:"required"`
	Role  domain.UserRole `json:"role"`
}

type themeRequest struct {
	Theme domain.Theme `json:"theme" binding:"required"`
}

type languageRequest struct {
	Language domain.Language `json:"language" binding:"required"`
}

type profileResponse struct {
	User     *domain.UserProfile `json:"user"`
	Theme    domain.Theme        `json:"theme"`
	Language domain.Language     `json:"language"`
	ShowTour bool                `json:"show_tour"`
}

func NewProfileHandler(store preferences.PreferencesUseCase) *ProfileHandler {
	return &ProfileHandler{store: store}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	router.GET("/profile", h.get)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
	router.PUT("/profile/theme", h.theme)
	router.PUT("/profile/language", h.language)
	router.POST("/profile/tour", h.tour)
}

func (h *ProfileHandler) get(c *gin.Context) {
	user, err := h.store.Profile()
	if err != nil && !errors.Is(err, domain.ErrNotLoggedIn) {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profileResponse{
		User:     user,
		Theme:    h.store.Theme(),
		Language: h.store.Language(),
		ShowTour: h.store.ShouldShowTour(),
	})
}

func (h *ProfileHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleTrader
	}
	user, err := h.store.Login(c.Request.Context(), req.Email, req.Role)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) theme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.SetTheme(c.Request.Context(), req.Theme); err != nil {
		handleError(c, err)
		return
	}
	h.get(c)
}

func (h *ProfileHandler) language(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.SetLanguage(c.Request.Context(), req.Language); err != nil {
		handleError(c, err)
		return
	}
	h.get(c)
}

func (h *ProfileHandler) tour(c *gin.Context) {
	if err := h.store.CompleteTour(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	h.get(c)
}

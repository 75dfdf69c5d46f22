package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vistastore/storefront/internal/dto"
	"github.com/vistastore/storefront/internal/repository"
)

type PrefsHandler struct {
	prefsRepo repository.PrefsRepository
}

func NewPrefsHandler(prefsRepo repository.PrefsRepository) *PrefsHandler {
	return &PrefsHandler{prefsRepo: prefsRepo}
}

func (h *PrefsHandler) GetTheme(c *gin.Context) {
	theme := h.prefsRepo.Theme(c.Request.Context())
	if theme == "" {
		theme = "light"
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *PrefsHandler) SetTheme(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.prefsRepo.SetTheme(c.Request.Context(), req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vistastore/storefront/internal/catalog"
	"github.com/vistastore/storefront/internal/storage"
)

type HealthHandler struct {
	store  storage.Store
	source catalog.Source
}

func NewHealthHandler(store storage.Store, source catalog.Source) *HealthHandler {
	return &HealthHandler{store: store, source: source}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.store.Set(ctx, "healthz_probe", time.Now().Unix()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "storage": "unavailable"})
		return
	}
	if _, err := h.source.Products(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "catalog": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": "connected",
		"catalog": "reachable",
	})
}

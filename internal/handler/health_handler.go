package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emojisense/emojisense-backend/pkg/cache"
)

// HealthHandler reports process liveness and degraded collaborators
type HealthHandler struct {
	cache       cache.Service
	quotaStore  bool
	modelConfig bool
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cacheService cache.Service, quotaStoreUp, modelConfigured bool) *HealthHandler {
	return &HealthHandler{cache: cacheService, quotaStore: quotaStoreUp, modelConfig: modelConfigured}
}

// Check returns service health
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"dependencies": gin.H{
			"cache":       h.cache.IsAvailable(),
			"quota_store": h.quotaStore,
			"model":       h.modelConfig,
		},
	})
}

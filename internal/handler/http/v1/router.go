package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Mutating and administrative
// endpoints sit behind the API-key middleware; read endpoints used by the
// mobile client are public.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	location := api.Group("/location")
	{
		location.POST("/check", h.checkLocation)
		location.GET("/classify", h.classifyLocation)
	}

	zones := api.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.GET("/:id/score", h.getZoneScore)
	}

	api.GET("/alerts", h.listAlerts)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.POST("/alerts", h.createAlert)
		protected.POST("/zones/recompute", h.recomputeScores)
		protected.GET("/stats", h.getStats)
	}

	api.GET("/system/health", h.healthCheck)
}

package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, s *Server) {
	// CORS for browser-based range displays
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/metrics", gin.WrapH(s.metricsHandler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", HealthCheck)

		shots := v1.Group("/shots")
		{
			shots.POST("", s.SimulateShot)
			shots.POST("/batch", s.SimulateBatch)
			shots.GET("/ws", s.HandleShotWebSocket)
		}

		v1.GET("/surfaces", ListSurfaces)
		v1.GET("/presets", ListPresets)
		v1.GET("/presets/:name", s.SimulatePreset)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/emojisense/emojisense-backend/internal/handler"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	emojiHandler *handler.EmojiHandler,
	comboHandler *handler.ComboHandler,
	interpretHandler *handler.InterpretHandler,
	healthHandler *handler.HealthHandler,
	interpretLimiter gin.HandlerFunc,
) {
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Emoji corpus (public, read-only)
	emojis := api.Group("/emojis")
	emojis.GET("", emojiHandler.List)
	emojis.GET("/categories", emojiHandler.Categories)
	emojis.GET("/:slug", emojiHandler.Get)
	emojis.GET("/:slug/related", emojiHandler.Related)

	// Combo corpus (public, read-only)
	combos := api.Group("/combos")
	combos.GET("", comboHandler.List)
	combos.GET("/categories", comboHandler.Categories)
	combos.GET("/:slug", comboHandler.Get)
	combos.GET("/:slug/related", comboHandler.Related)

	// Interpretation (quota tracked per client)
	interpret := api.Group("/interpret")
	if interpretLimiter != nil {
		interpret.Use(interpretLimiter)
	}
	interpret.POST("", interpretHandler.Interpret)
	interpret.GET("/quota", interpretHandler.Quota)
}

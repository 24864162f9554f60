package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reviewlens/review-sentiment-api/internal/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup configures the review API routes.
// writeLimiter guards state-changing routes and may be nil.
func Setup(router *gin.Engine, reviewHandler *handler.ReviewHandler, writeLimiter gin.HandlerFunc) {
	write := []gin.HandlerFunc{}
	if writeLimiter != nil {
		write = append(write, writeLimiter)
	}

	reviews := router.Group("/reviews")
	// both "/reviews" and "/reviews/" are served without a redirect
	for _, root := range []string{"", "/"} {
		reviews.POST(root, append(write, reviewHandler.CreateReview)...)
		reviews.GET(root, reviewHandler.ListReviews)
	}
	reviews.GET("/report", reviewHandler.GetReport)
	reviews.GET("/:id", reviewHandler.GetReview)
	reviews.POST("/:id/analysis", append(write, reviewHandler.AnalyzeReview)...)
}

// SetupSystem registers health, metrics and API docs routes
func SetupSystem(router *gin.Engine, healthHandler *handler.HealthHandler) {
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

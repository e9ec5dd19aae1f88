package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fahadriazkiani/Reportsay/internal/middleware"
	"github.com/fahadriazkiani/Reportsay/internal/pricing"
	"github.com/fahadriazkiani/Reportsay/internal/report"
)

// New wires the API routes. The frontend is a separate app, so CORS
// allows the usual local dev origins.
func New(reportHandler *report.Handler, priceHandler *pricing.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	reports := r.Group("/reports")
	reports.Use(middleware.BodyLimit(report.MaxUploadBytes + 1<<20))
	{
		reports.POST("/analyze", reportHandler.Analyze)
		reports.GET("/:id/pdf", reportHandler.ExportPDF)
	}

	prices := r.Group("/prices")
	{
		prices.GET("/tests", priceHandler.ListTests)
		prices.GET("/compare", priceHandler.Compare)
		prices.POST("/refresh", priceHandler.Refresh)
	}

	return r
}

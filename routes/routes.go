package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/analytics"
	"reviewlens/auth"
	"reviewlens/handlers"
	"reviewlens/playstore"
	"reviewlens/summarization"
)

// SetupRouter wires the three dashboard flows behind the session gate.
func SetupRouter(
	authSvc *auth.Service,
	client *playstore.Client,
	analyzer *analytics.Analyzer,
	summarizer *summarization.Summarizer,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to ReviewLens!",
		})
	})

	r.POST("/api/login", func(c *gin.Context) {
		handlers.Login(c, authSvc)
	})

	// Everything below the gate needs a live session token.
	api := r.Group("/api", sessionRequired(authSvc))
	{
		api.POST("/logout", func(c *gin.Context) {
			handlers.Logout(c, authSvc)
		})

		api.GET("/apps/:id", func(c *gin.Context) {
			handlers.AppDetails(c, client)
		})
		api.POST("/reviews/scrape", func(c *gin.Context) {
			handlers.ScrapeReviews(c, client)
		})

		api.POST("/reviews/label", handlers.LabelReviews)

		api.POST("/insights/analyze", func(c *gin.Context) {
			handlers.AnalyzeReviews(c, analyzer)
		})
		api.POST("/insights/export", func(c *gin.Context) {
			handlers.ExportSentiment(c, analyzer)
		})
		api.POST("/insights/summary", func(c *gin.Context) {
			handlers.SummarizeNegative(c, analyzer, summarizer)
		})
	}

	return r
}

func sessionRequired(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authSvc.Valid(c.GetHeader("Authorization")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/carlos-tribe/holly-assistant-hicv/handlers"
	"github.com/carlos-tribe/holly-assistant-hicv/middleware"
	"github.com/carlos-tribe/holly-assistant-hicv/utils"
)

// RegisterAssistantRoutes registers the conversational session endpoints.
func RegisterAssistantRoutes(r *gin.Engine, h *handlers.AssistantHandler) {
	api := r.Group("/api/assistant")
	{
		api.GET("/session/:sessionID", h.GetSession)
		api.POST("/session/:sessionID/utterance", h.HandleUtterance)
		api.POST("/session/:sessionID/destination-choice", h.ChooseDestinationPath)
		api.POST("/session/:sessionID/property-answer", h.AnswerPropertyQuestion)
		api.POST("/session/:sessionID/date-ranges", h.GenerateDateRanges)
		api.POST("/session/:sessionID/select-range", h.SelectDateRange)
		api.POST("/session/:sessionID/reset", h.ResetSession)
	}
}

// RegisterCatalogRoutes registers the reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/destinations", handlers.ListDestinations)
		api.GET("/destinations/search", handlers.SearchDestinations)
		api.GET("/destinations/:id", handlers.GetDestination)
		api.GET("/destinations/:id/availability", handlers.GetAvailability)
		api.GET("/destinations/:id/flexible-dates", handlers.GetFlexibleDates)
		api.GET("/months", handlers.GetAvailableMonths)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Holly"})
	})
}

// SetupRouter builds the engine with CORS, rate limiting and all routes.
func SetupRouter(h *handlers.AssistantHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAssistantRoutes(r, h)
	RegisterCatalogRoutes(r)
	return r
}

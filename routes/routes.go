package routes

import (
	"net/http"
	"time"

	"github.com/ao561/cues-hackathon/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every HTTP handler the server mounts.
type HandlerBundle struct {
	Plan    *handlers.PlanHandler
	Chat    *handlers.ChatHandler
	Profile *handlers.ProfileHandler
}

// RegisterPlanRoutes registers the planning endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/plan")
	{
		api.POST("", hb.Plan.CreatePlan)
		api.GET("/:planID", hb.Plan.GetPlan)
	}
}

// RegisterChatRoutes registers the group transcript endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/messages", hb.Chat.PostMessage)
		api.GET("/messages", hb.Chat.GetHistory)
	}
}

// RegisterProfileRoutes registers the participant profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.GET("/:participantID", hb.Profile.GetProfile)
		api.PUT("", hb.Profile.UpsertProfile)
		api.DELETE("/:participantID", hb.Profile.DeleteProfile)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Cues"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlanRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
}

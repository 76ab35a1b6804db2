package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ao561/cues-hackathon/config"
	"github.com/ao561/cues-hackathon/database"
	profileRepo "github.com/ao561/cues-hackathon/database/repository/profile"
	"github.com/ao561/cues-hackathon/handlers"
	"github.com/ao561/cues-hackathon/middleware"
	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/routes"
	"github.com/ao561/cues-hackathon/services/chat"
	"github.com/ao561/cues-hackathon/services/gateway"
	"github.com/ao561/cues-hackathon/services/intelligence"
	"github.com/ao561/cues-hackathon/services/planner"
	"github.com/ao561/cues-hackathon/services/providers"
	"github.com/ao561/cues-hackathon/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitPlanCache()
	utils.InitChatCache()

	ctx := context.Background()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := profileRepo.NewMongoProfileRepo()

	// external providers.
	calendarProvider, err := providers.NewGoogleCalendarProvider(ctx, config.AppConfig.ServiceAccountFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar provider: %v", err)
	}
	locationProvider := &providers.GoogleLocationProvider{APIKey: config.AppConfig.GoogleAPIKey}
	weatherProvider := &providers.OpenWeatherProvider{APIKey: config.AppConfig.OpenWeatherAPIKey}
	profileProvider := &providers.StoredProfileProvider{Repo: profRepo}
	venueProvider := &providers.GooglePlacesProvider{APIKey: config.AppConfig.GoogleAPIKey}
	routingProvider := &providers.GoogleDirectionsProvider{APIKey: config.AppConfig.GoogleAPIKey}

	chatStore := chat.NewStore(utils.GetChatCacheClient())
	sentimentProvider, err := providers.NewGeminiSentimentProvider(ctx, config.AppConfig.GeminiAPIKey, chatStore)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sentiment provider: %v", err)
	}

	// one gateway per context role.
	timeout := config.ProviderTimeout()
	orchestrator := planner.NewOrchestrator(
		gateway.New(&gateway.AvailabilityFetcher{Calendar: calendarProvider}, timeout),
		gateway.New(&gateway.LocationFetcher{Location: locationProvider}, timeout),
		gateway.New(&gateway.ProfileFetcher{Profiles: profileProvider}, timeout),
		gateway.New(&gateway.SentimentFetcher{Sentiment: sentimentProvider}, timeout),
		gateway.New(&gateway.WeatherFetcher{
			Weather: weatherProvider,
			Anchor:  models.GeoPoint{Lat: config.AppConfig.AnchorLat, Lng: config.AppConfig.AnchorLng},
		}, timeout),
	)

	var phraser planner.Phraser
	if config.AppConfig.GeminiAPIKey != "" {
		rationaleSvc, err := intelligence.NewRationaleService(ctx, config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: rationale phrasing disabled: %v", err)
		} else {
			phraser = rationaleSvc
		}
	}

	planningService := planner.NewPlanningService(
		orchestrator,
		venueProvider,
		routingProvider,
		phraser,
		utils.GetPlanCacheClient(),
		config.PlanDeadline(),
	)

	handlerBundle := &routes.HandlerBundle{
		Plan:    handlers.NewPlanHandler(planningService),
		Chat:    handlers.NewChatHandler(chatStore),
		Profile: handlers.NewProfileHandler(profRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

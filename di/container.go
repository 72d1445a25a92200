package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"booking-server/api"
	"booking-server/api/catalog"
	"booking-server/config"
	"booking-server/dao/redis"
	"booking-server/db"
	"booking-server/server"
	"booking-server/server/handlers"
	services "booking-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                  config.Config
	RedisClient             db.RedisClient
	RedisVenueDao           *redis.RedisVenueDAO
	CatalogAPI              catalog.CatalogAPI
	VenueService            *services.VenueService
	ReviewService           *services.ReviewService
	CatalogRefresherService *services.CatalogRefresherService
	VenueHandler            *handlers.VenueHandler
	ReviewHandler           *handlers.ReviewHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	BookingHttpServer       *server.BookingHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	// Real Redis in prod, in-memory store otherwise
	var redisClient db.RedisClient
	if cfg.Env == config.ENV_PROD {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		log.Printf("Using redis at %s", cfg.RedisAddr)
	} else {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis")
	}
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	// Catalog source: remote feed when configured, seed file otherwise
	var catalogAPI catalog.CatalogAPI
	if cfg.CatalogSourceURL != "" {
		log.Printf("Using catalog feed at %s", cfg.CatalogSourceURL)
		catalogAPI = catalog.NewCatalogApiClient(api.NewHTTPClient(cfg.CatalogSourceURL))
	} else {
		log.Printf("Using catalog file %s", cfg.CatalogResource)
		catalogAPI = catalog.NewCatalogApiClientMock(cfg.CatalogResource)
	}

	venueService := services.NewVenueService(redisVenueDao)
	reviewService := services.NewReviewService(redisVenueDao, venueService)
	catalogRefresherService := services.NewCatalogRefresherService(redisVenueDao, catalogAPI, venueService)

	venueHandler := handlers.NewVenueHandler(venueService)
	reviewHandler := handlers.NewReviewHandler(reviewService, venueService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, reviewHandler, muxRouter)
	bookingHttpServer := server.NewBookingHttpServer(router, muxRouter, cfg)

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisVenueDao:           redisVenueDao,
		CatalogAPI:              catalogAPI,
		VenueService:            venueService,
		ReviewService:           reviewService,
		CatalogRefresherService: catalogRefresherService,
		VenueHandler:            venueHandler,
		ReviewHandler:           reviewHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		BookingHttpServer:       bookingHttpServer,
	}, nil
}

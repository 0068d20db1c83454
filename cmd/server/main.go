package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"airbook/cfg"
	"airbook/internal/amadeus"
	"airbook/internal/booking"
	"airbook/internal/flight"
	"airbook/internal/session"
	"airbook/internal/web"
	"airbook/pkg/cache"
	"airbook/pkg/idgen"
	"airbook/pkg/logger"
)

func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// cache
	// ============
	var store cache.Cache
	if config.CacheBackend == "redis" {
		store = cache.NewRedisCache(config.RedisConfig.Addr, config.RedisConfig.Password)
	} else {
		store = cache.NewMemoryCache()
	}

	// ============
	// external service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.HTTPTimeoutSeconds) * time.Second,
	}
	amadeusClient := amadeus.NewClient(
		httpClient,
		config.AmadeusConfig.BaseURL,
		config.AmadeusConfig.ClientID,
		config.AmadeusConfig.ClientSecret,
		zlogger,
	)

	// ============
	// internal services
	// ============
	resolver := flight.NewResolver(amadeusClient, store, zlogger)
	searchSvc := flight.NewService(amadeusClient, resolver, store, config.SearchCacheTTLMinutes, zlogger)

	refGen, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		log.Fatalf("Failed to create id generator: %v", err)
	}
	bookingSvc := booking.NewService(refGen, zlogger)

	sessionStore := session.NewInMemoryStore()
	defer sessionStore.Close()
	sessions := session.NewManager(sessionStore, config.SessionTTLMinutes, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	web.LoadTemplates(r)

	handler := web.NewHandler(searchSvc, bookingSvc, zlogger)
	handler.RegisterRoutes(r, sessions)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

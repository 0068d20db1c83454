package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Addr     string
	Password string
}

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type Config struct {
	AppEnv                string
	AppPort               string
	AmadeusConfig         AmadeusConfig
	CacheBackend          string // "memory" or "redis"
	RedisConfig           RedisConfig
	HTTPTimeoutSeconds    int
	SearchCacheTTLMinutes int
	SessionTTLMinutes     int
	NodeID                int64
}

func Load() (*Config, error) {
	var errs []error

	// .env is optional outside local development
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	amadeusBaseURL := mustEnv("AMADEUS_BASE_URL", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)

	cacheBackend := envOrDefault("CACHE_BACKEND", "memory")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	if cacheBackend == "redis" && redisAddr == "" {
		errs = append(errs, errors.New("missing env: REDIS_ADDR (required when CACHE_BACKEND=redis)"))
	}

	httpTimeoutSeconds := intEnv("HTTP_TIMEOUT_SECONDS", 10, &errs)
	searchCacheTTLMinutes := intEnv("SEARCH_CACHE_TTL_MINUTES", 10, &errs)
	sessionTTLMinutes := intEnv("SESSION_TTL_MINUTES", 60, &errs)
	nodeID := intEnv("NODE_ID", 1, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		AmadeusConfig: AmadeusConfig{
			BaseURL:      amadeusBaseURL,
			ClientID:     amadeusClientID,
			ClientSecret: amadeusClientSecret,
		},
		CacheBackend: cacheBackend,
		RedisConfig: RedisConfig{
			Addr:     redisAddr,
			Password: redisPassword,
		},
		HTTPTimeoutSeconds:    httpTimeoutSeconds,
		SearchCacheTTLMinutes: searchCacheTTLMinutes,
		SessionTTLMinutes:     sessionTTLMinutes,
		NodeID:                int64(nodeID),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return parsed
}

package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// HTTP server defaults
const HTTP_ADDRESS = ":8080"
const HTTP_READ_TIMEOUT = 5 * time.Second
const HTTP_WRITE_TIMEOUT = 10 * time.Second
const HTTP_IDLE_TIMEOUT = time.Minute
const HTTP_SHUTDOWN_TIMEOUT = 5 * time.Second

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog refresher config
const VENUES_CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_CATALOG_RESOURCE = "venues.json"
const SEED_REVIEWS_RESOURCE = "reviews.json"

// Config is the runtime configuration. Load fills it from the environment,
// falling back to the constants above.
type Config struct {
	Env              string
	HTTPAddr         string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	CatalogSourceURL string // remote catalog feed; empty uses CatalogResource
	CatalogResource  string
	ReviewsResource  string // empty disables review seeding
	RefreshInterval  time.Duration
	AllowedOrigins   []string
}

// Load reads an optional .env file and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}

	return Config{
		Env:              stringEnv("APP_ENV", ENV_DEV),
		HTTPAddr:         stringEnv("HTTP_ADDR", HTTP_ADDRESS),
		RedisAddr:        stringEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:    stringEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:          intEnv("REDIS_DB", REDIS_DB),
		CatalogSourceURL: os.Getenv("CATALOG_SOURCE_URL"),
		CatalogResource:  stringEnv("CATALOG_RESOURCE", GetResourcePath(VENUES_CATALOG_RESOURCE)),
		ReviewsResource:  stringEnv("REVIEWS_RESOURCE", GetResourcePath(SEED_REVIEWS_RESOURCE)),
		RefreshInterval:  minutesEnv("CATALOG_REFRESH_MINUTES", VENUES_CATALOG_REFRESHER_SCHEDULE_MINUTES),
		AllowedOrigins:   listEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func stringEnv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func intEnv(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[Config] Ignoring invalid %s=%q", k, v)
	}
	return def
}

func minutesEnv(k string, def int) time.Duration {
	return time.Duration(intEnv(k, def)) * time.Minute
}

func listEnv(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Store  Store
	Speech Speech
	Video  Video
	Media  Media
	App    App
}

type Server struct {
	Port string
}

// Store selects the project store backend. "memory" is the default and keeps
// records in volatile process memory; "redis" swaps in the redis-backed store.
type Store struct {
	Backend   string
	RedisAddr string
}

type Speech struct {
	BaseURL string
	APIKey  string
}

type Video struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// Media holds where generated preview audio is written and the URL prefix it
// is served under.
type Media struct {
	Dir     string
	BaseURL string
}

type App struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Store: Store{
			Backend:   getEnv("STORE_BACKEND", "memory"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Speech: Speech{
			BaseURL: getEnv("SPEECH_API_URL", "https://api.elevenlabs.io"),
			APIKey:  getEnv("SPEECH_API_KEY", ""),
		},
		Video: Video{
			BaseURL:        getEnv("VIDEO_API_URL", "https://modelslab.com/api/v6"),
			APIKey:         getEnv("VIDEO_API_KEY", ""),
			TimeoutSeconds: getEnvAsInt("VIDEO_TIMEOUT_SECONDS", 60),
		},
		Media: Media{
			Dir:     getEnv("MEDIA_DIR", "media"),
			BaseURL: getEnv("MEDIA_BASE_URL", "/media"),
		},
		App: App{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Store.Backend != "memory" && c.Store.Backend != "redis" {
		return fmt.Errorf("STORE_BACKEND must be \"memory\" or \"redis\", got %q", c.Store.Backend)
	}

	if c.Store.Backend == "redis" && c.Store.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when STORE_BACKEND=redis")
	}

	if c.Video.TimeoutSeconds <= 0 {
		return fmt.Errorf("VIDEO_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Grammar  GrammarConfig
	Ai       AIConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	RenderTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type GrammarConfig struct {
	BaseURL  string
	Language string
	Timeout  time.Duration
}

type AIConfig struct {
	GeminiAPIKey    string
	GeminiModel     string
	SummaryTimeout  time.Duration
	SummaryCacheTTL time.Duration
}

type AuthConfig struct {
	JwtSecret   string
	TokenExpiry time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			RenderTopic:        getEnv("NOTE_CONTENT_CHANGED_TOPIC_NAME", "NOTE_CONTENT_CHANGED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Grammar: GrammarConfig{
			BaseURL:  getEnv("LANGUAGETOOL_BASE_URL", "https://api.languagetool.org/v2/check"),
			Language: getEnv("LANGUAGETOOL_LANGUAGE", "en-US"),
			Timeout:  getEnvAsDuration("LANGUAGETOOL_TIMEOUT", 15*time.Second),
		},
		Ai: AIConfig{
			GeminiAPIKey:    getEnv("GOOGLE_GEMINI_API_KEY", ""),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			SummaryTimeout:  getEnvAsDuration("SUMMARY_TIMEOUT", 30*time.Second),
			SummaryCacheTTL: getEnvAsDuration("SUMMARY_CACHE_TTL", time.Hour),
		},
		Auth: AuthConfig{
			JwtSecret:   getEnv("JWT_SECRET", ""),
			TokenExpiry: getEnvAsDuration("JWT_TOKEN_EXPIRY", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

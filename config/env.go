package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"tipovacka/scoring"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseSchema   string

	// Server
	Port           string
	LogLevel       string
	AllowedOrigins []string

	// Authentication
	JWTSecret string

	// Redis roster cache - optional
	RedisAddr     string
	RedisPassword string
	RosterTTL     time.Duration

	// Kafka points events - optional
	KafkaBroker string
	KafkaTopic  string

	// Aggregate drift check
	DriftCheckInterval time.Duration
	DriftAutoRepair    bool

	// Scoring
	Rules scoring.Rules
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	defaults := scoring.DefaultRules()
	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseSchema:   getEnvWithDefault("DATABASE_SCHEMA", "tipovacka"),

		Port:           getEnvWithDefault("PORT", "8000"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		AllowedOrigins: strings.Split(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost,http://localhost:3000"), ","),

		// JWT - required
		JWTSecret: getEnv("JWT_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RosterTTL:     getEnvAsDuration("ROSTER_CACHE_TTL", 5*time.Minute),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnvWithDefault("KAFKA_TOPIC", "tipovacka-points"),

		DriftCheckInterval: getEnvAsDuration("DRIFT_CHECK_INTERVAL", 15*time.Minute),
		DriftAutoRepair:    getEnvWithDefault("DRIFT_AUTO_REPAIR", "false") == "true",

		Rules: scoring.Rules{
			ExactScore:    getEnvAsInt("POINTS_EXACT_SCORE", defaults.ExactScore),
			WinnerAndDiff: getEnvAsInt("POINTS_WINNER_AND_DIFF", defaults.WinnerAndDiff),
			WinnerOnly:    getEnvAsInt("POINTS_WINNER_ONLY", defaults.WinnerOnly),
			OneTeamGoals:  getEnvAsInt("POINTS_ONE_TEAM_GOALS", defaults.OneTeamGoals),
			BaseCap:       getEnvAsInt("POINTS_BASE_CAP", defaults.BaseCap),
			ScorerBonus:   getEnvAsInt("POINTS_SCORER_BONUS", defaults.ScorerBonus),
			TotalCap:      getEnvAsInt("POINTS_TOTAL_CAP", defaults.TotalCap),
			Placement:     getEnvAsInt("POINTS_PLACEMENT", defaults.Placement),
		},
	}
	if config.JWTSecret == "" {
		config.JWTSecret = "dummyjwt"
	}

	appConfig = config
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}

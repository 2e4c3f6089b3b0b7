package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL   string
	LLMModelName string
	LLMAPIKey    string
	LLMTimeout   time.Duration
	SystemPrompt string
	DBPath       string
	APIPort      string
	LogLevel     slog.Level
	LogFormat    string
}

// DefaultSystemPrompt is sent as the system message on every relay request.
const DefaultSystemPrompt = "You are SoftSell's helpful assistant. Answer questions about our software resale services clearly and concisely. Use <br/> tags for line breaks if applicable."

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
//
// OPENROUTER_API_KEY is required: a missing upstream credential is a
// deployment error, so Load rejects it at startup instead of leaving it
// to surface on the first chat request.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:   getEnv("LLM_BASE_URL", "https://openrouter.ai/api"),
		LLMModelName: getEnv("LLM_MODEL", "mistralai/mistral-7b-instruct"),
		LLMAPIKey:    getEnv("OPENROUTER_API_KEY", ""),
		SystemPrompt: getEnv("SYSTEM_PROMPT", DefaultSystemPrompt),
		DBPath:       getEnv("DB_PATH", "./data/softsell.db"),
		APIPort:      getEnv("API_PORT", "8080"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
	}

	// Validate required fields
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is required")
	}

	// Parse LLM_TIMEOUT_SECONDS
	// Bounds the relay -> upstream provider call; an unbounded upstream hang
	// would otherwise pin the relay's handling of that request indefinitely.
	timeoutStr := getEnv("LLM_TIMEOUT_SECONDS", "30")
	timeoutSecs, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("LLM_TIMEOUT_SECONDS must be a valid integer: %w", err)
	}
	if timeoutSecs <= 0 {
		return nil, fmt.Errorf("LLM_TIMEOUT_SECONDS must be greater than 0")
	}
	cfg.LLMTimeout = time.Duration(timeoutSecs) * time.Second

	// Parse LOG_LEVEL
	levelStr := getEnv("LOG_LEVEL", "info")
	switch levelStr {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", levelStr)
	}

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Analyzer AnalyzerConfig
	Ollama   OllamaConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Progress ProgressConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AnalyzerConfig struct {
	// BaseURL is where analysis requests are posted. Empty means the
	// service's own address.
	BaseURL        string
	DefaultModel   string
	MaxPromptChars int
	RequestTimeout time.Duration
}

type OllamaConfig struct {
	URL     string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ProgressConfig struct {
	TickInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Analyzer: AnalyzerConfig{
			BaseURL:        getEnv("ANALYZER_BASE_URL", ""),
			DefaultModel:   getEnv("DEFAULT_MODEL", "llama3:8b"),
			MaxPromptChars: getEnvAsInt("MAX_PROMPT_CHARS", 8000),
			RequestTimeout: getEnvAsDuration("ANALYZER_REQUEST_TIMEOUT", "180s"),
		},
		Ollama: OllamaConfig{
			URL:     getEnv("OLLAMA_URL", "http://localhost:11434"),
			Timeout: getEnvAsDuration("OLLAMA_TIMEOUT", "150s"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./temp_uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 16777216),
		},
		Progress: ProgressConfig{
			TickInterval: getEnvAsDuration("PROGRESS_TICK_INTERVAL", "30ms"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

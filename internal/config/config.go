// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"aitrip/pkg/utils"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	DatabaseURL string
	CORSOrigins []string

	JWTSecret    string
	JWTExpiresIn time.Duration

	DefaultTripBudget float64

	LLM utils.GeneratorConfig
}

// LoadDotEnv reads .env when present. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load reads the full server configuration and reports every missing required variable.
func Load() (Config, error) {
	llm, err := LoadLLM()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:        getEnv("PORT", "3001"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		LLM:         llm,
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.JWTExpiresIn, err = parseDuration("JWT_EXPIRES_IN", "168h"); err != nil {
		return Config{}, err
	}
	if cfg.DefaultTripBudget, err = parseFloat("DEFAULT_TRIP_BUDGET", "5000"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DatabaseURL reads DATABASE_URL alone, for commands that only touch the schema.
func DatabaseURL() (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "", fmt.Errorf("required environment variables not set: DATABASE_URL")
	}
	return dsn, nil
}

// LoadLLM reads only the generative client settings, for commands that need no database.
func LoadLLM() (utils.GeneratorConfig, error) {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", utils.ProviderDashScope))

	cfg := utils.GeneratorConfig{
		Provider: provider,
		APIKey:   os.Getenv("LLM_API_KEY"),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}

	switch provider {
	case utils.ProviderDashScope:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("DASHSCOPE_API_KEY")
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = utils.DefaultDashScopeBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = utils.DefaultDashScopeModel
		}
	case utils.ProviderOpenAI:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.Model == "" {
			cfg.Model = "gpt-4o-mini"
		}
	case utils.ProviderGemini:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.Model == "" {
			cfg.Model = utils.DefaultGeminiModel
		}
	default:
		return utils.GeneratorConfig{}, fmt.Errorf("unsupported LLM_PROVIDER %q: use dashscope, openai or gemini", provider)
	}

	temperature, err := parseFloat("LLM_TEMPERATURE", "0.7")
	if err != nil {
		return utils.GeneratorConfig{}, err
	}
	cfg.Temperature = float32(temperature)

	if cfg.MaxTokens, err = parseInt("LLM_MAX_TOKENS", "2000"); err != nil {
		return utils.GeneratorConfig{}, err
	}
	if cfg.Timeout, err = parseDuration("LLM_TIMEOUT", "10s"); err != nil {
		return utils.GeneratorConfig{}, err
	}
	return cfg, nil
}

// getEnv returns the value of key, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration such as %s", key, fallback)
	}
	return d, nil
}

func parseFloat(key, fallback string) (float64, error) {
	v, err := strconv.ParseFloat(getEnv(key, fallback), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number", key)
	}
	return v, nil
}

func parseInt(key, fallback string) (int, error) {
	v, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return v, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

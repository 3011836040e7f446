package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	ChatModel       string
	ImageModel      string
	ImageSize       string
	TextProvider    string
	GeminiAPIKey    string
	GenModel        string
	MaxKeywords     int
	SummaryMaxWords int
	AllowedOrigins  []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string

	// Warnings collects fallbacks taken while loading, for the caller to log.
	Warnings []string
}

const (
	TextProviderOpenAI = "openai"
	TextProviderGemini = "gemini"
)

// LoadConfig loads the environment variables and return config.
// A missing provider credential is not fatal here: the AI routes report it per request.
func LoadConfig() *Config {

	_ = godotenv.Load()

	var warn warnings

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		ChatModel:       getEnv("CHAT_MODEL", "gpt-3.5-turbo"),
		ImageModel:      getEnv("IMAGE_MODEL", "dall-e-2"),
		ImageSize:       getEnv("IMAGE_SIZE", "512x512"),
		TextProvider:    strings.ToLower(getEnv("AI_TEXT_PROVIDER", TextProviderOpenAI)),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GenModel:        getEnv("GEN_MODEL", "gemini-1.5-flash"),
		MaxKeywords:     warn.getEnvInt("MAX_KEYWORDS", 8),
		SummaryMaxWords: warn.getEnvInt("SUMMARY_MAX_WORDS", 120),
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RequestTimeout:  warn.getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),
		ShutdownTimeout: warn.getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}

	if cfg.TextProvider != TextProviderOpenAI && cfg.TextProvider != TextProviderGemini {
		warn.add("AI_TEXT_PROVIDER=%q unknown, using %s", cfg.TextProvider, TextProviderOpenAI)
		cfg.TextProvider = TextProviderOpenAI
	}
	if cfg.MaxKeywords <= 0 {
		warn.add("MAX_KEYWORDS=%d not positive, using default %d", cfg.MaxKeywords, 8)
		cfg.MaxKeywords = 8
	}
	if cfg.SummaryMaxWords <= 0 {
		warn.add("SUMMARY_MAX_WORDS=%d not positive, using default %d", cfg.SummaryMaxWords, 120)
		cfg.SummaryMaxWords = 120
	}

	cfg.Warnings = warn
	return cfg
}

type warnings []string

func (w *warnings) add(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

// Helper to read environment variables with a default fallback.
// A variable that is set but empty counts as unset.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func (w *warnings) getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		w.add("%s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func (w *warnings) getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		w.add("%s=%q not a duration, using default %s", key, v, def)
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := getEnv(key, "")
	if strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

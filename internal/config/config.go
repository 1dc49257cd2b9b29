package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration for both the server and the terminal client.
type Config struct {
	// Server
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Knowledge base
	KnowledgePDF string `env:"KNOWLEDGE_PDF" envDefault:"pop2016.pdf"` // web variant's single knowledge document

	// CORS: the one frontend origin allowed to call /chat
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"https://scaling-spork-pjrq7qvr6x9v2rgg5-5500.app.github.dev"`

	// LLM
	GoogleAPIKey string  `env:"GOOGLE_API_KEY" validate:"required"`
	LLMModel     string  `env:"LLM_MODEL" envDefault:"gemini-2.0-flash"`
	LLMBaseURL   string  `env:"LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	Temperature  float64 `env:"LLM_TEMPERATURE" envDefault:"0.2"`

	// Reply cache (optional; noop when REDIS_ADDR is empty)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL_SECONDS" envDefault:"3600"`

	// Transcript store (optional; noop when DB_URL is empty)
	DBURL string `env:"DB_URL"`

	// Speech
	RecordSeconds int `env:"RECORD_SECONDS" envDefault:"5"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

var validate = validator.New()

// Validate checks startup-fatal fields. A missing GOOGLE_API_KEY is the one
// configuration error the process refuses to start without.
func (c Config) Validate() error {
	return validate.Struct(c)
}

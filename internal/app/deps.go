package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"krishi-sakhi/internal/cache"
	"krishi-sakhi/internal/config"
	"krishi-sakhi/internal/knowledge"
	"krishi-sakhi/internal/llm"
	"krishi-sakhi/internal/logger"
	"krishi-sakhi/internal/speech"
	"krishi-sakhi/internal/store"
)

// Deps bundles common runtime dependencies for both drivers. The knowledge
// context itself is loaded by each driver (the server reads a configured
// file, the terminal collects paths interactively) using Loader.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	Loader *knowledge.Loader
	LLM    llm.Client
	Cache  cache.Cache
	Store  store.Store
}

// Build loads env, config, and shared components. A missing API key is the
// one fatal configuration error; cache and store degrade to noop providers.
func Build(logFormat string) (Deps, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return Deps{}, fmt.Errorf("GOOGLE_API_KEY not found; create a .env file and add your API key: %w", err)
	}

	llmClient, err := llm.NewGeminiClient(cfg.GoogleAPIKey, cfg.LLMBaseURL, openai.ChatModel(cfg.LLMModel), cfg.Temperature)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	log.Info("using Gemini LLM client", "model", cfg.LLMModel)

	return Deps{
		Config: cfg,
		Log:    log,
		Loader: knowledge.NewLoader(log),
		LLM:    llmClient,
		Cache:  buildCache(cfg, log),
		Store:  buildStore(cfg, log),
	}, nil
}

func buildCache(cfg config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewNoOpCache()
	}
	c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable; reply caching disabled", "err", err)
		return cache.NewNoOpCache()
	}
	log.Info("using Redis reply cache", "addr", cfg.RedisAddr)
	return c
}

func buildStore(cfg config.Config, log *slog.Logger) store.Store {
	if cfg.DBURL == "" {
		return store.NewNoOpStore()
	}
	s, err := store.NewPostgres(cfg.DBURL)
	if err != nil {
		log.Warn("postgres unavailable; transcripts disabled", "err", err)
		return store.NewNoOpStore()
	}
	log.Info("using Postgres transcript store")
	return s
}

// BuildSpeech wires the terminal client's speech stack.
func BuildSpeech(cfg config.Config) (speech.Capturer, speech.Recognizer, speech.Synthesizer, speech.Player) {
	return speech.NewMicCapturer(cfg.RecordSeconds),
		speech.NewGoogleRecognizer(cfg.GoogleAPIKey, ""),
		speech.NewTranslateTTS(""),
		speech.NewFilePlayer()
}

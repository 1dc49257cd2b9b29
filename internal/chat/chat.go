// Package chat runs the per-turn pipeline shared by the web and terminal
// drivers: cache lookup, prompt composition, generation, marker parsing,
// and transcript recording.
package chat

import (
	"context"
	"log/slog"
	"time"

	"krishi-sakhi/internal/cache"
	"krishi-sakhi/internal/knowledge"
	"krishi-sakhi/internal/langtag"
	"krishi-sakhi/internal/llm"
	"krishi-sakhi/internal/prompt"
	"krishi-sakhi/internal/store"
)

// apology is the fixed user-facing reply when the generation call fails.
// It carries its own marker so the normal parsing path applies.
const apology = "Sorry, I am having trouble connecting to my brain right now. Please try again later. [lang:en]"

// Response is one processed reply. Tagged reports whether the language came
// from an explicit marker rather than the English default; the terminal
// driver uses it to fall back to the input-detected language for speech.
type Response struct {
	Text   string
	Lang   langtag.Lang
	Tagged bool
	Cached bool
}

// Service answers queries against an immutable knowledge context.
type Service struct {
	log       *slog.Logger
	knowledge knowledge.Context
	llm       llm.Client
	cache     cache.Cache
	store     store.Store
	cacheTTL  time.Duration
}

func NewService(log *slog.Logger, kb knowledge.Context, client llm.Client, c cache.Cache, st store.Store, cacheTTL time.Duration) *Service {
	return &Service{
		log:       log,
		knowledge: kb,
		llm:       client,
		cache:     c,
		store:     st,
		cacheTTL:  cacheTTL,
	}
}

// Ask runs one turn. Cache and transcript failures are logged and absorbed;
// a generation failure becomes the fixed apology. The only error surface
// left to the caller is the Response itself.
func (s *Service) Ask(ctx context.Context, query string, source store.Source) Response {
	key := cache.Key(query)
	if cached, err := s.cache.GetReply(ctx, key); err == nil && cached != nil {
		s.log.Info("cache hit", "query", query)
		return Response{Text: cached.Text, Lang: langtag.Lang(cached.Lang), Tagged: true, Cached: true}
	} else if err != nil {
		s.log.Warn("cache lookup failed", "err", err)
	}

	raw, genErr := s.llm.Generate(ctx, prompt.System(), prompt.User(s.knowledge.Text, query))
	if genErr != nil {
		s.log.Error("generation failed", "err", genErr)
		raw = apology
	}

	text, lang, tagged := langtag.ParseReply(raw)

	if _, err := s.store.SaveTranscript(ctx, store.Transcript{
		Source:         source,
		Question:       query,
		Answer:         text,
		Lang:           string(lang),
		KnowledgeFiles: s.knowledge.Files,
	}); err != nil {
		s.log.Warn("failed to record transcript", "err", err)
	}

	// Apologies are transient; caching one would replay the outage.
	if genErr == nil {
		if err := s.cache.SetReply(ctx, key, &cache.Reply{Text: text, Lang: string(lang)}, s.cacheTTL); err != nil {
			s.log.Warn("failed to cache reply", "err", err)
		}
	}

	return Response{Text: text, Lang: lang, Tagged: tagged}
}

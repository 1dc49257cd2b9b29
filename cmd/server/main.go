package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"krishi-sakhi/internal/app"
	"krishi-sakhi/internal/chat"
	"krishi-sakhi/internal/httputil"
	"krishi-sakhi/internal/store"
)

type chatRequest struct {
	Query string `json:"query" validate:"required"`
}

func main() {
	deps, err := app.Build("json")
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	// Knowledge is loaded once, before the first request is served. A
	// missing document degrades to a placeholder context, not a crash.
	kb := deps.Loader.LoadOrPlaceholder(deps.Config.KnowledgePDF)
	svc := chat.NewService(deps.Log, kb, deps.LLM, deps.Cache, deps.Store,
		time.Duration(deps.Config.CacheTTL)*time.Second)

	r := httputil.NewRouter(deps.Log, deps.Config.AllowedOrigin)
	r.Post("/chat", chatHandler(deps.Log, svc))
	r.Get("/transcripts", transcriptsHandler(deps.Log, deps.Store))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func chatHandler(log *slog.Logger, svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(log, w, "No query provided", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.Fail(log, w, "No query provided", err, http.StatusBadRequest)
			return
		}

		resp := svc.Ask(r.Context(), req.Query, store.SourceWeb)

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"response": resp.Text,
			"lang":     string(resp.Lang),
		})
	}
}

func transcriptsHandler(log *slog.Logger, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if v := r.URL.Query().Get("limit"); v != "" {
			if _, err := fmt.Sscanf(v, "%d", &limit); err != nil || limit <= 0 {
				httputil.Fail(log, w, "invalid limit", err, http.StatusBadRequest)
				return
			}
		}
		transcripts, err := st.RecentTranscripts(r.Context(), limit)
		if err != nil {
			httputil.Fail(log, w, "failed to load transcripts", err, http.StatusInternalServerError)
			return
		}

		items := make([]map[string]any, 0, len(transcripts))
		for _, t := range transcripts {
			items = append(items, map[string]any{
				"id":         t.ID.String(),
				"source":     t.Source,
				"question":   t.Question,
				"answer":     t.Answer,
				"lang":       t.Lang,
				"created_at": t.CreatedAt,
			})
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"transcripts": items})
	}
}

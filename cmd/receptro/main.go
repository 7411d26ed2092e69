package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/receptro-ai/receptro/internal/config"
	"github.com/receptro-ai/receptro/internal/env"
	"github.com/receptro-ai/receptro/internal/logger"
	"github.com/receptro-ai/receptro/internal/metrics"
	"github.com/receptro-ai/receptro/internal/pipeline"
	"github.com/receptro-ai/receptro/internal/provider"
	"github.com/receptro-ai/receptro/internal/provider/openai"
	"github.com/receptro-ai/receptro/internal/provider/piper"
	serverhttp "github.com/receptro-ai/receptro/internal/server/http"
	"github.com/receptro-ai/receptro/internal/service"
	"github.com/receptro-ai/receptro/internal/store"
	"github.com/receptro-ai/receptro/internal/xfs"
)

func main() {
	var (
		flagHTTPPort   = flag.Int("http-port", 0, "HTTP port to listen on (overrides config)")
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "receptro.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/receptro.log"),
		),
	)

	m := metrics.New()

	var orchestrators serverhttp.Orchestrators

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		orc, err := buildOrchestrator(cfg, m)
		if err != nil {
			slog.Error("Failed to rebuild pipeline from config", "error", err)
			return
		}
		orchestrators.Store(orc)
		slog.Info("Pipeline rebuilt from config")
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	cfg := watcher.Snapshot()
	orc, err := buildOrchestrator(cfg, m)
	if err != nil {
		slog.Error("Failed to build pipeline", "error", err)
		return
	}
	orchestrators.Store(orc)

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	port := cfg.Server.HTTPPort
	if *flagHTTPPort != 0 {
		port = *flagHTTPPort
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           serverhttp.New(&orchestrators, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

// buildOrchestrator wires providers, stage services and the store from config.
func buildOrchestrator(cfg *config.Config, m *metrics.Metrics) (*pipeline.Orchestrator, error) {
	client, err := openai.NewClient(openai.Config{
		BaseURL:         cfg.OpenAI.BaseURL,
		TranscribeModel: cfg.OpenAI.TranscribeModel,
		IntentModel:     cfg.OpenAI.IntentModel,
		VisionModel:     cfg.OpenAI.VisionModel,
		SpeechModel:     cfg.Speech.OpenAI.Model,
		SpeechVoice:     cfg.Speech.OpenAI.Voice,
	})
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.Pipeline.TempDir, cfg.Outputs.AudioDir, cfg.Outputs.JSONDir)
	if err != nil {
		return nil, err
	}

	return pipeline.New(pipeline.Params{
		Transcriber:    service.NewTranscriber(client),
		Interpreter:    service.NewInterpreter(client),
		Synthesizer:    service.NewSynthesizer(speechEngine(cfg, client), st.AudioDir(), cfg.Speech.Piper.Parameters),
		Extractor:      service.NewExtractor(client),
		Store:          st,
		Metrics:        m,
		MaxUploadBytes: cfg.Pipeline.MaxUploadBytes,
	}), nil
}

// speechEngine selects the TTS engine from config. A missing or broken local
// engine is not fatal; synthesis degrades to text-only replies.
func speechEngine(cfg *config.Config, client *openai.Client) provider.SpeechEngine {
	switch cfg.Speech.Engine {
	case config.SpeechEngineOpenAI:
		return client
	case config.SpeechEngineNone:
		return nil
	default:
		engine, err := piper.NewEngine(
			xfs.ExpandTilde(cfg.Speech.Piper.BinPath),
			xfs.ExpandTilde(cfg.Speech.Piper.ModelPath),
		)
		if err != nil {
			slog.Warn("Piper engine unavailable, replies will be text-only", "error", err)
			return nil
		}
		return engine
	}
}

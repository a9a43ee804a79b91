package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"legalease/internal/config"
	"legalease/internal/dashboard"
	"legalease/internal/decoder"
	"legalease/internal/gateway"
	"legalease/internal/historystore"
	"legalease/internal/llmclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.Env == "local" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	client, err := llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.AnalysisModel, cfg.ChatModel)
	if err != nil {
		logger.Fatal("gemini client init failed", zap.Error(err))
	}
	defer func() { _ = client.Close() }()

	svc, err := decoder.NewCached(decoder.New(client), cfg.CacheSize)
	if err != nil {
		logger.Fatal("decoder cache init failed", zap.Error(err))
	}

	history := historystore.NewStore(historystore.NewFileBackend(cfg.HistoryPath))

	ctrl := dashboard.NewController(dashboard.Options{
		Decoder: svc,
		LLM:     client,
		History: history,
		Logger:  logger,
		Timeout: cfg.Timeout,
	})

	srv := gateway.New(cfg.Port, gateway.NewMux(ctrl, logger), logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Start(); err != nil {
		logger.Fatal("gateway stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"voicetutor/internal/config"
	"voicetutor/internal/engine"
	"voicetutor/internal/history"
	"voicetutor/internal/llm"
	"voicetutor/internal/skill"
	"voicetutor/internal/slack"
	"voicetutor/internal/transcript"
	"voicetutor/internal/webhook"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	repo, err := history.NewSQLite(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("failed to init history store: %v", err)
	}
	defer repo.Close()

	factory := &llm.Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	llmClient, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	seedPrompt := readSeedPrompt(cfg.SystemPromptPath)
	eng := engine.New(repo, llmClient)
	exporter := transcript.New(repo, slack.New(cfg.SlackAPIToken), cfg.SlackChannel)
	handler := skill.New(eng, exporter, seedPrompt)

	srv := webhook.New(handler)

	go func() {
		log.Printf("skill webhook listening on %s", cfg.ListenAddr)
		if err := srv.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func readSeedPrompt(path string) string {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data)
		}
		log.Printf("seed prompt file not found or unreadable at %s: %v", path, err)
	}
	return skill.DefaultSeedPrompt
}

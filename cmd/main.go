package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"shenurtures/pkg/config"
	"shenurtures/pkg/inference"
	"shenurtures/pkg/prompt"
	"shenurtures/pkg/server"
	"shenurtures/pkg/speech"
	"shenurtures/pkg/utils"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var inf inference.Inferencer
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		gem, err := inference.NewGeminiInferencer(cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini client error: %v", err)
		}
		inf = gem
	default:
		openAI := inference.NewOpenAIInferencer(cfg.OpenAIKey, cfg.OpenAIModel)
		if cfg.OpenAIBaseURL != "" {
			openAI.ChangeBaseURL(cfg.OpenAIBaseURL)
		}
		inf = openAI
	}

	synth, err := speech.NewGeminiSynthesizer(cfg.GeminiKey, cfg.GeminiTTSModel)
	if err != nil {
		log.Fatalf("speech client error: %v", err)
	}

	if cfg.PromptsFile != "" {
		overrides, err := utils.Load[prompt.Overrides](cfg.PromptsFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warnf("Failed to load %s: %v", cfg.PromptsFile, err)
		}
		if err == nil {
			if err := prompt.Apply(overrides); err != nil {
				log.Fatalf("prompt overrides rejected: %v", err)
			}
			log.Infof("Loaded prompt overrides from %s", cfg.PromptsFile)
		}
	}

	srv := server.NewServer(cfg, inf, synth)
	srv.Echo.Logger.SetLevel(log.INFO)

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}

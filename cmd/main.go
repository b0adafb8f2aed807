package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mindmate/mindmate/internal/config"
	"github.com/mindmate/mindmate/internal/handlers"
	"github.com/mindmate/mindmate/internal/providers"
	"github.com/mindmate/mindmate/internal/services/chat"
)

func main() {
	// .env is optional; deployments configure through the environment.
	godotenv.Load()

	setupLogging()

	provider := providers.NewFromConfig(context.Background())
	if provider == nil {
		log.Warn().Msg("No AI provider credentials configured - all responses will use fallback mode")
	} else {
		log.Info().Str("provider", provider.Name()).Msg("Completion provider ready")
	}

	chatService := chat.NewService(provider)
	router := handlers.NewRouter(chatService, config.GetPublicDir())

	addr := ":" + config.GetPort()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("MindMate server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("MindMate is shutting down")

	// Nothing to flush; just let in-flight requests finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func setupLogging() {
	level, err := zerolog.ParseLevel(config.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

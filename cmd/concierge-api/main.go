// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"concierge/internal/ai"
	"concierge/internal/config"
	httptransport "concierge/internal/http"
	"concierge/internal/infra"
	"concierge/internal/logger"
	"concierge/internal/modules/booking"
	"concierge/internal/modules/conversation"
	"concierge/internal/modules/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Missing credential is fatal before any input is accepted.
		log.Fatal(err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Persona)
	if err != nil {
		zlog.Fatal("gemini init", zap.Error(err))
	}
	defer provider.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	bookingStore := booking.NewStore()
	bookingSvc := booking.NewService(bookingStore)

	sessionStore := session.NewStore(redisClient)

	chatSvc := conversation.NewService(bookingSvc, provider, sessionStore, zlog)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Chat:     chatSvc,
		Bookings: bookingSvc,
		Log:      zlog,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	zlog.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server", zap.Error(err))
	}
}

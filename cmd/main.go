package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/techstore/chatbot/internal/catalog"
	"github.com/techstore/chatbot/internal/config"
	"github.com/techstore/chatbot/internal/logger"
	"github.com/techstore/chatbot/internal/responder"
	"github.com/techstore/chatbot/internal/server"
)

func main() {
	log := logger.New()
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load(log)

	store := catalog.New()
	bot := responder.New(store, log)
	srv := server.New(store, bot, cfg.StaticDir, log)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(cfg.Port)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}

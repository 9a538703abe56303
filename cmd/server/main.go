package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Husein100/TravelDataInternalAPI/internal/app"
	"github.com/Husein100/TravelDataInternalAPI/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	ctx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	application := app.New(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: application.Router,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		sig := <-sigCh
		application.Logger.Info("initiating graceful shutdown", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			application.Logger.Error("graceful shutdown error", "error", err)
		}
		// Cancel root context so in-flight requests stop
		rootCancel()
		close(idleConnsClosed)
	}()

	application.Logger.Info("starting server", "app", cfg.App.Name, "version", cfg.App.Version, "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	<-idleConnsClosed
	application.Logger.Info("server stopped")
}

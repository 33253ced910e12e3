package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stellar/internal/assembly"
	"stellar/internal/auth"
	"stellar/internal/catalog"
	"stellar/internal/client"
	"stellar/internal/config"
	httpapi "stellar/internal/http"
	"stellar/internal/logger"
	"stellar/internal/orders"
	"stellar/internal/service"

	_ "stellar/docs"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New("stellar")
	authStore := auth.NewStore()
	api := client.New(cfg.Remote.BaseURL, &http.Client{Timeout: cfg.RemoteTimeout()}, authStore)

	cat := catalog.New(api, lg)
	asm := assembly.New()
	history := orders.NewHistory(api, lg)
	feed := orders.NewFeed(api, lg)
	submit := service.NewSubmission(asm, authStore, api, history, cfg.HistoryRefreshDelay(), lg)
	resolver := service.NewResolver(cat, history, feed, api, lg)

	// каталог грузится в фоне; до загрузки зависимые ручки отвечают 503
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RemoteTimeout())
		defer cancel()
		if err := cat.Load(ctx); err != nil {
			lg.Error("catalog_load_failed", err, nil)
		}
	}()

	srv := httpapi.NewServer(cat, asm, submit, resolver, history, feed, authStore)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

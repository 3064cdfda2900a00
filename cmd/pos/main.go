package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/mquispe/bodegapos/internal/adapter/gateway"
	"github.com/mquispe/bodegapos/internal/adapter/handler"
	"github.com/mquispe/bodegapos/internal/adapter/storage"
	"github.com/mquispe/bodegapos/internal/core/service"
	"github.com/mquispe/bodegapos/internal/port"
)

const (
	defaultHTTPAddr   = ":8080"
	defaultAPIBaseURL = "http://localhost:9090"
	requestTimeout    = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpAddr := envOr("POS_HTTP_ADDR", defaultHTTPAddr)
	apiBaseURL := envOr("POS_API_BASE_URL", defaultAPIBaseURL)

	client := gateway.NewClient(apiBaseURL, nil)

	// Optional sale journal, enabled when a DSN is configured.
	var journal port.SaleJournal
	if dsn := os.Getenv("POS_MYSQL_DSN"); dsn != "" {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		defer db.Close()
		journal = storage.NewMySQLJournal(db)
		log.Println("sale journal enabled")
	}

	// Optional double-submit guard, enabled when a redis address is configured.
	var guard port.SubmitGuard
	if addr := os.Getenv("POS_REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer rdb.Close()
		guard = storage.NewRedisGuard(rdb)
		log.Println("submit guard enabled")
	}

	inventory := service.NewInventoryService(client.Products(), client.Categories())
	tickets := service.NewTicketRegistry()
	sales := service.NewSaleService(client.Sales(), journal, guard)

	loadCtx, loadCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := inventory.Load(loadCtx); err != nil {
		// The store keeps per-collection failure state; serve anyway and let
		// an explicit reload recover.
		log.Printf("initial inventory load: %v", err)
	}
	loadCancel()

	h := handler.NewHTTPHandler(inventory, tickets, sales, requestTimeout)
	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: h.Routes(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

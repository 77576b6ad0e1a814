package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/tHeiieh/inventory-api/internal/config"
	"github.com/tHeiieh/inventory-api/internal/db"
	"github.com/tHeiieh/inventory-api/internal/events"
	"github.com/tHeiieh/inventory-api/internal/httpserver"
	"github.com/tHeiieh/inventory-api/internal/logging"
	"github.com/tHeiieh/inventory-api/internal/middleware"
	"github.com/tHeiieh/inventory-api/internal/repo"
	"github.com/tHeiieh/inventory-api/internal/search"
	"github.com/tHeiieh/inventory-api/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	store, err := db.Open(context.Background(), configuration)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	producer := events.NewProducer(configuration.KAFKA_BROKERS)

	var indexer *search.Indexer
	if configuration.ES_URL != "" {
		esClient, err := search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init: %v", err)
		}
		indexer = &search.Indexer{ES: esClient, Index: configuration.ES_INDEX}
	}

	gormRepo := &repo.GormRepo{DB: store}

	authSvc := &service.AuthService{
		Repo:      gormRepo,
		JWTSecret: jwtSecret,
		TokenTTL:  configuration.TOKEN_TTL,
		Producer:  producer,
		UserTopic: configuration.USER_EVENTS_TOPIC,
	}
	inventorySvc := &service.InventoryService{
		Repo:         gormRepo,
		Producer:     producer,
		Indexer:      indexer,
		ProductTopic: configuration.PRODUCT_EVENTS_TOPIC,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:      &httpserver.AuthHTTP{Svc: authSvc},
		InventoryHandler: &httpserver.InventoryHTTP{Svc: inventorySvc},
		JWTSecret:        jwtSecret,
	}
	if indexer != nil {
		deps.SearchHandler = &httpserver.SearchHTTP{Indexer: indexer}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := store.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}

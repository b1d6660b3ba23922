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

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/beingsaumyadeep/py-commerce/internal/config"
	"github.com/beingsaumyadeep/py-commerce/internal/db"
	"github.com/beingsaumyadeep/py-commerce/internal/es"
	"github.com/beingsaumyadeep/py-commerce/internal/handlers"
	"github.com/beingsaumyadeep/py-commerce/internal/logging"
	authmw "github.com/beingsaumyadeep/py-commerce/internal/middleware/auth"
	loggingmw "github.com/beingsaumyadeep/py-commerce/internal/middleware/logging"
	"github.com/beingsaumyadeep/py-commerce/internal/mykafka"
	"github.com/beingsaumyadeep/py-commerce/internal/service"
	"github.com/beingsaumyadeep/py-commerce/internal/session"
	httpserver "github.com/beingsaumyadeep/py-commerce/internal/transport/http"
)

const productIndex = "products"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(cfg.DB_HOST, "DB_HOST")
	config.MustNonEmpty(cfg.DB_NAME, "DB_NAME")
	config.MustNonEmpty(cfg.REDIS_ADDR, "REDIS_ADDR")

	logger := logging.New(cfg.LOG_LEVEL).With("service", "commerce-api")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	redisClient, err := session.NewClient(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}
	sessions := &session.Store{Client: redisClient}

	var producer *mykafka.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
	} else {
		logger.Warn("KAFKA_ADDRESS not set, events disabled")
	}

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch connect: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, search disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB: database,
		UserHandler: &handlers.UserHandler{
			Svc:      &service.UserService{DB: database},
			Sessions: sessions,
			Producer: producer,
		},
		ProductHandler: &handlers.ProductHandler{
			Svc:      &service.CatalogService{DB: database},
			Producer: producer,
			ES:       esClient,
			Index:    productIndex,
		},
		OrderHandler: &handlers.OrderHandler{
			Svc:      &service.OrderService{DB: database},
			Producer: producer,
		},
		SearchHandler: &handlers.SearchHandler{ES: esClient, Index: productIndex},
		SessionMW:     &authmw.SessionMiddleware{Sessions: sessions},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:              ":" + cfg.PORT,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	logger.Info("shutdown complete")
}

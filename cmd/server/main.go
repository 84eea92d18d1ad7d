package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/bakelk/cake_shop/internal/config"
	"github.com/bakelk/cake_shop/internal/db"
	"github.com/bakelk/cake_shop/internal/es"
	"github.com/bakelk/cake_shop/internal/events"
	"github.com/bakelk/cake_shop/internal/httpserver"
	"github.com/bakelk/cake_shop/internal/logging"
	"github.com/bakelk/cake_shop/internal/middleware/loggingmw"
	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
	"github.com/bakelk/cake_shop/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTAccessSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(loggingmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := database.AutoMigrate(
		&models.Product{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
		&models.Comment{}, &models.Reply{},
		&models.DeliveryInfo{}, &models.User{},
	); err != nil {
		log.Fatalf("db migration error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: database}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()
	}

	var publisher service.EventPublisher
	if producer != nil {
		publisher = producer
	}

	deps := &httpserver.Deps{
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: gormRepo, Events: publisher}},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: gormRepo}, Events: publisher},
		CommentHandler: &httpserver.CommentHTTP{Svc: &service.CommentService{Repo: gormRepo}},
		WalletHandler:  &httpserver.WalletHTTP{Svc: &service.WalletService{Repo: gormRepo}},
		JWTSecret:      cfg.JWTAccessSecret,
	}

	if cfg.ESURL != "" {
		esClient, err := es.NewClient(&cfg)
		if err != nil {
			log.Printf("elasticsearch unavailable, search disabled: %v", err)
		} else {
			deps.SearchHandler = httpserver.NewSearchHTTP(esClient, cfg.ESIndex)
		}
	}

	httpserver.Register(e, deps)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		log.Printf("Starting %s on %s...", cfg.ServiceName, addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	sqlDB, err := database.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/demobistro/ordering/internal/adapter/logger"
	"github.com/demobistro/ordering/internal/adapter/metrics"
	"github.com/demobistro/ordering/internal/adapter/postgres"
	"github.com/demobistro/ordering/internal/adapter/rabbitmq"
	redisAdapter "github.com/demobistro/ordering/internal/adapter/redis"
	"github.com/demobistro/ordering/internal/app/business"
	"github.com/demobistro/ordering/internal/app/menu"
	"github.com/demobistro/ordering/internal/app/order"
	"github.com/demobistro/ordering/internal/config"
	"github.com/demobistro/ordering/internal/interfaces"

	amqpAdapter "github.com/demobistro/ordering/internal/adapter/amqp"
	httpAdapter "github.com/demobistro/ordering/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "api-server", "Run mode: api-server, seed, notification-subscriber")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx := context.Background()
	lgr := logger.New(*mode)

	switch *mode {
	case "api-server":
		runAPIServer(ctx, cfg, lgr)

	case "seed":
		runSeed(ctx, cfg, lgr)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, cfg, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPIServer(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	var publisher interfaces.EventPublisher
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		lgr.Error("rabbitmq_unavailable", "Running without event publishing", "", nil, err)
	} else {
		defer mqConn.Close()
		publisher = rabbitmq.NewPublisher(mqConn)
		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "", map[string]interface{}{
			"host": cfg.RabbitMQ.Host,
		})
	}

	var menuCache interfaces.MenuCache
	if cfg.Redis.Enabled {
		cache, err := redisAdapter.NewMenuCache(cfg.Redis)
		if err != nil {
			lgr.Error("redis_unavailable", "Running without menu cache", "", nil, err)
		} else {
			menuCache = cache
		}
	}

	orderRepo := postgres.NewOrderRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)

	serverMetrics := metrics.NewServerMetrics("api")
	orderMetrics := metrics.NewOrderMetrics()

	resolver := order.NewPricingResolver(menuRepo)
	orderService := order.NewService(orderRepo, resolver, publisher, orderMetrics, lgr)
	menuService := menu.NewService(menuRepo, menuCache, lgr)
	businessService := business.NewService(businessRepo, lgr)

	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)
	menuHandler := httpAdapter.NewMenuHandler(menuService, lgr)
	businessHandler := httpAdapter.NewBusinessHandler(businessService, lgr)

	handler := httpAdapter.NewRouter(orderHandler, menuHandler, businessHandler,
		lgr, serverMetrics, cfg.Server.CORSOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Ordering API started on port %d", cfg.Server.Port), "", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Ordering API", "", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "", nil, err)
	}
}

func runSeed(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := postgres.Seed(ctx, db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	lgr.Info("seed_completed", "Schema created and demo catalog seeded", "", nil)
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn)
	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", "", nil)

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := consumer.ConsumeNotifications(consumeCtx, notificationHandler.HandleNotification); err != nil && consumeCtx.Err() == nil {
			lgr.Error("consumer_error", "Error consuming notifications", "", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "", nil)
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundry-service/config"
	_ "laundry-service/docs"
	"laundry-service/internal/cache"
	"laundry-service/internal/database"
	"laundry-service/internal/logger"
	"laundry-service/internal/producer"
	"laundry-service/internal/repository"
	"laundry-service/internal/router"
	"laundry-service/internal/service"
	"laundry-service/internal/token"
	gtransport "laundry-service/internal/transport/grpc"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Laundry API
// @Version 1.0
// @Description Приём и выдача заказов прачечной
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Кэш и шина событий необязательны (nil отключает)
	var svcCache service.Cache
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, log)
		if err != nil {
			log.Warn("Redis недоступен, работаем без кэша", zap.Error(err))
		} else {
			defer rc.Close()
			svcCache = rc
		}
	}

	var events service.EventBus
	if len(cfg.Kafka.Brokers) > 0 {
		p := producer.NewOrderProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer p.Close()
		events = p
		log.Info("Kafka producer включен", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	var tp *token.HSProvider
	if cfg.Auth.Enabled {
		tp = token.NewHSProvider(cfg.Auth.Secret, cfg.Auth.Issuer)
	}

	intake := service.NewIntakeService(repos, svcCache, events, cfg.Location, log)
	delivery := service.NewDeliveryService(repos, svcCache, events, cfg.Location, log)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// gRPC: только health + reflection
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	grpcServer, hs := gtransport.NewServer(sqlDB, log)
	go hs.Watch(ctx, 10*time.Second)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}
	go func() {
		log.Info("Starting gRPC health server", zap.String("addr", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("gRPC server failed", zap.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.Port,
		Handler:           router.Router(intake, delivery, tp, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down laundry service...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	log.Info("Laundry service stopped gracefully")
}

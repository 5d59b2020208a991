package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkimaro/washpark-api/internal/config"
	attendantHandler "github.com/jkimaro/washpark-api/internal/handler/attendant"
	customerHandler "github.com/jkimaro/washpark-api/internal/handler/customer"
	parkingHandler "github.com/jkimaro/washpark-api/internal/handler/parking"
	paymentHandler "github.com/jkimaro/washpark-api/internal/handler/payment"
	reportHandler "github.com/jkimaro/washpark-api/internal/handler/report"
	servicerequestHandler "github.com/jkimaro/washpark-api/internal/handler/servicerequest"
	servicetypeHandler "github.com/jkimaro/washpark-api/internal/handler/servicetype"
	vehicleHandler "github.com/jkimaro/washpark-api/internal/handler/vehicle"
	"github.com/jkimaro/washpark-api/internal/middleware"
	"github.com/jkimaro/washpark-api/internal/repository/postgres"
	"github.com/jkimaro/washpark-api/internal/router"
	attendantService "github.com/jkimaro/washpark-api/internal/service/attendant"
	customerService "github.com/jkimaro/washpark-api/internal/service/customer"
	parkingService "github.com/jkimaro/washpark-api/internal/service/parking"
	paymentService "github.com/jkimaro/washpark-api/internal/service/payment"
	reportService "github.com/jkimaro/washpark-api/internal/service/report"
	servicerequestService "github.com/jkimaro/washpark-api/internal/service/servicerequest"
	servicetypeService "github.com/jkimaro/washpark-api/internal/service/servicetype"
	vehicleService "github.com/jkimaro/washpark-api/internal/service/vehicle"
	"github.com/jkimaro/washpark-api/pkg/logger"
	"github.com/jkimaro/washpark-api/pkg/messaging/redis"
	"github.com/jkimaro/washpark-api/pkg/metrics"
	"github.com/jkimaro/washpark-api/pkg/validator"
	"github.com/jkimaro/washpark-api/pkg/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := validator.RegisterCustomValidations(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validations")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	attendantRepo := postgres.NewAttendantRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	serviceTypeRepo := postgres.NewServiceTypeRepository(db)
	serviceRequestRepo := postgres.NewServiceRequestRepository(db)
	parkingRepo := postgres.NewParkingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	// Services
	attendantSvc := attendantService.NewService(attendantRepo)
	customerSvc := customerService.NewService(customerRepo)
	vehicleSvc := vehicleService.NewService(vehicleRepo, serviceRequestRepo)
	serviceTypeSvc := servicetypeService.NewService(serviceTypeRepo)
	serviceRequestSvc := servicerequestService.NewService(serviceRequestRepo, outboxRepo)
	parkingSvc := parkingService.NewService(parkingRepo, outboxRepo)
	paymentSvc := paymentService.NewService(paymentRepo, outboxRepo)
	reportSvc := reportService.NewService(attendantRepo, customerRepo, serviceRequestRepo, parkingRepo, paymentRepo)

	// Router
	r := router.NewRouter(
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "washpark",
			ReportCacheTTL: cfg.Cache.ReportTTL,
		},
		reportHandler.NewHandler(reportSvc),
		db.Ping,
		attendantHandler.NewHandler(attendantSvc, reportSvc),
		customerHandler.NewHandler(customerSvc, reportSvc),
		vehicleHandler.NewHandler(vehicleSvc),
		servicetypeHandler.NewHandler(serviceTypeSvc),
		servicerequestHandler.NewHandler(serviceRequestSvc),
		parkingHandler.NewHandler(parkingSvc),
		paymentHandler.NewHandler(paymentSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Outbox processor
	broker, err := redis.NewBroker(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	appMetrics := metrics.NewMetrics("washpark")
	outboxProcessor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
		Channel:       cfg.Redis.Channel,
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollInterval,
		RetryAttempts: cfg.Outbox.RetryAttempts,
		RetryDelay:    cfg.Outbox.RetryDelay,
	}, logger.NewLogger(nil), appMetrics)
	go outboxProcessor.Start(ctx)

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}

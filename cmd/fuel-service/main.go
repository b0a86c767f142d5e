package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/altynmine/fuel-inventory-service/internal/config"
	"github.com/altynmine/fuel-inventory-service/internal/delivery/httpapi"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/kafka"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/metrics"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/migrate"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/repository"
	"github.com/altynmine/fuel-inventory-service/internal/usecase"
	"github.com/altynmine/fuel-inventory-service/internal/usecase/approval"
	"github.com/altynmine/fuel-inventory-service/internal/usecase/engine"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.FuelDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()

	// Init metrics
	fuelMetrics := metrics.NewFuelMetrics()

	// Init transaction manager over the shared gorm handle
	txManager := repository.NewGormTxManager(db)

	// Init usecases
	fuelEngine := engine.NewDefaultEngine(txManager, pub, cfg.KafkaService.AlertTopic, fuelMetrics)
	workflow := approval.NewDefaultWorkflow(txManager, fuelEngine, pub, cfg.KafkaService.ApprovalTopic, fuelMetrics)
	containerUsecase := usecase.NewDefaultContainerUsecase(txManager)
	unitUsecase := usecase.NewDefaultUnitUsecase(txManager)

	// Init HTTP delivery
	router := httpapi.NewRouter(httpapi.Handlers{
		Transactions: httpapi.NewTransactionHandler(fuelEngine),
		Containers:   httpapi.NewContainerHandler(containerUsecase),
		Units:        httpapi.NewUnitHandler(unitUsecase, fuelEngine),
		Approvals:    httpapi.NewApprovalHandler(workflow),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("fuel inventory service listening", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}

func setupLogger(cfg *config.FuelConfig) {
	level := slog.LevelInfo
	if cfg.LogConfig.LogLevel == "debug" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chasepay/payout-service/internal/config"
	publisher "github.com/chasepay/payout-service/internal/infrastructure/kafka"
	"github.com/chasepay/payout-service/internal/infrastructure/metrics"
	"github.com/chasepay/payout-service/internal/infrastructure/migrate"
	"github.com/chasepay/payout-service/internal/infrastructure/notifier"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/repository"
	"github.com/chasepay/payout-service/internal/infrastructure/webhook"
	"github.com/chasepay/payout-service/internal/usecase/distribution"
	usecase "github.com/chasepay/payout-service/internal/usecase/payout"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.PayoutDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PayoutDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)

	// Init repositories
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	traderRepo := repository.NewDefaultTraderRepository(db)
	merchantRepo := repository.NewDefaultMerchantRepository(db)
	store := repository.NewGormStore(db)

	// Init side channels
	webhookSender := webhook.NewSender()
	pushNotifier := notifier.NewHTTPNotifier(fmt.Sprintf("%s:%s", cfg.NotifierService.Host, cfg.NotifierService.Port))

	// Init metrics
	payoutMetrics := metrics.NewPayoutMetrics()

	// Init distribution policy
	policy := distribution.NewDefaultPolicy(traderRepo)

	// Init payout usecase
	uc := usecase.NewDefaultPayoutUsecase(
		payoutRepo,
		merchantRepo,
		store,
		policy,
		webhookSender,
		pub,
		pushNotifier,
		payoutMetrics,
	)
	if cfg.Defaults.ProcessingTimeMinutes > 0 {
		uc.DefaultProcessingTime = cfg.Defaults.ProcessingTimeMinutes
	}

	// Периодический свип протухших выплат
	go func() {
		interval := time.Duration(cfg.Sweeper.IntervalSeconds) * time.Second
		if interval <= 0 {
			interval = 5 * time.Second
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := uc.CancelExpiredPayouts(context.Background()); err != nil {
				log.Printf("expire sweep error: %v", err)
			}
		}
	}()

	// Metrics endpoint
	http.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("payout service started on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

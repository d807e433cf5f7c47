package postgres

import (
	"log"

	"github.com/chasepay/payout-service/internal/config"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.PayoutConfig) *gorm.DB {
	dsn := cfg.PayoutDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.MerchantModel{},
		&models.TraderModel{},
		&models.PayoutModel{},
		&models.PayoutCancellationModel{},
		&models.PayoutBlacklistModel{},
		&models.PayoutRateAuditModel{},
	)

	return db
}

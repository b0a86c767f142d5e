package postgres

import (
	"log"

	"github.com/altynmine/fuel-inventory-service/internal/config"
	"github.com/altynmine/fuel-inventory-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.FuelConfig) *gorm.DB {
	dsn := cfg.FuelDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ContainerModel{},
		&models.UnitModel{},
		&models.TransactionModel{},
		&models.ApprovalRequestModel{},
		&models.CorrectionModel{},
	)

	return db
}

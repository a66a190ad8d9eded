// db/db.go
package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/andreyques41/lyfter-store/config"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
)

var DB *gorm.DB

func InitPostgres() error {
	dsn := config.GetString("postgres.dsn")
	logger.Info("Connecting to Postgres")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := DB.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error fetching underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	} else {
		logger.Info("Postgres connection closed successfully")
	}
}

package repository

import (
	"errors"

	"github.com/BerniceZTT/crm_core/models"
	"github.com/BerniceZTT/crm_core/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the relational store. TranslateError is enabled so
// duplicate-key violations surface as gorm.ErrDuplicatedKey regardless
// of driver.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Info().Msg("database connection established")
	return db, nil
}

// Migrate creates or updates the five entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Lead{},
		&models.Campaign{},
		&models.Ticket{},
	)
}

// SeedAdminUser creates the bootstrap admin account when the users
// table is empty, so a fresh deployment can log in.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	utils.Logger.Info().Str("username", admin.Username).Msg("admin account created")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		utils.Logger.Error().Err(err).Msg("failed to access connection pool")
		return
	}
	if err := sqlDB.Close(); err != nil {
		utils.Logger.Error().Err(err).Msg("failed to close database")
		return
	}
	utils.Logger.Info().Msg("database connection closed")
}

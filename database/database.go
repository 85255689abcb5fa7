package database

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"startupos/config"
	"startupos/models"
)

// DbInstance holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database and runs migrations.
func ConnectDb() {
	var dialector gorm.Dialector
	switch config.AppConfig.DBDriver {
	case "postgres":
		dialector = postgres.Open(config.AppConfig.DBDSN)
	case "mysql":
		dialector = mysql.Open(config.AppConfig.DBDSN)
	default:
		dialector = sqlite.Open(config.AppConfig.DBName)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Startup{},
		&models.KYCSubmission{},
		&models.Payment{},
		&models.ComplianceRecord{},
		&models.Invoice{},
		&models.Lead{},
		&models.Transaction{},
		&models.Vendor{},
		&models.Task{},
		&models.Application{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

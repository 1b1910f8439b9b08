package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"traininghub_backend/internals/configs"
)

var DB *gorm.DB

// ConnectDB opens the relational store. DB_DRIVER selects the engine
// (postgres by default, mysql supported); both engines carry the same
// schema so cmd/migrate can copy one into the other.
func ConnectDB() {
	driver := configs.GetEnv("DB_DRIVER", "postgres")
	log.Printf("connecting to %s...", driver)

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			configs.GetEnv("DB_USER", "qa_user"),
			configs.GetEnv("DB_PASSWORD", "qa_password"),
			configs.GetEnv("DB_HOST", "localhost"),
			configs.GetEnv("DB_PORT", "3306"),
			configs.GetEnv("DB_NAME", "qa_trainings"),
		)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=traininghub",
			configs.GetEnv("DB_USER", "qa_user"),
			configs.GetEnv("DB_PASSWORD", "qa_password"),
			configs.GetEnv("DB_HOST", "localhost"),
			configs.GetEnv("DB_PORT", "5432"),
			configs.GetEnv("DB_NAME", "qa_trainings"),
			configs.GetEnv("DB_SSLMODE", "disable"),
		)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // PgBouncer friendly
		}), &gorm.Config{})
	default:
		log.Fatalf("unsupported DB_DRIVER %q", driver)
	}

	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	DB = db
	log.Println("database connected")
}

// TunePool caps the connection pool; the app is a small single-tenant
// admin tool and never needs more than a handful of connections.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

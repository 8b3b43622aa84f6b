package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NgoVanPhien1997tb/yacchi-mcp/models"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "console"),
	}, nil
}

// InitDB opens the shared connection pool and prepares the schema: the
// payment_plans_id_seq sequence that backs bill identifier generation,
// then the table migrations.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS payment_plans_id_seq").Error; err != nil {
		return nil, fmt.Errorf("failed to create payment plan sequence: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Project{},
		&models.Customer{},
		&models.PaymentPlan{},
		&models.PaymentPlanDetail{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/roznerx/guater-sub000/models"
)

type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	AWSRegion   string
	SESEmail    string
	CORSOrigins []string
}

// Load reads .env plus the process environment. Required keys abort
// startup; the service must not come up half-configured.
func Load() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("CORS_ORIGINS", "*")

	if viper.GetString("APP_ENV") == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	for _, k := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		if viper.GetString(k) == "" {
			log.Fatalf("missing required env %s", k)
		}
	}

	return &Config{
		Port:        viper.GetString("PORT"),
		DBHost:      viper.GetString("DB_HOST"),
		DBPort:      viper.GetString("DB_PORT"),
		DBUser:      viper.GetString("DB_USER"),
		DBPassword:  viper.GetString("DB_PASSWORD"),
		DBName:      viper.GetString("DB_NAME"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		AWSRegion:   viper.GetString("AWS_REGION"),
		SESEmail:    viper.GetString("SES_EMAIL"),
		CORSOrigins: strings.Split(viper.GetString("CORS_ORIGINS"), ","),
	}
}

// InitDB opens the Postgres connection and migrates the schema. The
// handle is returned, not stashed in a package global, so services and
// tests receive it explicitly.
func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.WaterLog{},
		&models.DiureticLog{},
		&models.QuickPreset{},
		&models.DiureticPreset{},
	)
	if err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}

	return db
}

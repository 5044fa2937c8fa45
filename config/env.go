package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	JWTSecret     string
	JWTExpiry     string
	UploadDir     string
	MaxUploadSize int64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	AppConfig = &Config{
		AppEnv:        GetEnv("APP_ENV", "development"),
		Port:          GetEnv("APP_PORT", GetEnv("PORT", "8080")),
		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBPort:        GetEnv("DB_PORT", "5432"),
		DBUser:        GetEnv("DB_USER", "postgres"),
		DBPassword:    GetEnv("DB_PASSWORD", "postgres"),
		DBName:        GetEnv("DB_NAME", "pos_shop"),
		DBSSLMode:     GetEnv("DB_SSLMODE", "disable"),
		JWTSecret:     GetEnv("JWT_SECRET", "secret"),
		JWTExpiry:     GetEnv("JWT_EXPIRY", "24h"),
		UploadDir:     GetEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: maxUploadSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

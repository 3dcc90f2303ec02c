package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says otherwise. A missing
// .env file is fine outside development.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// Env holds every environment variable the server reads.
type Env struct {
	GO_ENV string
	PORT   int

	// JWT configuration
	JWT_SECRET string
	JWT_ISSUER string

	// Durable storage backend: file (default), redis, spaces, or memory
	STORE_BACKEND string
	STORE_PATH    string

	// Redis configuration (STORE_BACKEND=redis)
	REDIS_URL string

	// S3-compatible object storage (STORE_BACKEND=spaces)
	SPACES_ACCESS_KEY string
	SPACES_SECRET_KEY string
	SPACES_BUCKET     string
	SPACES_REGION     string
	SPACES_ENDPOINT   string

	// HTTP surface
	ALLOWED_ORIGINS     string
	RATE_LIMIT_REQUESTS int

	// Scheduled backup of the durable blob
	CRON_ENABLED    bool
	BACKUP_SCHEDULE string
	BACKUP_DIR      string
}

// Get reads the environment into an Env, applying defaults.
func Get() (*Env, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	rateLimit, err := strconv.Atoi(os.Getenv("RATE_LIMIT_REQUESTS"))
	if err != nil {
		rateLimit = 100
	}

	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = "file"
	}

	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = "data/universities.json"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	backupSchedule := os.Getenv("BACKUP_SCHEDULE")
	if backupSchedule == "" {
		backupSchedule = "0 3 * * *" // daily at 03:00
	}

	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "data/backups"
	}

	env := &Env{
		GO_ENV:              os.Getenv("GO_ENV"),
		PORT:                port,
		JWT_SECRET:          os.Getenv("JWT_SECRET"),
		JWT_ISSUER:          os.Getenv("JWT_ISSUER"),
		STORE_BACKEND:       backend,
		STORE_PATH:          storePath,
		REDIS_URL:           os.Getenv("REDIS_URL"),
		SPACES_ACCESS_KEY:   os.Getenv("SPACES_ACCESS_KEY"),
		SPACES_SECRET_KEY:   os.Getenv("SPACES_SECRET_KEY"),
		SPACES_BUCKET:       os.Getenv("SPACES_BUCKET"),
		SPACES_REGION:       os.Getenv("SPACES_REGION"),
		SPACES_ENDPOINT:     os.Getenv("SPACES_ENDPOINT"),
		ALLOWED_ORIGINS:     allowedOrigins,
		RATE_LIMIT_REQUESTS: rateLimit,
		CRON_ENABLED:        os.Getenv("CRON_ENABLED") != "false",
		BACKUP_SCHEDULE:     backupSchedule,
		BACKUP_DIR:          backupDir,
	}

	return env, nil
}

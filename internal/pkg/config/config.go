package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	configs.App.Name = GetEnv("APP_NAME", "freightdesk")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 60)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.BodyLimit = GetEnv("SERVER_BODY_LIMIT", "12M")

	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "freightdesk")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)
	configs.Database.AutoMigrate = GetEnvAsBool("DB_AUTO_MIGRATE", true)

	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 720)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "freightdesk")

	configs.Storage.Provider = GetEnv("STORAGE_PROVIDER", "local")
	configs.Storage.Bucket = GetEnv("GCS_BUCKET", "")
	configs.Storage.CredentialsJSON = GetEnv("GCS_CREDENTIALS_JSON", "")
	configs.Storage.LocalDir = GetEnv("STORAGE_LOCAL_DIR", "uploads")
	configs.Storage.PublicBaseURL = GetEnv("STORAGE_PUBLIC_BASE_URL", "/uploads")
	configs.Storage.MaxUploadBytes = GetEnvAsInt64("STORAGE_MAX_UPLOAD_BYTES", 10<<20)
	configs.Storage.MaxImageSide = GetEnvAsInt("STORAGE_MAX_IMAGE_SIDE", 2000)

	configs.Messaging.Provider = GetEnv("MESSAGING_PROVIDER", "log")
	configs.Messaging.URL = GetEnv("MESSAGING_URL", "")
	configs.Messaging.Token = GetEnv("MESSAGING_TOKEN", "")
	configs.Messaging.Sender = GetEnv("MESSAGING_SENDER", "")
	configs.Messaging.Timeout = GetEnvAsDuration("MESSAGING_TIMEOUT", 10*time.Second)

	configs.OTP.Store = GetEnv("OTP_STORE", "memory")
	configs.OTP.TTL = GetEnvAsDuration("OTP_TTL", 10*time.Minute)
	configs.OTP.SweepInterval = GetEnvAsDuration("OTP_SWEEP_INTERVAL", time.Minute)
	configs.OTP.Length = GetEnvAsInt("OTP_LENGTH", 6)

	configs.Events.NSQAddress = GetEnv("NSQ_ADDRESS", "")

	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "freightdesk")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("90s", "10m").
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

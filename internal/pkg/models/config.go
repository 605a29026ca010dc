package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Messaging MessagingConfig
	OTP       OTPConfig
	Events    EventsConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // seconds
	WriteTimeout    int // seconds
	ShutdownTimeout int // seconds
	BodyLimit       string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// StorageConfig selects and configures the receipt file store
type StorageConfig struct {
	Provider        string // gcs | local
	Bucket          string
	CredentialsJSON string
	LocalDir        string
	PublicBaseURL   string
	MaxUploadBytes  int64
	MaxImageSide    int
}

// MessagingConfig configures delivery of one-time codes
type MessagingConfig struct {
	Provider string // whatsapp | sms | log
	URL      string
	Token    string
	Sender   string
	Timeout  time.Duration
}

// OTPConfig configures password-reset codes
type OTPConfig struct {
	Store         string // redis | memory
	TTL           time.Duration
	SweepInterval time.Duration
	Length        int
}

// EventsConfig configures the domain event publisher
type EventsConfig struct {
	NSQAddress string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

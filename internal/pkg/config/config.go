package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Uploads UploadsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// BaseURL is embedded into reservation QR payloads as the verification link host.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BookingConfig holds the tunables of the reservation lifecycle.
type BookingConfig struct {
	// PendingTTL is how long a pending reservation may stay unpaid before the
	// sweeper forces a terminal status.
	PendingTTL time.Duration `envconfig:"BOOKING_PENDING_TTL" default:"1h"`
	// IssuanceThreshold is the cumulative paid amount that unlocks QR issuance.
	IssuanceThreshold string `envconfig:"BOOKING_ISSUANCE_THRESHOLD" default:"50"`
	// SweepInterval is the period of the expiration sweeper job.
	SweepInterval time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"5m"`
	// CodeLength and CodeMaxAttempts bound invitation code generation.
	CodeLength      int `envconfig:"BOOKING_CODE_LENGTH" default:"10"`
	CodeMaxAttempts int `envconfig:"BOOKING_CODE_MAX_ATTEMPTS" default:"10"`
}

type UploadsConfig struct {
	Dir     string `envconfig:"UPLOADS_DIR" default:"uploads"`
	BaseURL string `envconfig:"UPLOADS_BASE_URL" default:"/uploads"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BookingConfig) Threshold() decimal.Decimal {
	d, err := decimal.NewFromString(c.IssuanceThreshold)
	if err != nil {
		panic(fmt.Sprintf("invalid BOOKING_ISSUANCE_THRESHOLD %q: %v", c.IssuanceThreshold, err))
	}
	return d
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			BaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			PendingTTL:        time.Hour,
			IssuanceThreshold: "50",
			SweepInterval:     5 * time.Minute,
			CodeLength:        10,
			CodeMaxAttempts:   10,
		},
		Uploads: UploadsConfig{
			Dir:     "uploads",
			BaseURL: "/uploads",
		},
	}
}

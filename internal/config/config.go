package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, scan reminders and their delivery, the background worker and
// graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"sonoplan" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains the scan type cache connection settings
	Redis struct {
		// Addr is the host:port of the Redis server. When empty the cache is disabled
		Addr string `env:"REDIS_ADDR" yaml:"addr"`
		// Password for Redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the Redis logical database index
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// DialTimeout bounds establishing a new connection
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"2s" yaml:"dialTimeout"`
		// ReadTimeout bounds a single read
		ReadTimeout time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"500ms" yaml:"readTimeout"`
		// WriteTimeout bounds a single write
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"500ms" yaml:"writeTimeout"`
		// ScanTypesTTL is how long cached scan types are served before reloading
		ScanTypesTTL time.Duration `env:"REDIS_SCAN_TYPES_TTL" env-default:"10m" yaml:"scanTypesTtl"`
	} `yaml:"redis"`

	// Schedule contains the scan reminder planning settings
	Schedule struct {
		// ReminderLeadDays is how many days before the recommended scan date a reminder is due
		ReminderLeadDays int `env:"SCHEDULE_REMINDER_LEAD_DAYS" env-default:"7" yaml:"reminderLeadDays"`
		// ReminderMaxAttempts is how many times delivering a reminder is retried
		ReminderMaxAttempts int `env:"SCHEDULE_REMINDER_MAX_ATTEMPTS" env-default:"5" yaml:"reminderMaxAttempts"`
	} `yaml:"schedule"`

	// Notify contains the reminder delivery settings
	Notify struct {
		// WebhookURL receives due reminders as JSON. When empty reminders are only logged
		WebhookURL string `env:"NOTIFY_WEBHOOK_URL" yaml:"webhookUrl"`
		// WebhookToken is sent as a bearer token with every webhook request
		WebhookToken string `env:"NOTIFY_WEBHOOK_TOKEN" yaml:"webhookToken"`
		// Timeout bounds a single webhook request
		Timeout time.Duration `env:"NOTIFY_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"notify"`

	// Worker contains the background job worker settings
	Worker struct {
		// MaxWorkers is the number of reminders delivered concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// Snooze is how long a reminder is deferred when delivery is temporarily unavailable
		Snooze time.Duration `env:"WORKER_SNOOZE" env-default:"5m" yaml:"snooze"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if cfg.Schedule.ReminderLeadDays < 0 {
		return nil, fmt.Errorf("reminder lead days must not be negative, got %d", cfg.Schedule.ReminderLeadDays)
	}

	return &cfg, nil
}

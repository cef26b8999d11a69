package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"dispatch/internal/service/tracking"
)

type (
	Tasks struct {
		PendingBacklogInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		GRPCHealthPort   string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host                string
		Port                string
		User                string
		Password            string
		DBName              string
		SSLMode             string
		MigrationsAutoApply bool
	}

	Tracking struct {
		PollInterval time.Duration
		MaxWait      time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DriverTelemetry DriverTelemetry
	}

	DriverTelemetry struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Tracking Tracking
		Kafka    Kafka
	}
)

const defaultLogLevel = "info"

// Load конфигурация HTTP сервиса. Kafka здесь не проверяется.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateServer(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker конфигурация воркера телеметрии: база и Kafka.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateKafka(&cfg.Kafka); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	backlogInterval, err := osGetEnvDuration("BACKGROUND_PENDING_BACKLOG_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollInterval, err := osGetEnvDuration("DISPATCH_TRACKING_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxWait, err := osGetEnvDuration("DISPATCH_TRACKING_MAX_WAIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	driverTelemetryTimeout, err := osGetEnvDuration("KAFKA_HANDLER_DRIVER_TELEMETRY_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrationsAutoApply, err := osGetBool("POSTGRES_MIGRATIONS_AUTO_APPLY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if pollInterval == 0 {
		pollInterval = tracking.DefaultPollInterval
	}
	// ожидание watch должно уложиться в таймаут запроса
	if maxWait == 0 {
		maxWait = requestTimeout / 2
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	return &Config{
		LogLevel: logLevel,
		Tasks: Tasks{
			PendingBacklogInterval: backlogInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:                os.Getenv("POSTGRES_HOST"),
			Port:                os.Getenv("POSTGRES_PORT"),
			User:                os.Getenv("POSTGRES_USER"),
			Password:            os.Getenv("POSTGRES_PASSWORD"),
			DBName:              os.Getenv("POSTGRES_DB"),
			SSLMode:             os.Getenv("POSTGRES_SSLMODE"),
			MigrationsAutoApply: migrationsAutoApply,
		},
		Tracking: Tracking{
			PollInterval: pollInterval,
			MaxWait:      maxWait,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				DriverTelemetry: DriverTelemetry{
					ProcessTimeout: driverTelemetryTimeout,
				},
			},
		},
	}, nil
}

func validateServer(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Tasks.PendingBacklogInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PENDING_BACKLOG_INTERVAL is required")
	}

	if cfg.Tracking.PollInterval > cfg.Tracking.MaxWait {
		return errors.New("DISPATCH_TRACKING_POLL_INTERVAL must not exceed DISPATCH_TRACKING_MAX_WAIT")
	}
	if cfg.Tracking.MaxWait >= cfg.Server.RequestTimeout {
		return errors.New("DISPATCH_TRACKING_MAX_WAIT must be shorter than MIDDLEWARE_REQUEST_TIMEOUT")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(kafka *Kafka) error {
	if kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if kafka.Handlers.DriverTelemetry.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DRIVER_TELEMETRY_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

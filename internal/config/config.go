package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
	Enabled  bool
}

type BookingConfig struct {
	// AllowZeroNights permits check-in == check-out stays.
	AllowZeroNights bool
	// SessionTTL is the idle lifetime of an in-memory booking session.
	SessionTTL time.Duration
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8000"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	serverCfg := ServerConfig{
		Host: serverHost,
		Port: serverPort,
	}

	postgresHost := os.Getenv("POSTGRES_HOST")
	if postgresHost == "" {
		postgresHost = "localhost"
	}

	postgresPortStr := os.Getenv("POSTGRES_PORT")
	if postgresPortStr == "" {
		postgresPortStr = "5432"
	}

	postgresPort, err := strconv.Atoi(postgresPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid POSTGRES_PORT: %w", op, err)
	}

	postgresUser := os.Getenv("POSTGRES_USER")
	if postgresUser == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_USER", op)
	}

	postgresPassword := os.Getenv("POSTGRES_PASSWORD")
	if postgresPassword == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
	}

	postgresDB := os.Getenv("POSTGRES_DB")
	if postgresDB == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_DB", op)
	}

	postgresSSLMode := os.Getenv("POSTGRES_SSLMODE")
	if postgresSSLMode == "" {
		postgresSSLMode = "disable"
	}

	postgresCfg := PostgresConfig{
		User:     postgresUser,
		Password: postgresPassword,
		Name:     postgresDB,
		Host:     postgresHost,
		Port:     postgresPort,
		SSLMode:  postgresSSLMode,
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisCfg := RedisConfig{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	}

	smtpCfg, err := smtpFromEnv(op)
	if err != nil {
		return nil, err
	}

	bookingCfg, err := bookingFromEnv(op)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   serverCfg,
		Postgres: postgresCfg,
		Redis:    redisCfg,
		SMTP:     smtpCfg,
		Booking:  bookingCfg,
	}, nil
}

func smtpFromEnv(op string) (SMTPConfig, error) {
	enabled := os.Getenv("SMTP_ENABLED") == "true"

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		portStr = "587"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return SMTPConfig{}, fmt.Errorf("%s: invalid SMTP_PORT: %w", op, err)
	}

	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		From:     os.Getenv("SMTP_FROM"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Enabled:  enabled,
	}

	if enabled && (cfg.Host == "" || cfg.From == "") {
		return SMTPConfig{}, fmt.Errorf("%s: SMTP_ENABLED requires SMTP_HOST and SMTP_FROM", op)
	}

	return cfg, nil
}

func bookingFromEnv(op string) (BookingConfig, error) {
	allowZeroNights := true
	if v := os.Getenv("ALLOW_ZERO_NIGHTS"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return BookingConfig{}, fmt.Errorf("%s: invalid ALLOW_ZERO_NIGHTS: %w", op, err)
		}
		allowZeroNights = parsed
	}

	sessionTTL := 2 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return BookingConfig{}, fmt.Errorf("%s: invalid SESSION_TTL: %w", op, err)
		}
		sessionTTL = parsed
	}

	return BookingConfig{
		AllowZeroNights: allowZeroNights,
		SessionTTL:      sessionTTL,
	}, nil
}

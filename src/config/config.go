package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	AppURI         string
	LogLevel       string
	LogFormat      string
	StoreDriver    string
	MongoURI       string
	MongoDB        string
	RedisURI       string
	AllowedOrigins string

	// MasterSigningKey signs admin JWTs. StudentAPIKey is the static bearer
	// key the student-facing frontend sends. CryptoKey drives the
	// timestamp obfuscation used by the freshness gate.
	MasterSigningKey string
	StudentAPIKey    string
	CryptoKey        string
	JWTExpiry        time.Duration
	BcryptCost       int

	CohortMin            int
	CohortMax            int
	RegistrationCooldown time.Duration
	TimestampMaxAge      time.Duration

	SeedMasterUsername string
	SeedMasterPassword string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	AppBaseURL string
}

// Load reads configuration from the environment. A .env file is loaded when
// present; a missing file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	return &Config{
		AppURI:         getEnv("APP_URI", "8888"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", "mongo")),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "ssaam"),
		RedisURI:       os.Getenv("REDIS_URI"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		MasterSigningKey: getEnv("SSAAM_API_KEY", "SECRET_iKALAT_PALANG_NIMO"),
		StudentAPIKey:    os.Getenv("SSAAM_STUDENT_API_KEY"),
		CryptoKey:        getEnv("SSAAM_CRYPTO_KEY", "SSAAM2025CCS"),
		JWTExpiry:        time.Duration(getEnvPositiveInt("JWT_EXPIRY_HOURS", 7*24)) * time.Hour,
		BcryptCost:       getEnvInt("BCRYPT_COST", 12),

		CohortMin:            getEnvInt("COHORT_MIN", 21),
		CohortMax:            getEnvInt("COHORT_MAX", 25),
		RegistrationCooldown: time.Duration(getEnvPositiveInt("REGISTRATION_COOLDOWN_SECONDS", 60)) * time.Second,
		TimestampMaxAge:      time.Duration(getEnvPositiveInt("TIMESTAMP_MAX_AGE_SECONDS", 60)) * time.Second,

		SeedMasterUsername: os.Getenv("SEED_MASTER_USERNAME"),
		SeedMasterPassword: os.Getenv("SEED_MASTER_PASSWORD"),

		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnvInt("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		SMTPFrom:   os.Getenv("SMTP_FROM"),
		AppBaseURL: strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:5173"), "/"),
	}
}

// UseMemoryStore reports whether the API should run without MongoDB.
func (c *Config) UseMemoryStore() bool {
	return c.StoreDriver == "memory"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Int("fallback", fallback).Msg("invalid int in environment, using fallback")
		return fallback
	}
	return n
}

// getEnvPositiveInt is getEnvInt for values that must be above zero, such
// as durations handed to tickers and key expiries.
func getEnvPositiveInt(key string, fallback int) int {
	n := getEnvInt(key, fallback)
	if n <= 0 {
		log.Warn().Str("key", key).Int("value", n).Int("fallback", fallback).Msg("non-positive value in environment, using fallback")
		return fallback
	}
	return n
}

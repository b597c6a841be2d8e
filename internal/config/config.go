package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Migrations MigrationsConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	StaticDir   string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type RateLimitConfig struct {
	AuthMax    int
	AuthWindow time.Duration
	APIMax     int
	APIWindow  time.Duration
}

type MigrationsConfig struct {
	Dir string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory, or the one named by ENV_FILE, is applied first without overriding
// variables that are already set.
func Load() (Config, error) {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	return FromLookup(os.Getenv)
}

// FromLookup builds a Config from getenv, reporting every missing required key.
func FromLookup(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDur := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string) bool {
		v, _ := strconv.ParseBool(strings.TrimSpace(getenv(key)))
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "thexempt"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "5000"),
		StaticDir:   opt("STATIC_DIR", ""),
		LogJSON:     optBool("LOG_JSON"),
		LogDebug:    optBool("LOG_DEBUG"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDur("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDur("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDur("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDur("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	accessSecret := req("JWT_SECRET")
	cfg.JWT = JWTConfig{
		AccessSecret:     accessSecret,
		RefreshSecret:    opt("JWT_REFRESH_SECRET", accessSecret+".refresh"),
		AccessExpiresIn:  optDur("JWT_ACCESS_EXPIRES_IN", 7*24*time.Hour),
		RefreshExpiresIn: optDur("JWT_REFRESH_EXPIRES_IN", 30*24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optDur("REDIS_TTL", 10*time.Minute),
	}

	cfg.RateLimit = RateLimitConfig{
		AuthMax:    optInt("RATE_LIMIT_AUTH_MAX", 5),
		AuthWindow: optDur("RATE_LIMIT_AUTH_WINDOW", 15*time.Minute),
		APIMax:     optInt("RATE_LIMIT_API_MAX", 100),
		APIWindow:  optDur("RATE_LIMIT_API_WINDOW", 15*time.Minute),
	}

	cfg.Migrations = MigrationsConfig{Dir: opt("MIGRATIONS_DIR", "")}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func IsMissingRequiredEnv(err error) bool {
	return errors.Is(err, errMissingRequiredEnv)
}

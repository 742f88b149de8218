package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Stats     StatsConfig     `yaml:"stats"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	AppName         string        `yaml:"app_name"           env:"DATABASE_APP_NAME"           env-default:"kotoba"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"kotoba"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// QuizConfig holds question scheduling parameters.
type QuizConfig struct {
	NumOptions             int     `yaml:"num_options"             env:"QUIZ_NUM_OPTIONS"             env-default:"6"`
	NewWordProb            float64 `yaml:"new_word_prob"           env:"QUIZ_NEW_WORD_PROB"           env-default:"0.4"`
	UnfamiliarityThreshold float64 `yaml:"unfamiliarity_threshold" env:"QUIZ_UNFAMILIARITY_THRESHOLD" env-default:"1"`
	ReviewFloor            float64 `yaml:"review_floor"            env:"QUIZ_REVIEW_FLOOR"            env-default:"0.1"`
	PreferUnanswered       bool    `yaml:"prefer_unanswered"       env:"QUIZ_PREFER_UNANSWERED"       env-default:"true"`
	Timezone               string  `yaml:"timezone"                env:"QUIZ_TIMEZONE"                env-default:"UTC"`
	Seed                   uint64  `yaml:"seed"                    env:"QUIZ_SEED"                    env-default:"0"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// StatsConfig holds statistics settings.
type StatsConfig struct {
	GoalDays int `yaml:"goal_days" env:"STATS_GOAL_DAYS" env-default:"90"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

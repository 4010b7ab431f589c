package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DBPath   string // path to the SQLite database file
	SeedFile string // optional bookmarks YAML imported at startup (empty = disabled)

	JWTSecret string        // secret for signing bearer tokens
	TokenTTL  time.Duration // token lifetime (default: 1h)

	// Avatar upload (optional; empty URL disables avatar handling)
	AvatarUploadURL string        // image host upload endpoint
	AvatarAPIKey    string        // bearer key for the image host
	AvatarTimeout   time.Duration // per-upload HTTP timeout

	// Redis
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool // true => require password, false => allow empty password
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration // timeout for each ping attempt

	SearchCacheTTL time.Duration // TTL for cached search pages

	MaintenanceInterval time.Duration // interval for SQLite maintenance (wal checkpoint + analyze)

	// Rate limiting for the auth endpoints
	RateLimitBurst  int
	RateLimitPerMin int

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKVAULT_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKVAULT_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKVAULT_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKVAULT_PRETTY_LOG", true),

		// Storage
		DBPath:   getenv("LINKVAULT_DB_PATH", "linkvault.db"),
		SeedFile: getenv("LINKVAULT_SEED_FILE", ""),

		// Auth
		JWTSecret: requireEnv("LINKVAULT_JWT_SECRET"),
		TokenTTL:  mustDuration("LINKVAULT_TOKEN_TTL", time.Hour),

		// Avatar upload
		AvatarUploadURL: getenv("LINKVAULT_AVATAR_UPLOAD_URL", ""),
		AvatarAPIKey:    getenv("LINKVAULT_AVATAR_API_KEY", ""),
		AvatarTimeout:   mustDuration("LINKVAULT_AVATAR_TIMEOUT", 10*time.Second),

		// Redis settings
		RedisAddr:             requireEnv("LINKVAULT_REDIS_ADDR"),
		RedisUser:             getenv("LINKVAULT_REDIS_USERNAME", "default"),
		RedisPassword:         getenv("LINKVAULT_REDIS_PASSWORD", ""),
		RedisPasswordRequired: mustBool("LINKVAULT_REDIS_PASSWORD_REQUIRED", true),
		RedisDB:               getenvInt("LINKVAULT_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),

		SearchCacheTTL: mustDuration("LINKVAULT_SEARCH_CACHE_TTL", 5*time.Minute),

		MaintenanceInterval: mustDuration("LINKVAULT_MAINTENANCE_INTERVAL", 24*time.Hour),

		// Rate limiting
		RateLimitBurst:  getenvInt("LINKVAULT_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("LINKVAULT_RATE_LIMIT_PER_MIN", 30),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("LINKVAULT_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("LINKVAULT_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LINKVAULT_TRUST_PROXY", false),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: LINKVAULT_REDIS_PASSWORD is required when LINKVAULT_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.JWTSecret = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.AvatarAPIKey = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

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

	InventoryFile  string        // path to the inventory.yaml host list
	CatalogFile    string        // optional naming-catalog overrides (empty = built-in tables only)
	ReloadInterval time.Duration // interval to reload inventory.yaml (default: 24h)
	GCInterval     time.Duration // interval to run garbage collection (default: 24h)

	BatchWorkers  int // worker pool size for bulk decode requests
	BatchMaxNames int // max names accepted per bulk decode request

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateLimitBurst  int // token bucket burst for the bulk decode endpoint
	RateLimitPerMin int // refill per IP per minute for the bulk decode endpoint
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HOSTDEC_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HOSTDEC_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("HOSTDEC_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HOSTDEC_PRETTY_LOG", true),

		// Sources
		InventoryFile:  getenv("HOSTDEC_INVENTORY_FILE", "/app/inventory.yaml"),
		CatalogFile:    getenv("HOSTDEC_CATALOG_FILE", ""), // Optional, empty = built-in tables
		ReloadInterval: mustDuration("HOSTDEC_RELOAD_SOURCE_INTERVAL", 24*time.Hour),
		GCInterval:     mustDuration("HOSTDEC_GC_INTERVAL", 24*time.Hour),

		// Bulk decode
		BatchWorkers:  getenvInt("HOSTDEC_BATCH_WORKERS", 8),
		BatchMaxNames: getenvInt("HOSTDEC_BATCH_MAX_NAMES", 1000),

		// Redis settings
		RedisAddr:             requireEnv("HOSTDEC_REDIS_ADDR"),
		RedisUser:             getenv("HOSTDEC_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("HOSTDEC_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("HOSTDEC_REDIS_PASSWORD", ""),
		RedisDB:               requireEnvInt("HOSTDEC_REDIS_DB"),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("HOSTDEC_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("HOSTDEC_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("HOSTDEC_TRUST_PROXY", true),

		// Rate limiting (bulk decode endpoint)
		RateLimitBurst:  getenvInt("HOSTDEC_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("HOSTDEC_RATE_LIMIT_PER_MIN", 60),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: HOSTDEC_REDIS_PASSWORD is required when HOSTDEC_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.BatchWorkers < 1 {
		cfg.BatchWorkers = 1
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
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

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
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

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
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
